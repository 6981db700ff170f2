package backend

import (
	"log"
	"time"

	"ordenes_campo/internal/domain/civiltime"
	"ordenes_campo/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Backend JSON shapes. Field names follow the backend contract.

type technicianDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type evidenceDTO struct {
	ID            int64  `json:"id"`
	Tipo          string `json:"tipo"`
	URL           string `json:"url"`
	Comentario    string `json:"comentario"`
	FechaCreacion string `json:"fechaCreacion"`
}

type usedMaterialDTO struct {
	ID             int64  `json:"id"`
	MaterialCodigo string `json:"materialCodigo"`
	MaterialNombre string `json:"materialNombre"`
	CantidadUsada  int    `json:"cantidadUsada"`
	UnidadMedida   string `json:"unidadMedida"`
}

type orderDTO struct {
	ID                 int64             `json:"id"`
	Estado             string            `json:"estado"`
	TecnicoAsignado    *technicianDTO    `json:"tecnicoAsignado"`
	FechaInicioTrabajo string            `json:"fechaInicioTrabajo"`
	FechaFinTrabajo    string            `json:"fechaFinTrabajo"`
	Evidencias         []evidenceDTO     `json:"evidencias"`
	MaterialesUsados   []usedMaterialDTO `json:"materialesUsados"`
}

type materialDTO struct {
	ID              int64           `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	StockDisponible decimal.Decimal `json:"stockDisponible"`
	UnidadMedida    string          `json:"unidadMedida"`
	Activo          bool            `json:"activo"`
}

type statusUpdateDTO struct {
	NuevoEstado        string `json:"nuevoEstado"`
	FechaInicioTrabajo string `json:"fechaInicioTrabajo,omitempty"`
	FechaFinTrabajo    string `json:"fechaFinTrabajo,omitempty"`
}

type materialAdditionDTO struct {
	MaterialID int64 `json:"materialId"`
	Cantidad   int   `json:"cantidad"`
}

type errorDTO struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

func (e errorDTO) text() string {
	for _, s := range []string{e.Message, e.Mensaje, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (d orderDTO) toEntity(loc *time.Location) entities.Order {
	o := entities.Order{
		ID:            d.ID,
		Status:        entities.OrderStatus(d.Estado),
		WorkStartedAt: parseOptionalTime(d.ID, "fechaInicioTrabajo", d.FechaInicioTrabajo, loc),
		WorkEndedAt:   parseOptionalTime(d.ID, "fechaFinTrabajo", d.FechaFinTrabajo, loc),
	}
	if d.TecnicoAsignado != nil {
		o.AssignedTechnician = &entities.Technician{
			ID:    d.TecnicoAsignado.ID,
			Name:  d.TecnicoAsignado.Nombre,
			Email: d.TecnicoAsignado.Email,
		}
	}
	for _, e := range d.Evidencias {
		o.Evidence = append(o.Evidence, entities.Evidence{
			ID:        e.ID,
			Kind:      entities.EvidenceKind(e.Tipo),
			URL:       e.URL,
			Comment:   e.Comentario,
			CreatedAt: parseOptionalTime(d.ID, "evidencias.fechaCreacion", e.FechaCreacion, loc),
		})
	}
	for _, m := range d.MaterialesUsados {
		o.UsedMaterials = append(o.UsedMaterials, entities.UsedMaterial{
			ID:            m.ID,
			MaterialCode:  m.MaterialCodigo,
			MaterialName:  m.MaterialNombre,
			QuantityUsed:  m.CantidadUsada,
			UnitOfMeasure: m.UnidadMedida,
		})
	}
	return o
}

func (d materialDTO) toEntity() entities.CatalogMaterial {
	return entities.CatalogMaterial{
		ID:             d.ID,
		Code:           d.Codigo,
		Name:           d.Nombre,
		AvailableStock: d.StockDisponible,
		UnitOfMeasure:  d.UnidadMedida,
		Active:         d.Activo,
	}
}

// parseOptionalTime returns nil for empty or unparseable values; the backend sends
// zone-less civil timestamps as well as RFC 3339. Unparseable values are logged.
func parseOptionalTime(orderID int64, field, s string, loc *time.Location) *time.Time {
	if s == "" {
		return nil
	}
	t, err := civiltime.Parse(s, loc)
	if err != nil {
		log.Printf("%s unparseable timestamp order_id=%d field=%s value=%q err=%v", gatewayTag, orderID, field, s, err)
		return nil
	}
	return &t
}

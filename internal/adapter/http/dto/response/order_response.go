package response

import (
	"time"

	"ordenes_campo/internal/domain/entities"
)

type TechnicianResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type EvidenceResponse struct {
	ID            int64      `json:"id"`
	Tipo          string     `json:"tipo"`
	URL           string     `json:"url,omitempty"`
	Comentario    string     `json:"comentario,omitempty"`
	FechaCreacion *time.Time `json:"fechaCreacion,omitempty"`
}

type UsedMaterialResponse struct {
	ID             int64  `json:"id"`
	MaterialCodigo string `json:"materialCodigo"`
	MaterialNombre string `json:"materialNombre"`
	CantidadUsada  int    `json:"cantidadUsada"`
	UnidadMedida   string `json:"unidadMedida"`
}

// OrderResponse is the refetched order returned after every successful mutation.
type OrderResponse struct {
	ID                 int64                  `json:"id"`
	Estado             string                 `json:"estado"`
	TecnicoAsignado    *TechnicianResponse    `json:"tecnicoAsignado,omitempty"`
	FechaInicioTrabajo *time.Time             `json:"fechaInicioTrabajo,omitempty"`
	FechaFinTrabajo    *time.Time             `json:"fechaFinTrabajo,omitempty"`
	Evidencias         []EvidenceResponse     `json:"evidencias"`
	MaterialesUsados   []UsedMaterialResponse `json:"materialesUsados"`
}

// FromOrder returns nil for a nil order.
func FromOrder(o *entities.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	res := &OrderResponse{
		ID:                 o.ID,
		Estado:             string(o.Status),
		FechaInicioTrabajo: o.WorkStartedAt,
		FechaFinTrabajo:    o.WorkEndedAt,
		Evidencias:         make([]EvidenceResponse, 0, len(o.Evidence)),
		MaterialesUsados:   make([]UsedMaterialResponse, 0, len(o.UsedMaterials)),
	}
	if t := o.AssignedTechnician; t != nil {
		res.TecnicoAsignado = &TechnicianResponse{ID: t.ID, Nombre: t.Name, Email: t.Email}
	}
	for _, e := range o.Evidence {
		res.Evidencias = append(res.Evidencias, EvidenceResponse{
			ID:            e.ID,
			Tipo:          string(e.Kind),
			URL:           e.URL,
			Comentario:    e.Comment,
			FechaCreacion: e.CreatedAt,
		})
	}
	for _, m := range o.UsedMaterials {
		res.MaterialesUsados = append(res.MaterialesUsados, UsedMaterialResponse{
			ID:             m.ID,
			MaterialCodigo: m.MaterialCode,
			MaterialNombre: m.MaterialName,
			CantidadUsada:  m.QuantityUsed,
			UnidadMedida:   m.UnitOfMeasure,
		})
	}
	return res
}

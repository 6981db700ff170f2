package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"ordenes_campo/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Quantity keeps the raw quantity text so the use case validates exactly what the technician
// typed. It accepts a JSON string ("8") or a JSON number (8).
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*q = Quantity(n.String())
	return nil
}

// CatalogMaterialPayload is the catalog entry the technician picked, as returned by
// GET /materials.
type CatalogMaterialPayload struct {
	ID              int64           `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	StockDisponible decimal.Decimal `json:"stockDisponible"`
	UnidadMedida    string          `json:"unidadMedida"`
	Activo          bool            `json:"activo"`
}

func (p CatalogMaterialPayload) ToEntity() entities.CatalogMaterial {
	return entities.CatalogMaterial{
		ID:             p.ID,
		Code:           strings.TrimSpace(p.Codigo),
		Name:           strings.TrimSpace(p.Nombre),
		AvailableStock: p.StockDisponible,
		UnitOfMeasure:  p.UnidadMedida,
		Active:         p.Activo,
	}
}

type AddMaterialRequest struct {
	Material *CatalogMaterialPayload `json:"material"`
	Cantidad Quantity                `json:"cantidad"`
}

// ResolveMaterial returns nil when no material was selected.
func (r AddMaterialRequest) ResolveMaterial() *entities.CatalogMaterial {
	if r.Material == nil {
		return nil
	}
	m := r.Material.ToEntity()
	return &m
}

type EditMaterialRequest struct {
	Cantidad Quantity `json:"cantidad"`
}

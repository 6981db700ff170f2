package response

import (
	"time"

	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/usecase"

	"github.com/shopspring/decimal"
)

type MaterialResponse struct {
	Success          bool             `json:"success"`
	Code             string           `json:"code,omitempty"`
	Changed          bool             `json:"changed"`
	Message          string           `json:"message"`
	MaterialID       int64            `json:"materialId,omitempty"`
	StockDisponible  *decimal.Decimal `json:"stockDisponible,omitempty"`
	Critical         bool             `json:"critical,omitempty"`
	ReconciliationID string           `json:"reconciliationId,omitempty"`
	Order            *OrderResponse   `json:"order,omitempty"`
}

func FromMaterialResult(r usecase.MaterialResult) MaterialResponse {
	return MaterialResponse{
		Success:          true,
		Changed:          r.Changed,
		Message:          r.Message,
		MaterialID:       r.MaterialID,
		StockDisponible:  r.StockDisponible,
		Critical:         r.Critical,
		ReconciliationID: r.ReconciliationID,
		Order:            FromOrder(r.Order),
	}
}

// MaterialFailure renders a failed flow together with whatever the use case returned
// alongside the error (stock details, or the reloaded order after a critical failure).
func MaterialFailure(code, message string, r usecase.MaterialResult) MaterialResponse {
	res := FromMaterialResult(r)
	res.Success = false
	res.Code = code
	res.Message = message
	return res
}

type CatalogMaterialResponse struct {
	ID              int64           `json:"id"`
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	StockDisponible decimal.Decimal `json:"stockDisponible"`
	UnidadMedida    string          `json:"unidadMedida"`
	Activo          bool            `json:"activo"`
}

func FromCatalog(items []entities.CatalogMaterial) []CatalogMaterialResponse {
	out := make([]CatalogMaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, CatalogMaterialResponse{
			ID:              m.ID,
			Codigo:          m.Code,
			Nombre:          m.Name,
			StockDisponible: m.AvailableStock,
			UnidadMedida:    m.UnitOfMeasure,
			Activo:          m.Active,
		})
	}
	return out
}

type ReconciliationResponse struct {
	ID            string    `json:"id"`
	OrderID       int64     `json:"orderId"`
	LineID        int64     `json:"lineId"`
	MaterialID    int64     `json:"materialId,omitempty"`
	MaterialCode  string    `json:"materialCodigo"`
	MaterialName  string    `json:"materialNombre"`
	UnitOfMeasure string    `json:"unidadMedida"`
	FromQuantity  int       `json:"cantidadAnterior"`
	ToQuantity    int       `json:"cantidadNueva"`
	Step          string    `json:"step"`
	Outcome       string    `json:"outcome"`
	Message       string    `json:"message"`
	Actor         string    `json:"actor"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReconciliations(items []entities.MaterialReconciliation) []ReconciliationResponse {
	out := make([]ReconciliationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ReconciliationResponse{
			ID:            r.ID,
			OrderID:       r.OrderID,
			LineID:        r.LineID,
			MaterialID:    r.MaterialID,
			MaterialCode:  r.MaterialCode,
			MaterialName:  r.MaterialName,
			UnitOfMeasure: r.UnitOfMeasure,
			FromQuantity:  r.FromQuantity,
			ToQuantity:    r.ToQuantity,
			Step:          string(r.Step),
			Outcome:       string(r.Outcome),
			Message:       r.Message,
			Actor:         r.Actor,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out
}

package request

import (
	"strings"

	"ordenes_campo/internal/domain/entities"
)

type ChangeStatusRequest struct {
	NuevoEstado string `json:"nuevoEstado" binding:"required"`
}

func (r ChangeStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToUpper(strings.TrimSpace(r.NuevoEstado)))
}

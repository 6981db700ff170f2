package routes

import (
	"ordenes_campo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathMaterials = "/materials"
)

func addOrderRoutes(rg *gin.RouterGroup, statusHandler *handlers.OrderStatusHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/status-options", statusHandler.StatusOptions)
		orders.GET("/:id/status", statusHandler.GetState)
		orders.POST("/:id/status", statusHandler.RequestChange)
		orders.POST("/:id/status/confirm", statusHandler.ConfirmPending)
		orders.POST("/:id/status/cancel", statusHandler.CancelPending)
	}
}

func addMaterialRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler) {
	rg.GET(PathMaterials, materialHandler.ListCatalog)

	orders := rg.Group(PathOrders)
	{
		orders.POST("/:id/materials", materialHandler.AddMaterial)
		orders.PATCH("/:id/materials/:lineId", materialHandler.EditMaterialQuantity)
		orders.DELETE("/:id/materials/:lineId", materialHandler.DeleteMaterial)
		orders.GET("/:id/material-reconciliations", materialHandler.ListReconciliations)
	}
}

package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup, ctl *order_controller.Controller, authMW gin.HandlerFunc) {
	order := rg.Group("/orders")
	order.Use(authMW)
	{
		order.GET("", ctl.GetOrders)
		order.GET("/stats", ctl.GetOrderStats)
		order.GET("/:id", ctl.GetOrderDetailsByID)
		order.GET("/:id/invoice", ctl.DownloadOrderInvoicePDF)

		// Update order status (only write operation for orders)
		order.PATCH("/:id/status", ctl.UpdateOrderStatus)
	}
}

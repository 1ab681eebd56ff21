package backoffice_routes

import (
	"github.com/Atlas-Ticaret/atlas-backoffice/controllers/customer_controller"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup, ctl *customer_controller.Controller, authMW gin.HandlerFunc) {
	customer := rg.Group("/customers")
	customer.Use(authMW)
	{
		customer.GET("", ctl.GetCustomers)
		customer.GET("/stats", ctl.GetCustomerStats)
		customer.GET("/:id", ctl.GetCustomerByID)
		customer.PATCH("/:id", ctl.UpdateCustomer)
	}
}

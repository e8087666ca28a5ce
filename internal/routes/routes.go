package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	pages := cache.NewPathCache()

	actions := invoices.NewService(invoiceRepo, pages)
	invoiceHandler := handler.NewInvoiceHandler(actions, invoiceRepo, customerRepo, pages)

	// Dashboard form actions
	dashboard := r.Group(invoices.InvoicesPath)
	{
		dashboard.GET("", invoiceHandler.InvoicesPage)
		dashboard.POST("", invoiceHandler.CreateInvoice)
		dashboard.POST("/:id/edit", invoiceHandler.UpdateInvoice)
		dashboard.POST("/:id/delete", invoiceHandler.DeleteInvoice)
	}

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/customers", invoiceHandler.ListCustomers)

	inv := api.Group("/invoices")
	inv.GET("", invoiceHandler.ListInvoices)
	inv.POST("", invoiceHandler.CreateInvoice)
	inv.GET("/:id", invoiceHandler.GetInvoice)
	inv.PUT("/:id", invoiceHandler.UpdateInvoice)
	inv.DELETE("/:id", invoiceHandler.DeleteInvoice)
}

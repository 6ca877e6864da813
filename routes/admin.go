package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	analyticsControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/analytics"
	customerControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/customer"
	eventControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/event"
	inventoryControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/inventory"
	invoiceControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/invoice"
	messageControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/message"
	orderControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/order"
	productControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/product"
	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/notify"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an ADMIN
// session.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, notifier notify.Notifier) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Product & Category Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productControllers.GetAllProductsHandler(db))
			productAdmin.POST("", productControllers.CreateProductHandler(db))
			productAdmin.PATCH("/:id", productControllers.UpdateProductHandler(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProductHandler(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategoryHandler(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategoryHandler(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.POST("", orderControllers.CreateOrderHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:id", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PATCH("/:id", orderControllers.UpdateOrderHandler(db))
			orderAdmin.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:id", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Invoice Management ───────────
		invoiceAdmin := adminGroup.Group("/invoices")
		{
			invoiceAdmin.GET("", invoiceControllers.GetAllInvoicesHandler(db))
			invoiceAdmin.POST("", invoiceControllers.CreateInvoiceHandler(db))
			invoiceAdmin.GET("/:id", invoiceControllers.GetInvoiceByIDHandler(db))
			invoiceAdmin.PATCH("/:id", invoiceControllers.UpdateInvoiceHandler(db))
			invoiceAdmin.POST("/:id/send", invoiceControllers.SendInvoiceHandler(db, notifier))
			invoiceAdmin.POST("/:id/pay", invoiceControllers.MarkInvoicePaidHandler(db))
			invoiceAdmin.DELETE("/:id", invoiceControllers.DeleteInvoiceHandler(db))
		}

		// ─────────── Inventory ───────────
		adminGroup.GET("/inventory", inventoryControllers.ListInventoryHandler(db))
		adminGroup.PATCH("/inventory/:id", inventoryControllers.UpdateInventoryHandler(db))

		// ─────────── Customer Management ───────────
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.GET("", customerControllers.GetAllCustomersHandler(db))
			customerAdmin.POST("", customerControllers.CreateCustomerHandler(db))
			customerAdmin.PATCH("/:id", customerControllers.UpdateCustomerHandler(db))
			customerAdmin.DELETE("/:id", customerControllers.DeleteCustomerHandler(db))
		}

		// ─────────── Events ───────────
		eventAdmin := adminGroup.Group("/events")
		{
			eventAdmin.GET("", eventControllers.GetAllEventsHandler(db))
			eventAdmin.POST("", eventControllers.CreateEventHandler(db))
			eventAdmin.PATCH("/:id", eventControllers.UpdateEventHandler(db))
			eventAdmin.DELETE("/:id", eventControllers.DeleteEventHandler(db))
		}

		// ─────────── Messages & Analytics ───────────
		adminGroup.GET("/messages", messageControllers.GetAllMessagesHandler(db))
		adminGroup.PATCH("/messages/:id", messageControllers.UpdateMessageHandler(db))
		adminGroup.DELETE("/messages/:id", messageControllers.DeleteMessageHandler(db))
		adminGroup.GET("/analytics", analyticsControllers.DashboardHandler(db))
	}
}

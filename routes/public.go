package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	eventControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/event"
	messageControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/message"
	orderControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/order"
	productControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/product"
	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
)

// SetupPublicRoutes registers the storefront endpoints. Submission endpoints
// take an optional session to branch guest-vs-member.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetMenuHandler(db))
	r.GET("/products/:id", productControllers.GetProductByIDHandler(db))
	r.GET("/categories", productControllers.GetCategoriesHandler(db))

	r.POST("/order", middleware.OptionalAuth, orderControllers.PlaceOrderHandler(db))
	r.POST("/events", middleware.OptionalAuth, eventControllers.SubmitInquiryHandler(db))
	r.POST("/contact", messageControllers.SubmitContactHandler(db))
}

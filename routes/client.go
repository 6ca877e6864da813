package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	clientControllers "github.com/PerryB-GIT/sweetmeadow-bakery/controllers/client"
	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
)

// SetupClientRoutes registers the customer account area. Everything requires
// an authenticated session and is scoped to the caller.
func SetupClientRoutes(r *gin.Engine, db *gorm.DB) {
	client := r.Group("/client")
	client.Use(middleware.RequireAuth)
	{
		client.GET("/dashboard", clientControllers.DashboardHandler(db))
		client.GET("/orders", clientControllers.GetMyOrdersHandler(db))
		client.GET("/loyalty", clientControllers.GetLoyaltyHandler(db))
		client.GET("/bookings", clientControllers.GetMyBookingsHandler(db))
		client.GET("/favorites", clientControllers.GetFavoritesHandler(db))
		client.POST("/favorites", clientControllers.AddFavoriteHandler(db))
		client.DELETE("/favorites/:productID", clientControllers.RemoveFavoriteHandler(db))
		client.PATCH("/profile", clientControllers.UpdateProfileHandler(db))
	}
}

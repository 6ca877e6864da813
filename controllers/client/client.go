package clientControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

// Customer self-service surface. Every handler scopes its queries to the
// authenticated caller's user id from the request context.

func loyaltyBalance(db *gorm.DB, userID string) int64 {
	var points int64
	db.Model(&models.LoyaltyPoint{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&points)
	return points
}

// GET /client/dashboard
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(10).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
			return
		}

		var favoritesCount int64
		db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoritesCount)

		c.JSON(http.StatusOK, gin.H{
			"recent_orders":   orders,
			"loyalty_points":  loyaltyBalance(db, userID),
			"favorites_count": favoritesCount,
		})
	}
}

// GET /client/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /client/loyalty
func GetLoyaltyHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var history []models.LoyaltyPoint
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&history).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loyalty"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"history": history,
			"total":   loyaltyBalance(db, userID),
		})
	}
}

// GET /client/bookings
func GetMyBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var bookings []models.EventBooking
		if err := db.
			Where("user_id = ?", userID).
			Order("event_date DESC").
			Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// GET /client/favorites
func GetFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var favorites []models.Favorite
		if err := db.
			Where("user_id = ?", userID).
			Preload("Product").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favorites})
	}
}

type AddFavoriteRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// POST /client/favorites
func AddFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var req AddFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		favorite := models.Favorite{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: req.ProductID,
		}
		if err := db.Create(&favorite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
	}
}

// DELETE /client/favorites/:productID
func RemoveFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		productID := c.Param("productID")

		if err := db.
			Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.Favorite{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// PATCH /client/profile
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		}})
	}
}

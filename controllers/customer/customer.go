package customerControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type customerRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	OrderCount    int64  `json:"order_count"`
	LoyaltyPoints int64  `json:"loyalty_points"`
	CreatedAt     string `json:"created_at"`
}

// GetAllCustomersHandler lists CUSTOMER users with their order count and
// summed loyalty balance.
func GetAllCustomersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Where("role = ?", models.RoleCustomer).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}

		rows := make([]customerRow, 0, len(users))
		for _, u := range users {
			var orderCount int64
			db.Model(&models.Order{}).Where("user_id = ?", u.ID).Count(&orderCount)

			// Balance is always recomputed, never stored.
			var points int64
			db.Model(&models.LoyaltyPoint{}).
				Where("user_id = ?", u.ID).
				Select("COALESCE(SUM(points), 0)").
				Scan(&points)

			rows = append(rows, customerRow{
				ID:            u.ID,
				Name:          u.Name,
				Email:         u.Email,
				Phone:         u.Phone,
				OrderCount:    orderCount,
				LoyaltyPoints: points,
				CreatedAt:     u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		c.JSON(http.StatusOK, gin.H{"customers": rows})
	}
}

func CreateCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		customer := models.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: string(hash),
			Role:         models.RoleCustomer,
		}
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": customer.Email,
			"phone": customer.Phone,
		}})
	}
}

func UpdateCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var customer models.User
		if err := db.First(&customer, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}

		var req UpdateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Email != nil && *req.Email != customer.Email {
			var existing models.User
			if err := db.Where("email = ? AND id <> ?", *req.Email, id).First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&customer).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": customer.Email,
			"phone": customer.Phone,
		}})
	}
}

// DeleteCustomerHandler hard-deletes a customer and their dependent rows.
// ADMIN users can never be deleted through this endpoint.
func DeleteCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if user.Role == models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete admin users"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.LoyaltyPoint{}).Error; err != nil {
				return err
			}
			// Orders, invoices, and bookings survive as guest records.
			if err := tx.Model(&models.Order{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Invoice{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.EventBooking{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	CategoryID  string  `json:"category_id"`
	Featured    bool    `json:"featured"`
	Available   *bool   `json:"available"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	CategoryID  *string  `json:"category_id"`
	Featured    *bool    `json:"featured"`
	Available   *bool    `json:"available"`
}

// GetMenuHandler serves the public menu: available products with their
// category.
func GetMenuHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Category").
			Where("available = ?", true).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func GetProductByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// GetAllProductsHandler is the admin listing, unavailable products included.
func GetAllProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Category").
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// CreateProductHandler creates the product together with its inventory
// record (quantity 0, alert threshold 5) in one transaction.
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Featured:    req.Featured,
			Available:   available,
		}
		if req.CategoryID != "" {
			product.CategoryID = &req.CategoryID
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			inventory := models.Inventory{
				ID:            uuid.NewString(),
				ProductID:     product.ID,
				Quantity:      0,
				LowStockAlert: 5,
			}
			return tx.Create(&inventory).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.CategoryID != nil {
			if *req.CategoryID == "" {
				updates["category_id"] = nil
			} else {
				updates["category_id"] = *req.CategoryID
			}
		}
		if req.Featured != nil {
			updates["featured"] = *req.Featured
		}
		if req.Available != nil {
			updates["available"] = *req.Available
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		var updated models.Product
		if err := db.Preload("Category").First(&updated, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": updated})
	}
}

// DeleteProductHandler removes the product and everything hanging off it:
// inventory with its logs, and any customer favorites.
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var inventory models.Inventory
			if err := tx.Where("product_id = ?", product.ID).First(&inventory).Error; err == nil {
				if err := tx.Where("inventory_id = ?", inventory.ID).Delete(&models.InventoryLog{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&inventory).Error; err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

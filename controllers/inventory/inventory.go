package inventoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type inventoryRow struct {
	models.Inventory
	ProductName  string             `json:"product_name"`
	ProductPrice float64            `json:"product_price"`
	Status       models.StockStatus `json:"status"`
}

type UpdateInventoryRequest struct {
	Quantity      *int `json:"quantity"`
	LowStockAlert *int `json:"low_stock_alert"`
}

// ListInventoryHandler returns all inventory rows, lowest stock first, with
// the joined product name/price and the derived stock status.
func ListInventoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []models.Inventory
		if err := db.Order("quantity ASC").Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}

		productIDs := lo.Map(records, func(r models.Inventory, _ int) string { return r.ProductID })
		var products []models.Product
		if len(productIDs) > 0 {
			if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
				return
			}
		}
		byID := lo.KeyBy(products, func(p models.Product) string { return p.ID })

		rows := lo.Map(records, func(r models.Inventory, _ int) inventoryRow {
			row := inventoryRow{Inventory: r, Status: r.Status()}
			if p, ok := byID[r.ProductID]; ok {
				row.ProductName = p.Name
				row.ProductPrice = p.Price
			}
			return row
		})

		c.JSON(http.StatusOK, gin.H{"inventory": rows})
	}
}

// UpdateInventoryHandler sets an absolute quantity and/or the low-stock
// threshold. A quantity change with a non-zero delta appends one audit log
// row; a no-op change appends nothing.
func UpdateInventoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var inventory models.Inventory
		if err := db.First(&inventory, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory not found"})
			return
		}

		var req UpdateInventoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		prevQuantity := inventory.Quantity

		updates := make(map[string]interface{})
		if req.Quantity != nil {
			updates["quantity"] = *req.Quantity
		}
		if req.LowStockAlert != nil {
			updates["low_stock_alert"] = *req.LowStockAlert
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&inventory).Updates(updates).Error; err != nil {
					return err
				}
			}
			if req.Quantity != nil && *req.Quantity != prevQuantity {
				entry := models.InventoryLog{
					ID:          uuid.NewString(),
					InventoryID: inventory.ID,
					Change:      *req.Quantity - prevQuantity,
					Reason:      "Manual adjustment",
					CreatedBy:   middleware.UserID(c),
				}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory"})
			return
		}

		var updated models.Inventory
		if err := db.First(&updated, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"inventory": updated})
	}
}

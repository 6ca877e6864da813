package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

// ExportProductsToExcel downloads the catalog with inventory levels as an
// xlsx workbook.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Category").
			Preload("Inventory").
			Order("created_at ASC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Category",
			"Featured", "Available", "Quantity", "LowStockAlert", "StockStatus",
			"CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Available)
			if p.Inventory != nil {
				row.AddCell().SetValue(p.Inventory.Quantity)
				row.AddCell().SetValue(p.Inventory.LowStockAlert)
				row.AddCell().SetValue(string(p.Inventory.Status()))
			} else {
				row.AddCell().SetValue(0)
				row.AddCell().SetValue(0)
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

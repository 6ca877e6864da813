package invoiceControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
	"github.com/PerryB-GIT/sweetmeadow-bakery/refgen"
)

// -------- Request Structs --------

type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// CreateInvoiceRequest carries client-computed money amounts. The server
// stores them as-is; see the admin invoice builder, which applies the
// standard tax rate before submitting.
type CreateInvoiceRequest struct {
	UserID       string               `json:"user_id"`
	GuestName    string               `json:"guest_name"`
	GuestEmail   string               `json:"guest_email"`
	GuestPhone   string               `json:"guest_phone"`
	GuestAddress string               `json:"guest_address"`
	DueDate      string               `json:"due_date"`
	Notes        string               `json:"notes"`
	Terms        string               `json:"terms"`
	Subtotal     float64              `json:"subtotal"`
	Tax          float64              `json:"tax"`
	Total        float64              `json:"total"`
	Items        []InvoiceItemRequest `json:"items" binding:"required"`
}

type UpdateInvoiceRequest struct {
	GuestName    *string               `json:"guest_name"`
	GuestEmail   *string               `json:"guest_email"`
	GuestPhone   *string               `json:"guest_phone"`
	GuestAddress *string               `json:"guest_address"`
	Status       *string               `json:"status"`
	Subtotal     *float64              `json:"subtotal"`
	Tax          *float64              `json:"tax"`
	Total        *float64              `json:"total"`
	DueDate      *string               `json:"due_date"`
	Notes        *string               `json:"notes"`
	Terms        *string               `json:"terms"`
	Items        *[]InvoiceItemRequest `json:"items"`
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// -------- Handlers --------

func GetAllInvoicesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var invoices []models.Invoice
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&invoices).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"invoices": invoices})
	}
}

func GetInvoiceByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var invoice models.Invoice
		if err := db.
			Preload("User").
			Preload("Items").
			First(&invoice, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"invoice": invoice})
	}
}

func CreateInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one line item is required"})
			return
		}
		if req.UserID == "" && req.GuestName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a customer or guest contact is required"})
			return
		}

		var items []models.InvoiceItem
		for _, reqItem := range req.Items {
			items = append(items, models.InvoiceItem{
				ID:          uuid.NewString(),
				Description: reqItem.Description,
				Quantity:    reqItem.Quantity,
				UnitPrice:   reqItem.UnitPrice,
				Total:       reqItem.Total,
			})
		}

		invoice := models.Invoice{
			ID:            uuid.NewString(),
			InvoiceNumber: refgen.InvoiceNumber(),
			GuestName:     req.GuestName,
			GuestEmail:    req.GuestEmail,
			GuestPhone:    req.GuestPhone,
			GuestAddress:  req.GuestAddress,
			Status:        models.InvoiceStatusDraft,
			Subtotal:      req.Subtotal,
			Tax:           req.Tax,
			Total:         req.Total,
			DueDate:       parseDate(req.DueDate),
			Notes:         req.Notes,
			Terms:         req.Terms,
			Items:         items,
		}
		if req.UserID != "" {
			invoice.UserID = &req.UserID
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&invoice).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
	}
}

// UpdateInvoiceHandler applies a partial update; a supplied items list
// replaces the line items wholesale inside one transaction.
func UpdateInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var invoice models.Invoice
		if err := db.First(&invoice, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}

		var req UpdateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.GuestName != nil {
			updates["guest_name"] = *req.GuestName
		}
		if req.GuestEmail != nil {
			updates["guest_email"] = *req.GuestEmail
		}
		if req.GuestPhone != nil {
			updates["guest_phone"] = *req.GuestPhone
		}
		if req.GuestAddress != nil {
			updates["guest_address"] = *req.GuestAddress
		}
		if req.Status != nil {
			status, err := models.MapInvoiceStatus(*req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["status"] = status
		}
		if req.Subtotal != nil {
			updates["subtotal"] = *req.Subtotal
		}
		if req.Tax != nil {
			updates["tax"] = *req.Tax
		}
		if req.Total != nil {
			updates["total"] = *req.Total
		}
		if req.DueDate != nil {
			updates["due_date"] = parseDate(*req.DueDate)
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.Terms != nil {
			updates["terms"] = *req.Terms
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&invoice).Updates(updates).Error; err != nil {
					return err
				}
			}
			if req.Items != nil {
				if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
					return err
				}
				for _, reqItem := range *req.Items {
					item := models.InvoiceItem{
						ID:          uuid.NewString(),
						InvoiceID:   invoice.ID,
						Description: reqItem.Description,
						Quantity:    reqItem.Quantity,
						UnitPrice:   reqItem.UnitPrice,
						Total:       reqItem.Total,
					}
					if err := tx.Create(&item).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
			return
		}

		var updated models.Invoice
		if err := db.Preload("User").Preload("Items").First(&updated, "id = ?", invoice.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"invoice": updated})
	}
}

// MarkInvoicePaidHandler stamps the paid date. Any prior status is accepted,
// matching the admin UI which offers the action from SENT and OVERDUE.
func MarkInvoicePaidHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var invoice models.Invoice
		if err := db.First(&invoice, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}

		now := time.Now()
		if err := db.Model(&invoice).Updates(map[string]interface{}{
			"status":    models.InvoiceStatusPaid,
			"paid_date": &now,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
			return
		}

		invoice.Status = models.InvoiceStatusPaid
		invoice.PaidDate = &now
		c.JSON(http.StatusOK, gin.H{"invoice": invoice})
	}
}

func DeleteInvoiceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var invoice models.Invoice
		if err := db.First(&invoice, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&invoice).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

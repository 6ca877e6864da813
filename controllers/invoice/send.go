package invoiceControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
	"github.com/PerryB-GIT/sweetmeadow-bakery/notify"
)

// SendInvoiceHandler emails the invoice to its recipient and moves it to
// SENT. The recipient is the billed user's email, falling back to the guest
// email; with neither, the send fails and the invoice stays in its current
// status.
func SendInvoiceHandler(db *gorm.DB, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var invoice models.Invoice
		if err := db.
			Preload("User").
			Preload("Items").
			First(&invoice, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}

		recipientEmail := invoice.GuestEmail
		recipientName := invoice.GuestName
		if invoice.User != nil {
			if invoice.User.Email != "" {
				recipientEmail = invoice.User.Email
			}
			if invoice.User.Name != "" {
				recipientName = invoice.User.Name
			}
		}
		if recipientName == "" {
			recipientName = "Customer"
		}
		if recipientEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No email address for invoice recipient"})
			return
		}

		body, err := notify.RenderInvoiceEmail(&invoice, recipientName, recipientEmail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invoice"})
			return
		}

		subject := "Invoice #" + invoice.InvoiceNumber + " from Sweet Meadow Bakery"
		if err := notifier.Send(recipientEmail, subject, body); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invoice"})
			return
		}

		now := time.Now()
		if err := db.Model(&invoice).Updates(map[string]interface{}{
			"status":  models.InvoiceStatusSent,
			"sent_at": &now,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invoice"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice sent successfully"})
	}
}

package invoiceControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
	"github.com/PerryB-GIT/sweetmeadow-bakery/notify"
)

type recordingNotifier struct {
	to      string
	subject string
	body    string
	fail    bool
}

func (n *recordingNotifier) Send(to, subject, body string) error {
	if n.fail {
		return errors.New("smtp unavailable")
	}
	n.to, n.subject, n.body = to, subject, body
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Invoice{},
		&models.InvoiceItem{},
	))
	return db
}

func newRouter(db *gorm.DB, notifier notify.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/invoices", CreateInvoiceHandler(db))
	r.PATCH("/admin/invoices/:id", UpdateInvoiceHandler(db))
	r.POST("/admin/invoices/:id/send", SendInvoiceHandler(db, notifier))
	r.POST("/admin/invoices/:id/pay", MarkInvoicePaidHandler(db))
	r.DELETE("/admin/invoices/:id", DeleteInvoiceHandler(db))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateInvoiceStartsAsDraft(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	w := doJSON(r, http.MethodPost, "/admin/invoices", gin.H{
		"guest_name":  "Jamie",
		"guest_email": "jamie@example.com",
		"subtotal":    100.0,
		"tax":         6.25,
		"total":       106.25,
		"items": []gin.H{
			{"description": "Wedding cake", "quantity": 1, "unit_price": 100.0, "total": 100.0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var invoice models.Invoice
	require.NoError(t, db.Preload("Items").First(&invoice).Error)
	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)
	assert.Regexp(t, `^INV-\d{4}-[0-9A-Z]{4}$`, invoice.InvoiceNumber)
	// Client-computed amounts are stored as-is.
	assert.Equal(t, 106.25, invoice.Total)
	assert.Len(t, invoice.Items, 1)
	assert.Nil(t, invoice.SentAt)
}

func TestCreateInvoiceRejectsEmptyItems(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	w := doJSON(r, http.MethodPost, "/admin/invoices", gin.H{
		"guest_name": "Jamie",
		"items":      []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendInvoiceWithoutRecipientFails(t *testing.T) {
	db := openTestDB(t)
	notifier := &recordingNotifier{}
	r := newRouter(db, notifier)

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST1",
		Status:        models.InvoiceStatusDraft,
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPost, "/admin/invoices/"+invoice.ID+"/send", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No email address")

	var unchanged models.Invoice
	require.NoError(t, db.First(&unchanged, "id = ?", invoice.ID).Error)
	assert.Equal(t, models.InvoiceStatusDraft, unchanged.Status)
	assert.Nil(t, unchanged.SentAt)
	assert.Empty(t, notifier.to)
}

func TestSendInvoiceMarksSentAndDelivers(t *testing.T) {
	db := openTestDB(t)
	notifier := &recordingNotifier{}
	r := newRouter(db, notifier)

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST2",
		GuestName:     "Jamie",
		GuestEmail:    "jamie@example.com",
		Status:        models.InvoiceStatusDraft,
		Subtotal:      100,
		Tax:           6.25,
		Total:         106.25,
		Items: []models.InvoiceItem{
			{ID: uuid.NewString(), Description: "Wedding cake", Quantity: 1, UnitPrice: 100, Total: 100},
		},
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPost, "/admin/invoices/"+invoice.ID+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "jamie@example.com", notifier.to)
	assert.Contains(t, notifier.subject, "INV-2026-TST2")
	assert.Contains(t, notifier.body, "Wedding cake")
	assert.Contains(t, notifier.body, "$106.25")

	var sent models.Invoice
	require.NoError(t, db.First(&sent, "id = ?", invoice.ID).Error)
	assert.Equal(t, models.InvoiceStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
}

func TestSendInvoicePrefersUserEmail(t *testing.T) {
	db := openTestDB(t)
	notifier := &recordingNotifier{}
	r := newRouter(db, notifier)

	user := models.User{ID: uuid.NewString(), Email: "account@example.com", Name: "Account Holder", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST3",
		UserID:        &user.ID,
		GuestEmail:    "stale@example.com",
		Status:        models.InvoiceStatusDraft,
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPost, "/admin/invoices/"+invoice.ID+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "account@example.com", notifier.to)
}

func TestSendInvoiceDeliveryFailureKeepsStatus(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, &recordingNotifier{fail: true})

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST4",
		GuestEmail:    "jamie@example.com",
		Status:        models.InvoiceStatusDraft,
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPost, "/admin/invoices/"+invoice.ID+"/send", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var unchanged models.Invoice
	require.NoError(t, db.First(&unchanged, "id = ?", invoice.ID).Error)
	assert.Equal(t, models.InvoiceStatusDraft, unchanged.Status)
}

func TestMarkInvoicePaid(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST5",
		Status:        models.InvoiceStatusSent,
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPost, "/admin/invoices/"+invoice.ID+"/pay", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var paid models.Invoice
	require.NoError(t, db.First(&paid, "id = ?", invoice.ID).Error)
	assert.Equal(t, models.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidDate)
}

func TestUpdateInvoiceReplacesItemsWholesale(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST6",
		Status:        models.InvoiceStatusDraft,
		Items: []models.InvoiceItem{
			{ID: uuid.NewString(), Description: "Old item A", Quantity: 1, UnitPrice: 10, Total: 10},
			{ID: uuid.NewString(), Description: "Old item B", Quantity: 2, UnitPrice: 20, Total: 40},
		},
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPatch, "/admin/invoices/"+invoice.ID, gin.H{
		"items": []gin.H{
			{"description": "Replacement", "quantity": 3, "unit_price": 5.0, "total": 15.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InvoiceItem
	require.NoError(t, db.Where("invoice_id = ?", invoice.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Replacement", items[0].Description)
}

func TestUpdateInvoiceRejectsInvalidStatus(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	invoice := models.Invoice{ID: uuid.NewString(), InvoiceNumber: "INV-2026-TST7", Status: models.InvoiceStatusDraft}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodPatch, "/admin/invoices/"+invoice.ID, gin.H{"status": "VOID"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteInvoiceCascadesToItems(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, notify.NewLogNotifier())

	invoice := models.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-2026-TST8",
		Status:        models.InvoiceStatusDraft,
		Items: []models.InvoiceItem{
			{ID: uuid.NewString(), Description: "Item", Quantity: 1, UnitPrice: 10, Total: 10},
		},
	}
	require.NoError(t, db.Create(&invoice).Error)

	w := doJSON(r, http.MethodDelete, "/admin/invoices/"+invoice.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var invoiceCount, itemCount int64
	db.Model(&models.Invoice{}).Count(&invoiceCount)
	db.Model(&models.InvoiceItem{}).Count(&itemCount)
	assert.Zero(t, invoiceCount)
	assert.Zero(t, itemCount)
}

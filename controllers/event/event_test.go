package eventControllers

import (
	"bytes"
	"encoding/json"
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

	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.EventBooking{}))
	return db
}

func newRouter(db *gorm.DB, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if callerID != "" {
			c.Set(middleware.CtxUserID, callerID)
		}
	})
	r.POST("/events", SubmitInquiryHandler(db))
	r.PATCH("/admin/events/:id", UpdateEventHandler(db))
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

func TestGuestInquiryRequiresContact(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, "")

	w := doJSON(r, http.MethodPost, "/events", gin.H{
		"event_type": "WEDDING",
		"event_date": "2026-10-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryStartsAsInquiryAndAttachesCaller(t *testing.T) {
	db := openTestDB(t)
	userID := uuid.NewString()
	r := newRouter(db, userID)

	w := doJSON(r, http.MethodPost, "/events", gin.H{
		"event_type":  "BIRTHDAY",
		"event_date":  "2026-10-01",
		"guest_count": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.EventBooking
	require.NoError(t, db.First(&booking).Error)
	assert.Equal(t, models.EventStatusInquiry, booking.Status)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, userID, *booking.UserID)
}

func TestInquiryRejectsBadDate(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, uuid.NewString())

	w := doJSON(r, http.MethodPost, "/events", gin.H{
		"event_type": "WEDDING",
		"event_date": "next tuesday",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventValidatesStatus(t *testing.T) {
	db := openTestDB(t)
	r := newRouter(db, "")

	booking := models.EventBooking{ID: uuid.NewString(), EventType: "WEDDING", Status: models.EventStatusInquiry}
	require.NoError(t, db.Create(&booking).Error)

	w := doJSON(r, http.MethodPatch, "/admin/events/"+booking.ID, gin.H{"status": "DONE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/admin/events/"+booking.ID, gin.H{"status": "CONFIRMED"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.EventBooking
	require.NoError(t, db.First(&updated, "id = ?", booking.ID).Error)
	assert.Equal(t, models.EventStatusConfirmed, updated.Status)
}

package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
	"github.com/PerryB-GIT/sweetmeadow-bakery/pricing"
	"github.com/PerryB-GIT/sweetmeadow-bakery/refgen"
)

// -------- Request Structs --------

type StorefrontItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type StorefrontOrderRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	PickupDate string           `json:"pickup_date"`
	PickupTime string           `json:"pickup_time"`
	Notes      string           `json:"notes"`
	Items      []StorefrontItem `json:"items" binding:"required"`
}

type AdminOrderItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

type AdminOrderRequest struct {
	UserID     string           `json:"user_id"`
	GuestName  string           `json:"guest_name"`
	GuestEmail string           `json:"guest_email"`
	GuestPhone string           `json:"guest_phone"`
	PickupDate string           `json:"pickup_date"`
	PickupTime string           `json:"pickup_time"`
	Notes      string           `json:"notes"`
	Items      []AdminOrderItem `json:"items" binding:"required"`
}

type UpdateOrderRequest struct {
	GuestName  *string           `json:"guest_name"`
	GuestEmail *string           `json:"guest_email"`
	GuestPhone *string           `json:"guest_phone"`
	Status     *string           `json:"status"`
	Subtotal   *float64          `json:"subtotal"`
	Tax        *float64          `json:"tax"`
	Total      *float64          `json:"total"`
	PickupDate *string           `json:"pickup_date"`
	PickupTime *string           `json:"pickup_time"`
	Notes      *string           `json:"notes"`
	Items      *[]AdminOrderItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parsePickupDate(s string) *time.Time {
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

// PlaceOrderHandler serves the public storefront order form. Guests must
// supply contact info; authenticated customers are linked by token and earn
// loyalty points. The storefront path charges no tax: total equals subtotal.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StorefrontOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		callerID := middleware.UserID(c)
		if callerID == "" && (req.Name == "" || req.Email == "" || req.Phone == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and phone are required"})
			return
		}

		// Snapshot current catalog prices. Unknown product ids are skipped.
		var items []models.OrderItem
		var lines []pricing.Line
		for _, reqItem := range req.Items {
			var product models.Product
			if err := db.First(&product, "id = ?", reqItem.ProductID).Error; err != nil {
				continue
			}
			items = append(items, models.OrderItem{
				ID:        uuid.NewString(),
				ProductID: product.ID,
				Quantity:  reqItem.Quantity,
				UnitPrice: product.Price,
			})
			lines = append(lines, pricing.Line{Quantity: reqItem.Quantity, UnitPrice: product.Price})
		}

		subtotal := pricing.Subtotal(lines)

		order := models.Order{
			ID:          uuid.NewString(),
			OrderNumber: refgen.StorefrontOrderNumber(),
			GuestName:   req.Name,
			GuestEmail:  req.Email,
			GuestPhone:  req.Phone,
			Status:      models.OrderStatusPending,
			Subtotal:    subtotal,
			Tax:         0,
			Total:       subtotal,
			PickupDate:  parsePickupDate(req.PickupDate),
			PickupTime:  req.PickupTime,
			Notes:       req.Notes,
			Items:       items,
		}
		if callerID != "" {
			order.UserID = &callerID
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			if callerID != "" {
				award := models.LoyaltyPoint{
					ID:          uuid.NewString(),
					UserID:      callerID,
					Points:      pricing.LoyaltyPoints(order.Total),
					Type:        models.LoyaltyEarned,
					Description: "Points earned from order " + order.OrderNumber,
				}
				if err := tx.Create(&award).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"order": gin.H{
			"id":           order.ID,
			"order_number": order.OrderNumber,
			"total":        order.Total,
		}})
	}
}

// CreateOrderHandler is the admin path: the caller picks the customer (or
// guest contact) and the unit prices; tax applies at the standard rate.
// Admin-created orders never award loyalty points.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var items []models.OrderItem
		var lines []pricing.Line
		for _, reqItem := range req.Items {
			items = append(items, models.OrderItem{
				ID:        uuid.NewString(),
				ProductID: reqItem.ProductID,
				Quantity:  reqItem.Quantity,
				UnitPrice: reqItem.UnitPrice,
			})
			lines = append(lines, pricing.Line{Quantity: reqItem.Quantity, UnitPrice: reqItem.UnitPrice})
		}
		subtotal, tax, total := pricing.Totals(lines)

		order := models.Order{
			ID:          uuid.NewString(),
			OrderNumber: refgen.OrderNumber(),
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			GuestPhone:  req.GuestPhone,
			Status:      models.OrderStatusPending,
			Subtotal:    subtotal,
			Tax:         tax,
			Total:       total,
			PickupDate:  parsePickupDate(req.PickupDate),
			PickupTime:  req.PickupTime,
			Notes:       req.Notes,
			Items:       items,
		}
		if req.UserID != "" {
			order.UserID = &req.UserID
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
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

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			Preload("StatusHistory").
			Where("id = ? OR order_number = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// UpdateOrderHandler applies a partial update. A supplied items list replaces
// the existing line items wholesale inside one transaction.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var req UpdateOrderRequest
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
		var statusChanged bool
		if req.Status != nil {
			status, err := models.MapOrderStatus(*req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			statusChanged = status != order.Status
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
		if req.PickupDate != nil {
			updates["pickup_date"] = parsePickupDate(*req.PickupDate)
		}
		if req.PickupTime != nil {
			updates["pickup_time"] = *req.PickupTime
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&order).Updates(updates).Error; err != nil {
					return err
				}
			}
			if statusChanged {
				history := models.OrderStatusHistory{
					ID:        uuid.NewString(),
					OrderID:   order.ID,
					Status:    updates["status"].(models.OrderStatus),
					ChangedBy: middleware.UserID(c),
				}
				if err := tx.Create(&history).Error; err != nil {
					return err
				}
			}
			if req.Items != nil {
				if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
					return err
				}
				for _, reqItem := range *req.Items {
					item := models.OrderItem{
						ID:        uuid.NewString(),
						OrderID:   order.ID,
						ProductID: reqItem.ProductID,
						Quantity:  reqItem.Quantity,
						UnitPrice: reqItem.UnitPrice,
					}
					if err := tx.Create(&item).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		var updated models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product").
			First(&updated, "id = ?", order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": updated})
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&order).Update("status", status).Error; err != nil {
				return err
			}
			history := models.OrderStatusHistory{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				Status:    status,
				ChangedBy: middleware.UserID(c),
			}
			return tx.Create(&history).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}

		order.Status = status
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderStatusHistory{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

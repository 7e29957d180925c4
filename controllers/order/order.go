package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

var (
	ErrEmptyOrder    = errors.New("cannot create an empty order")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrOrderNotFound = errors.New("order not found")
)

// -------- Core Logic --------

// NewOrder assembles a pending order from a cart snapshot. The items, total
// and delivery details are copied once here and never mutated afterwards; an
// empty userID marks a guest order.
func NewOrder(userID string, items []models.CartItem, totalPrice float64, details models.DeliveryDetails) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:  it.ProductID,
			EName:      it.EName,
			ARName:     it.ARName,
			ECategory:  it.ECategory,
			ARCategory: it.ARCategory,
			ImageURL:   it.ImageURL,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	return &models.Order{
		OrderRef:        generateOrderRef(),
		UserID:          userID,
		Items:           orderItems,
		TotalPrice:      totalPrice,
		DeliveryDetails: details,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}, nil
}

// CreateOrder persists a new pending order and returns it with the
// store-assigned identifier filled in.
func CreateOrder(db *gorm.DB, userID string, items []models.CartItem, totalPrice float64, details models.DeliveryDetails) (*models.Order, error) {
	order, err := NewOrder(userID, items, totalPrice, details)
	if err != nil {
		return nil, err
	}
	if err := db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ParseStatus maps a label onto the known status set. There is no transition
// graph beyond pending being the creation status.
func ParseStatus(status string) (models.OrderStatus, error) {
	label := strings.ToLower(strings.TrimSpace(status))
	for _, s := range models.KnownOrderStatuses {
		if label == string(s) {
			return s, nil
		}
	}
	return "", ErrUnknownStatus
}

// UpdateOrderStatus overwrites only the status column. Last write wins: there
// is deliberately no version check, so near-simultaneous success and failure
// callbacks race and the later one sticks.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// GetOrders returns the user's orders, newest first.
func GetOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// GetAllOrders returns every order, newest first. Callers must be admins;
// routing enforces that with middleware.RequireAdmin.
func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// GET /orders (authenticated)
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetOrders(db, c.GetString("user_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := GetAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := UpdateOrderStatus(db, uint(orderID), status); err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": status})
	}
}

package paymentControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cartControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/cart"
	orderControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/order"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func testStore(t *testing.T) *i18n.Store {
	t.Helper()
	dir := t.TempDir()
	en := `{"paymentSuccess": "Payment received!", "paymentFailed": "Payment failed.", "orderNotFound": "Order not found."}`
	ar := `{"paymentSuccess": "تم الدفع!", "paymentFailed": "فشل الدفع.", "orderNotFound": "الطلب غير موجود."}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(en), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ar.json"), []byte(ar), 0o644))
	store, err := i18n.Load(dir)
	require.NoError(t, err)
	return store
}

func resultRouter(db *gorm.DB, tr *i18n.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payment/success", PaymentSuccessHandler(db, nil, nil, tr))
	r.GET("/payment/failure", PaymentFailureHandler(db, tr))
	return r
}

func seedPaidableOrder(t *testing.T, db *gorm.DB, userID string) *models.Order {
	t.Helper()
	items := []models.CartItem{{ProductID: 1, EName: "Salted Caramel Bomb", Price: 28, Quantity: 1}}
	if userID != "" {
		require.NoError(t, cartControllers.ReplaceItems(db, userID, items))
	}
	order, err := orderControllers.CreateOrder(db, userID, items, 28, models.DeliveryDetails{
		FullName: "Sara Ahmed", Address: "12 Palm Street", City: "Dubai",
		PhoneNumber: "+971500000000", Email: "sara@example.com",
	})
	require.NoError(t, err)
	return order
}

func getResult(r *gin.Engine, path string, orderID uint) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("%s?orderId=%d&lang=en", path, orderID), nil))
	return w
}

func orderStatus(t *testing.T, db *gorm.DB, orderID uint) models.OrderStatus {
	t.Helper()
	var got models.Order
	require.NoError(t, db.First(&got, orderID).Error)
	return got.Status
}

func TestPaymentSuccessMarksPaidAndClearsCart(t *testing.T) {
	db := testDB(t)
	r := resultRouter(db, testStore(t))
	order := seedPaidableOrder(t, db, "user-1")

	w := getResult(r, "/payment/success", order.ID)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Payment received!")
	require.Equal(t, models.OrderStatusPaid, orderStatus(t, db, order.ID))

	items, err := cartControllers.Items(db, "user-1")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestPaymentSuccessIsIdempotent(t *testing.T) {
	db := testDB(t)
	r := resultRouter(db, testStore(t))
	order := seedPaidableOrder(t, db, "user-1")

	require.Equal(t, http.StatusOK, getResult(r, "/payment/success", order.ID).Code)
	require.Equal(t, http.StatusOK, getResult(r, "/payment/success", order.ID).Code)
	require.Equal(t, models.OrderStatusPaid, orderStatus(t, db, order.ID))
}

func TestPaymentFailureMarksFailed(t *testing.T) {
	db := testDB(t)
	r := resultRouter(db, testStore(t))
	order := seedPaidableOrder(t, db, "user-1")

	w := getResult(r, "/payment/failure", order.ID)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Payment failed.")
	require.Equal(t, models.OrderStatusFailed, orderStatus(t, db, order.ID))
}

func TestFailureAfterSuccessSticks(t *testing.T) {
	// Last write wins: a failure callback landing after a success callback
	// overwrites it, and nothing compensates.
	db := testDB(t)
	r := resultRouter(db, testStore(t))
	order := seedPaidableOrder(t, db, "user-1")

	require.Equal(t, http.StatusOK, getResult(r, "/payment/success", order.ID).Code)
	require.Equal(t, http.StatusOK, getResult(r, "/payment/failure", order.ID).Code)
	require.Equal(t, models.OrderStatusFailed, orderStatus(t, db, order.ID))
}

func TestResultUnknownOrder(t *testing.T) {
	db := testDB(t)
	r := resultRouter(db, testStore(t))

	w := getResult(r, "/payment/success", 4242)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Order not found.")
}

func TestResultMissingOrderID(t *testing.T) {
	db := testDB(t)
	r := resultRouter(db, testStore(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment/success", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

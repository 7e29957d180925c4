package orderControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()
	order, err := CreateOrder(db, "user-1", []models.CartItem{
		{ProductID: 3, EName: "Dark Truffle Bomb", ARName: "قنبلة الترافل الداكنة", Price: 32, Quantity: 2},
	}, 64, models.DeliveryDetails{
		FullName:    "Sara Ahmed",
		Address:     "12 Palm Street",
		City:        "Dubai",
		PhoneNumber: "+971500000000",
		Email:       "sara@example.com",
	})
	require.NoError(t, err)
	return order
}

func TestUpdateOrderStatusOverwritesOnlyStatus(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db)

	require.NoError(t, UpdateOrderStatus(db, order.ID, models.OrderStatusPaid))

	var got models.Order
	require.NoError(t, db.Preload("Items").First(&got, order.ID).Error)
	require.Equal(t, models.OrderStatusPaid, got.Status)

	// The snapshot stays byte-for-byte what it was at creation.
	require.Equal(t, order.OrderRef, got.OrderRef)
	require.Equal(t, "user-1", got.UserID)
	require.Equal(t, 64.0, got.TotalPrice)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Dark Truffle Bomb", got.Items[0].EName)
	require.Equal(t, 2, got.Items[0].Quantity)
	require.Equal(t, 32.0, got.Items[0].Price)
	require.Equal(t, "Sara Ahmed", got.DeliveryDetails.FullName)
	require.Equal(t, "Dubai", got.DeliveryDetails.City)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	db := testDB(t)
	err := UpdateOrderStatus(db, 4242, models.OrderStatusPaid)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderStatusLastWriteWins(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db)

	// Any known label may overwrite any other; there is no transition graph.
	require.NoError(t, UpdateOrderStatus(db, order.ID, models.OrderStatusPaid))
	require.NoError(t, UpdateOrderStatus(db, order.ID, models.OrderStatusFailed))
	require.NoError(t, UpdateOrderStatus(db, order.ID, models.OrderStatusInDelivery))

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	require.Equal(t, models.OrderStatusInDelivery, got.Status)
}

func TestGetOrdersNewestFirst(t *testing.T) {
	db := testDB(t)
	first := seedOrder(t, db)
	second := seedOrder(t, db)
	require.NoError(t, db.Model(second).Update("created_at", time.Now().Add(time.Hour)).Error)

	orders, err := GetOrders(db, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second.ID, orders[0].ID)
	require.Equal(t, first.ID, orders[1].ID)
}

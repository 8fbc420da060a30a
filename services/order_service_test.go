package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db))
	return svc, db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) *entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func TestParseOrderForm(t *testing.T) {
	form := url.Values{
		"quantity_1":   {"2"},
		"quantity_2":   {"0"},
		"quantity_3":   {"-1"},
		"quantity_4":   {"x"},
		"quantity_abc": {"2"},
		"note":         {"extra ketchup"},
	}

	req := ParseOrderForm(form)
	assert.Equal(t, OrderRequest{1: 2}, req)
}

func TestPlace_OnlyValidLinesAreKept(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedMenuItem(t, db, "Burger", 80)

	// id 999 resolves to nothing and is dropped
	order, err := svc.Place(1, OrderRequest{burger.ID: 2, 999: 5})
	require.NoError(t, err)
	assert.Equal(t, 160.0, order.TotalPrice)

	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	assert.EqualValues(t, 1, orders)

	var items []entity.OrderItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, burger.ID, items[0].MenuItemID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, order.ID, items[0].OrderID)
}

func TestPlace_NoValidLinesWritesNothing(t *testing.T) {
	svc, db := newOrderService(t)
	seedMenuItem(t, db, "Burger", 80)

	_, err := svc.Place(1, OrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Place(1, OrderRequest{999: 3})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, items)
}

func TestHistory_RecomputesFromCurrentPrice(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedMenuItem(t, db, "Burger", 80)

	order, err := svc.Place(7, OrderRequest{burger.ID: 2})
	require.NoError(t, err)
	assert.Equal(t, 160.0, order.TotalPrice)

	// price change after the order retroactively moves the displayed subtotal
	require.NoError(t, db.Model(burger).Update("price", 100.0).Error)

	views, err := svc.History(7)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Lines, 1)

	line := views[0].Lines[0]
	assert.Equal(t, 100.0, line.Price)
	assert.Equal(t, 200.0, line.Subtotal)
	// while the charged total stays frozen
	assert.Equal(t, 160.0, views[0].TotalPrice)
}

func TestHistory_NewestFirstAndOwnOrdersOnly(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedMenuItem(t, db, "Burger", 80)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	first, err := svc.Place(7, OrderRequest{burger.ID: 1})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour) }
	second, err := svc.Place(7, OrderRequest{burger.ID: 2})
	require.NoError(t, err)

	_, err = svc.Place(8, OrderRequest{burger.ID: 3})
	require.NoError(t, err)

	views, err := svc.History(7)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
}

func TestMenuItemDelete_LeavesOrderItemsDangling(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedMenuItem(t, db, "Burger", 80)
	menuRepo := repository.NewMenuRepository(db)

	order, err := svc.Place(7, OrderRequest{burger.ID: 2})
	require.NoError(t, err)

	require.NoError(t, menuRepo.Delete(burger.ID))

	// the order item row survives with its now-dangling reference
	var items int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	assert.EqualValues(t, 1, items)

	// and both views fault instead of papering over it
	_, err = svc.History(7)
	assert.Error(t, err)
	_, err = svc.AllOrders()
	assert.Error(t, err)
}

func TestAllOrders_IncludesOwnerAndLineDetails(t *testing.T) {
	svc, db := newOrderService(t)
	burger := seedMenuItem(t, db, "Burger", 80)
	fries := seedMenuItem(t, db, "Fries", 40)
	require.NoError(t, db.Create(&entity.User{Username: "alice", Password: "pw"}).Error)

	var alice entity.User
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)

	_, err := svc.Place(alice.ID, OrderRequest{burger.ID: 1, fries.ID: 3})
	require.NoError(t, err)

	views, err := svc.AllOrders()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, 200.0, views[0].TotalPrice)
	require.Len(t, views[0].Lines, 2)

	bySubtotal := map[string]float64{}
	for _, l := range views[0].Lines {
		bySubtotal[l.Name] = l.Subtotal
	}
	assert.Equal(t, 80.0, bySubtotal["Burger"])
	assert.Equal(t, 120.0, bySubtotal["Fries"])
}

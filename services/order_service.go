// services/order_service.go
package services

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"gorm.io/gorm"
)

// ErrEmptyOrder is returned when no submitted line survives validation.
// Nothing is written in that case.
var ErrEmptyOrder = errors.New("order has no valid lines")

const orderDateLayout = "2006-01-02 15:04:05"

// OrderRequest is the typed form model: menu item id -> requested quantity.
// Only positive quantities make it in here.
type OrderRequest map[uint]int

const quantityFieldPrefix = "quantity_"

// ParseOrderForm builds an OrderRequest from posted quantity_<id> fields.
// Non-numeric ids or quantities and quantities below one are skipped, never
// rejected: a half-garbled submission still orders the lines that parse.
func ParseOrderForm(form url.Values) OrderRequest {
	req := make(OrderRequest)
	for key, values := range form {
		if !strings.HasPrefix(key, quantityFieldPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(key, quantityFieldPrefix), 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(values[0])
		if err != nil || qty <= 0 {
			continue
		}
		req[uint(id)] = qty
	}
	return req
}

type OrderService struct {
	DB     *gorm.DB
	Orders *repository.OrderRepository
	Menu   *repository.MenuRepository

	now func() time.Time
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, menu *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Orders: orders, Menu: menu, now: time.Now}
}

// Place turns an OrderRequest into one Order plus its OrderItems. Lines whose
// id resolves to no menu item are dropped silently; the total is the sum of
// quantity x current price over the surviving lines. With no surviving line
// it returns ErrEmptyOrder and writes nothing.
func (s *OrderService) Place(userID uint, req OrderRequest) (*entity.Order, error) {
	type line struct {
		itemID uint
		qty    int
	}

	var total float64
	lines := make([]line, 0, len(req))
	for itemID, qty := range req {
		item, err := s.Menu.FindByID(itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		total += item.Price * float64(qty)
		lines = append(lines, line{itemID: item.ID, qty: qty})
	}

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := entity.Order{
		UserID:     userID,
		OrderDate:  s.now().Format(orderDateLayout),
		TotalPrice: total,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			item := entity.OrderItem{OrderID: order.ID, MenuItemID: l.itemID, Quantity: l.qty}
			if err := s.Orders.CreateOrderItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- view models for the templates -----

type OrderLineView struct {
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
}

type OrderView struct {
	ID         uint
	Username   string
	OrderDate  string
	TotalPrice float64
	Lines      []OrderLineView
}

// lineViews re-resolves each order item against the current menu item, so
// name, price and subtotal follow later menu edits. A line whose menu item
// no longer exists fails the whole view.
func (s *OrderService) lineViews(items []entity.OrderItem) ([]OrderLineView, error) {
	lines := make([]OrderLineView, 0, len(items))
	for _, it := range items {
		item, err := s.Menu.FindByID(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, OrderLineView{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: it.Quantity,
			Subtotal: item.Price * float64(it.Quantity),
		})
	}
	return lines, nil
}

// History lists the user's orders newest first. Line subtotals track the
// current menu price even though TotalPrice stays frozen at what was charged.
func (s *OrderService) History(userID uint) ([]OrderView, error) {
	orders, err := s.Orders.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		lines, err := s.lineViews(o.Items)
		if err != nil {
			return nil, err
		}
		views = append(views, OrderView{
			ID:         o.ID,
			OrderDate:  o.OrderDate,
			TotalPrice: o.TotalPrice,
			Lines:      lines,
		})
	}
	return views, nil
}

// AllOrders lists every order for the dashboard, newest first, with the
// owning username and the same re-resolved line details as History.
func (s *OrderService) AllOrders() ([]OrderView, error) {
	orders, err := s.Orders.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		lines, err := s.lineViews(o.Items)
		if err != nil {
			return nil, err
		}
		views = append(views, OrderView{
			ID:         o.ID,
			Username:   o.User.Username,
			OrderDate:  o.OrderDate,
			TotalPrice: o.TotalPrice,
			Lines:      lines,
		})
	}
	return views, nil
}

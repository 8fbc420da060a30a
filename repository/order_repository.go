// repository/order_repository.go
package repository

import (
	"github.com/caizhenliu/order/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// FindAll lists every order newest first, with owner and line items.
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("User").
		Preload("Items").
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

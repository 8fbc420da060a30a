package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	// no FK constraint: the reference outlives a deleted menu item
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}

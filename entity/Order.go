package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderDate  string  `json:"orderDate"` // "2006-01-02 15:04:05", sortable as text
	TotalPrice float64 `json:"totalPrice"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderItem `json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"index" json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImagePath   string  `json:"imagePath"` // public path under /static/images, empty when none

	OrderItems []OrderItem `json:"-"`
}

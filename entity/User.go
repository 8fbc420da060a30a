package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Password     string `json:"-"` // stored as submitted, compared as-is
	IsRestaurant bool   `gorm:"default:false" json:"isRestaurant"`

	Orders []Order `json:"-"`
}

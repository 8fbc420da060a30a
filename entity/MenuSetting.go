package entity

import (
	"gorm.io/gorm"
)

// MenuSetting is a singleton row; the first record wins.
type MenuSetting struct {
	gorm.Model
	FullMenuImage string `json:"fullMenuImage"`
}

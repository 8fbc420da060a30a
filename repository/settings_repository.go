// repository/settings_repository.go
package repository

import (
	"errors"

	"github.com/caizhenliu/order/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton menu-settings row, creating it on first access.
func (r *SettingsRepository) Get() (*entity.MenuSetting, error) {
	var setting entity.MenuSetting
	err := r.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = entity.MenuSetting{}
		if err := r.DB.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingsRepository) UpdateFullMenuImage(path string) error {
	setting, err := r.Get()
	if err != nil {
		return err
	}
	setting.FullMenuImage = path
	return r.DB.Save(setting).Error
}

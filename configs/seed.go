package configs

import (
	"github.com/caizhenliu/order/entity"
	"go.uber.org/zap"
)

// Seed bootstraps the two default accounts, a starter menu and the
// menu-settings row. Runs only while no restaurant account exists.
func Seed(logger *zap.SugaredLogger) error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("is_restaurant = ?", true).Count(&count)
	if count > 0 {
		logger.Info("restaurant account already exists, skip seeding")
		return nil
	}

	users := []entity.User{
		{Username: "restaurant", Password: "restaurant", IsRestaurant: true},
		{Username: "customer", Password: "customer", IsRestaurant: false},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Burger", Price: 80, Description: "Beef burger"},
		{Name: "Fries", Price: 40, Description: "Crispy fries"},
		{Name: "Cola", Price: 30, Description: "Iced cola"},
		{Name: "Salad", Price: 60, Description: "Fresh garden salad"},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	if err := db.Create(&entity.MenuSetting{}).Error; err != nil {
		return err
	}

	logger.Infow("seeded defaults", "users", len(users), "menuItems", len(items))
	return nil
}

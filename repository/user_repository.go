// repository/user_repository.go
package repository

import (
	"github.com/caizhenliu/order/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) UpdatePassword(id uint, password string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", password).Error
}

// Delete removes the row unconditionally. Orders owned by the user are left
// in place and become orphaned references.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}

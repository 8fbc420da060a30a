// services/auth_service.go
package services

import (
	"errors"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the one generic login failure. Callers must not
// learn whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	Users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

// Login resolves a user for the submitted credentials. When isCustomer is set
// and the username is unknown, login doubles as signup: a customer account is
// created with the submitted password. Everything else requires an exact
// username+password match.
func (s *AuthService) Login(username, password string, isCustomer bool) (*entity.User, error) {
	user, err := s.Users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !isCustomer {
			return nil, ErrInvalidCredentials
		}
		user = &entity.User{Username: username, Password: password, IsRestaurant: false}
		if err := s.Users.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

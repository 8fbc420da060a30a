package services

import (
	"testing"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo), repo
}

func TestLogin_CustomerSignupOnUnknownUsername(t *testing.T) {
	svc, repo := newAuthService(t)

	user, err := svc.Login("alice", "secret", true)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "secret", user.Password)
	assert.False(t, user.IsRestaurant)

	// exactly one row, and the same credentials log in again
	var count int64
	repo.DB.Model(&entity.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)

	again, err := svc.Login("alice", "secret", true)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	repo.DB.Model(&entity.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogin_RestaurantUnknownUsernameAlwaysFails(t *testing.T) {
	svc, repo := newAuthService(t)

	_, err := svc.Login("ghost", "whatever", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// no signup happened
	var count int64
	repo.DB.Model(&entity.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLogin_WrongPasswordFailsGenerically(t *testing.T) {
	svc, repo := newAuthService(t)
	require.NoError(t, repo.Create(&entity.User{Username: "bob", Password: "right"}))

	// the customer hint does not turn a wrong password into a signup
	_, err := svc.Login("bob", "wrong", true)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("bob", "wrong", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	got, err := repo.FindByUsername("bob")
	require.NoError(t, err)
	assert.Equal(t, "right", got.Password)
}

func TestLogin_RestaurantExactMatch(t *testing.T) {
	svc, repo := newAuthService(t)
	require.NoError(t, repo.Create(&entity.User{Username: "restaurant", Password: "restaurant", IsRestaurant: true}))

	user, err := svc.Login("restaurant", "restaurant", false)
	require.NoError(t, err)
	assert.True(t, user.IsRestaurant)
}

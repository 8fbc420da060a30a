package utils

import (
	"github.com/caizhenliu/order/entity"
	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user the auth middleware resolved, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := v.(*entity.User)
	if !ok {
		return nil
	}
	return user
}

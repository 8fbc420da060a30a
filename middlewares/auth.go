package middlewares

import (
	"net/http"

	"github.com/caizhenliu/order/repository"
	"github.com/caizhenliu/order/session"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session cookie to a user and stores it on the
// context. Missing cookie, unknown token, deleted user or (when restaurantOnly)
// a customer account all end the same way: 303 back to the login page.
func AuthMiddleware(store session.Store, users *repository.UserRepository, restaurantOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		userID, ok := store.Get(token)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			// stale token for a deleted user behaves as anonymous
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		if restaurantOnly && !user.IsRestaurant {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

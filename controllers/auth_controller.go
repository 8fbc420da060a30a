package controllers

import (
	"errors"
	"net/http"

	"github.com/caizhenliu/order/services"
	"github.com/caizhenliu/order/session"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username   string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
	IsCustomer string `form:"is_customer"`
}

type AuthController struct {
	Auth     *services.AuthService
	Sessions session.Store
}

func NewAuthController(auth *services.AuthService, sessions session.Store) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions}
}

// GET /
func (a *AuthController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": services.ErrInvalidCredentials.Error()})
		return
	}

	user, err := a.Auth.Login(req.Username, req.Password, req.IsCustomer == "true")
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	token := session.NewToken()
	if err := a.Sessions.Set(token, user.ID); err != nil {
		serverError(c, err)
		return
	}
	c.SetCookie(session.CookieName, token, 0, "/", "", false, true)

	if user.IsRestaurant {
		c.Redirect(http.StatusSeeOther, "/restaurant/dashboard")
	} else {
		c.Redirect(http.StatusSeeOther, "/customer/menu")
	}
}

// GET /logout
func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		_ = a.Sessions.Delete(token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

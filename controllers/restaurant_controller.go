package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"github.com/caizhenliu/order/services"
	"github.com/caizhenliu/order/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddUserRequest struct {
	Username     string `form:"username" binding:"required"`
	Password     string `form:"password" binding:"required"`
	IsRestaurant string `form:"is_restaurant" binding:"required"`
}

type RestaurantController struct {
	Users  *repository.UserRepository
	Orders *services.OrderService
}

func NewRestaurantController(users *repository.UserRepository, orders *services.OrderService) *RestaurantController {
	return &RestaurantController{Users: users, Orders: orders}
}

// GET /restaurant/dashboard
func (rc *RestaurantController) Dashboard(c *gin.Context) {
	orders, err := rc.Orders.AllOrders()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "restaurant_dashboard.html", gin.H{
		"user":   utils.CurrentUser(c),
		"orders": orders,
	})
}

// GET /restaurant/users
func (rc *RestaurantController) ListUsers(c *gin.Context) {
	users, err := rc.Users.FindAll()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "restaurant_users.html", gin.H{
		"user":     utils.CurrentUser(c),
		"allUsers": users,
	})
}

// POST /restaurant/users/add
func (rc *RestaurantController) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/users")
		return
	}

	// role comes from the form, not inferred
	user := entity.User{
		Username:     req.Username,
		Password:     req.Password,
		IsRestaurant: strings.EqualFold(req.IsRestaurant, "true"),
	}
	if err := rc.Users.Create(&user); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/users")
}

// POST /restaurant/users/update/:id
func (rc *RestaurantController) UpdateUser(c *gin.Context) {
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	// mismatch is a silent no-op
	if password == "" || password != confirm {
		c.Redirect(http.StatusSeeOther, "/restaurant/users")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/users")
		return
	}

	_, err = rc.Users.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusSeeOther, "/restaurant/users")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := rc.Users.UpdatePassword(uint(id), password); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/users")
}

// GET /restaurant/users/delete/:id
func (rc *RestaurantController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/users")
		return
	}
	// unconditional: no guard for the last restaurant account or owned orders
	if err := rc.Users.Delete(uint(id)); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/users")
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/caizhenliu/order/repository"
	"github.com/caizhenliu/order/services"
	"github.com/caizhenliu/order/utils"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Items    *repository.MenuRepository
	Settings *repository.SettingsRepository
	Orders   *services.OrderService
}

func NewCustomerController(items *repository.MenuRepository, settings *repository.SettingsRepository, orders *services.OrderService) *CustomerController {
	return &CustomerController{Items: items, Settings: settings, Orders: orders}
}

// GET /customer/menu (both roles)
func (cc *CustomerController) Menu(c *gin.Context) {
	items, err := cc.Items.FindAll()
	if err != nil {
		serverError(c, err)
		return
	}
	setting, err := cc.Settings.Get()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "customer_menu.html", gin.H{
		"user":          utils.CurrentUser(c),
		"menuItems":     items,
		"fullMenuImage": setting.FullMenuImage,
	})
}

// POST /customer/order
func (cc *CustomerController) PlaceOrder(c *gin.Context) {
	user := utils.CurrentUser(c)

	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, "/customer/menu")
		return
	}
	req := services.ParseOrderForm(c.Request.PostForm)

	_, err := cc.Orders.Place(user.ID, req)
	if errors.Is(err, services.ErrEmptyOrder) {
		c.Redirect(http.StatusSeeOther, "/customer/menu")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customer/orders")
}

// GET /customer/orders
func (cc *CustomerController) OrderHistory(c *gin.Context) {
	user := utils.CurrentUser(c)

	orders, err := cc.Orders.History(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "customer_orders.html", gin.H{
		"user":   user,
		"orders": orders,
	})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/caizhenliu/order/entity"
	"github.com/caizhenliu/order/repository"
	"github.com/caizhenliu/order/storage"
	"github.com/caizhenliu/order/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemRequest struct {
	Name string `form:"name" binding:"required"`
	// bound as a string so a missing field is distinguishable from price 0
	Price       string `form:"price" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// parsePrice rejects non-numeric and negative prices.
func (r *MenuItemRequest) parsePrice() (float64, error) {
	price, err := strconv.ParseFloat(r.Price, 64)
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, errors.New("price must be non-negative")
	}
	return price, nil
}

type MenuController struct {
	Menu     *repository.MenuRepository
	Settings *repository.SettingsRepository
	Images   *storage.ImageStore
}

func NewMenuController(menu *repository.MenuRepository, settings *repository.SettingsRepository, images *storage.ImageStore) *MenuController {
	return &MenuController{Menu: menu, Settings: settings, Images: images}
}

// GET /restaurant/menu
func (mc *MenuController) ListItems(c *gin.Context) {
	items, err := mc.Menu.FindAll()
	if err != nil {
		serverError(c, err)
		return
	}
	setting, err := mc.Settings.Get()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "restaurant_menu.html", gin.H{
		"user":          utils.CurrentUser(c),
		"menuItems":     items,
		"fullMenuImage": setting.FullMenuImage,
	})
}

// POST /restaurant/menu/add
func (mc *MenuController) AddItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}
	price, err := req.parsePrice()
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}

	item := entity.MenuItem{Name: req.Name, Price: price, Description: req.Description}

	// optional image alongside the form fields
	if file, err := c.FormFile("item_image"); err == nil && file.Filename != "" {
		src, err := file.Open()
		if err != nil {
			serverError(c, err)
			return
		}
		defer src.Close()
		path, err := mc.Images.Save(src)
		if err != nil {
			serverError(c, err)
			return
		}
		item.ImagePath = path
	}

	if err := mc.Menu.Create(&item); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/menu")
}

// POST /restaurant/menu/update/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}
	price, err := req.parsePrice()
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}

	item, err := mc.Menu.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	// image is untouched here; uploads have their own route
	item.Name = req.Name
	item.Price = price
	item.Description = req.Description
	if err := mc.Menu.Update(item); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/menu")
}

// POST /restaurant/menu/upload-image/:id
func (mc *MenuController) UploadItemImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}

	item, err := mc.Menu.FindByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	file, err := c.FormFile("item_image")
	if err == nil && file.Filename != "" {
		src, err := file.Open()
		if err != nil {
			serverError(c, err)
			return
		}
		defer src.Close()

		// the previous image file stays on disk
		path, err := mc.Images.Save(src)
		if err != nil {
			serverError(c, err)
			return
		}
		item.ImagePath = path
		if err := mc.Menu.Update(item); err != nil {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/menu")
}

// POST /restaurant/menu/upload-full-menu
func (mc *MenuController) UploadFullMenuImage(c *gin.Context) {
	file, err := c.FormFile("full_menu_image")
	if err == nil && file.Filename != "" {
		src, err := file.Open()
		if err != nil {
			serverError(c, err)
			return
		}
		defer src.Close()

		path, err := mc.Images.Save(src)
		if err != nil {
			serverError(c, err)
			return
		}
		if err := mc.Settings.UpdateFullMenuImage(path); err != nil {
			serverError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/menu")
}

// GET /restaurant/menu/delete/:id
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/restaurant/menu")
		return
	}
	// order items referencing this id are left dangling
	if err := mc.Menu.Delete(uint(id)); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/restaurant/menu")
}

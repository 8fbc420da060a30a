package routes

import (
	"github.com/caizhenliu/order/controllers"
	"github.com/caizhenliu/order/middlewares"
	"github.com/caizhenliu/order/repository"
	"github.com/caizhenliu/order/services"
	"github.com/caizhenliu/order/session"
	"github.com/caizhenliu/order/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store, images *storage.ImageStore) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, sessions)
	restCtrl := controllers.NewRestaurantController(userRepo, orderSvc)
	menuCtrl := controllers.NewMenuController(menuRepo, settingsRepo, images)
	custCtrl := controllers.NewCustomerController(menuRepo, settingsRepo, orderSvc)

	// Public
	r.GET("/", authCtrl.LoginPage)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", authCtrl.Logout)

	// Restaurant only
	rest := r.Group("/restaurant", middlewares.AuthMiddleware(sessions, userRepo, true))
	{
		rest.GET("/dashboard", restCtrl.Dashboard)

		rest.GET("/users", restCtrl.ListUsers)
		rest.POST("/users/add", restCtrl.AddUser)
		rest.POST("/users/update/:id", restCtrl.UpdateUser)
		rest.GET("/users/delete/:id", restCtrl.DeleteUser)

		rest.GET("/menu", menuCtrl.ListItems)
		rest.POST("/menu/add", menuCtrl.AddItem)
		rest.POST("/menu/update/:id", menuCtrl.UpdateItem)
		rest.POST("/menu/upload-image/:id", menuCtrl.UploadItemImage)
		rest.POST("/menu/upload-full-menu", menuCtrl.UploadFullMenuImage)
		rest.GET("/menu/delete/:id", menuCtrl.DeleteItem)
	}

	// Any authenticated identity
	cust := r.Group("/customer", middlewares.AuthMiddleware(sessions, userRepo, false))
	{
		cust.GET("/menu", custCtrl.Menu)
		cust.POST("/order", custCtrl.PlaceOrder)
		cust.GET("/orders", custCtrl.OrderHistory)
	}
}

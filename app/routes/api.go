package routes

import (
	"gorm.io/gorm"

	"github.com/morehouse/pizzashack/app/controllers"
	"github.com/morehouse/pizzashack/app/repositories"
	"github.com/morehouse/pizzashack/app/services"
	"github.com/morehouse/pizzashack/pkg/ctx"
	"github.com/morehouse/pizzashack/pkg/router"
)

// RegisterAPI mounts the pizza shack endpoints on r, backed by db.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	orders := repositories.NewOrderRepository(db)

	home := controllers.NewHomeController()
	userController := controllers.NewUserController(services.NewUserService(users))
	authController := controllers.NewAuthController(services.NewAuthService(users))
	orderController := controllers.NewOrderController(services.NewOrderService(orders))

	r.Get("/", "home", ctx.Wrap(home.Index))

	user := r.Group("/user")
	user.Post("/", "users.store", ctx.Wrap(userController.Store))
	user.Get("/{id}", "users.show", ctx.Wrap(userController.Show))
	user.Put("/{id}", "users.update", ctx.Wrap(userController.Update))
	user.Delete("/{id}", "users.destroy", ctx.Wrap(userController.Destroy))

	r.Post("/auth/login", "auth.login", ctx.Wrap(authController.Login))

	order := r.Group("/orders")
	order.Post("/", "orders.store", ctx.Wrap(orderController.Store))
	order.Get("/", "orders.index", ctx.Wrap(orderController.Index))
	order.Get("/{id}", "orders.show", ctx.Wrap(orderController.Show))
	order.Put("/{id}", "orders.update", ctx.Wrap(orderController.Update))
	order.Delete("/{id}", "orders.destroy", ctx.Wrap(orderController.Destroy))
}

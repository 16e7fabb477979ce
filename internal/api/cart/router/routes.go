// Package cartrouter đăng ký các route quản trị của domain giỏ hàng.
package cartrouter

import (
	"github.com/gofiber/fiber/v3"

	carthdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/handler"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/middleware"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/router"
)

// Register đăng ký các route /api/abandoned-carts, tất cả đều sau JWT middleware.
// Các route /stats/* phải đăng ký trước /:id để không bị match nhầm thành ID.
func Register(app *fiber.App, r *router.Router) error {
	handler, err := carthdl.NewCartHandler()
	if err != nil {
		return err
	}

	prefix := r.Prefix.API + "/abandoned-carts"
	auth := []fiber.Handler{middleware.AuthMiddleware("")}

	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/stats/overview", auth, handler.StatsOverview)
	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/stats/daily", auth, handler.StatsDaily)
	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/", auth, handler.List)
	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/:id", auth, handler.GetByID)
	router.RegisterRouteWithMiddleware(app, prefix, "PATCH", "/:id/status", auth, handler.UpdateStatus)

	return nil
}

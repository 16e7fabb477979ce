// Package qarouter đăng ký các route của domain hỏi đáp hỗ trợ.
package qarouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/middleware"
	qahdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/handler"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/router"
)

// Register đăng ký các route /api/questions-answers, tất cả đều sau JWT middleware.
// Route /stats phải đăng ký trước /:id để không bị match nhầm thành ID.
func Register(app *fiber.App, r *router.Router) error {
	handler, err := qahdl.NewQAHandler()
	if err != nil {
		return err
	}

	prefix := r.Prefix.API + "/questions-answers"
	auth := []fiber.Handler{middleware.AuthMiddleware("")}

	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/stats", auth, handler.Stats)
	router.RegisterRouteWithMiddleware(app, prefix, "POST", "/", auth, handler.Create)
	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/", auth, handler.List)
	router.RegisterRouteWithMiddleware(app, prefix, "GET", "/:id", auth, handler.GetByID)
	router.RegisterRouteWithMiddleware(app, prefix, "PUT", "/:id", auth, handler.Update)
	router.RegisterRouteWithMiddleware(app, prefix, "DELETE", "/:id", auth, handler.Delete)
	router.RegisterRouteWithMiddleware(app, prefix, "PATCH", "/:id/answer", auth, handler.Answer)

	return nil
}

// Package authrouter đăng ký các route của domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/handler"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/middleware"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/router"
)

// Register đăng ký các route /auth.
// Đăng ký/đăng nhập/kiểm tra token là công khai, profile yêu cầu JWT.
func Register(app *fiber.App, r *router.Router) error {
	handler, err := authhdl.NewAuthHandler()
	if err != nil {
		return err
	}

	group := app.Group(r.Prefix.Auth)
	group.Post("/register", handler.Register)
	group.Post("/login", handler.Login)
	group.Post("/verify-token", handler.VerifyToken)

	auth := []fiber.Handler{middleware.AuthMiddleware("")}
	router.RegisterRouteWithMiddleware(app, r.Prefix.Auth, "GET", "/profile", auth, handler.Profile)

	return nil
}

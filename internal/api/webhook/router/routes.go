// Package webhookrouter đăng ký các route công khai của domain webhook.
package webhookrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/douglasrochagreenn/grenncovery-sub000/internal/api/router"
	webhookhdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/webhook/handler"
)

// Register đăng ký các route /webhook. Tất cả đều không cần xác thực:
// webhook sender không có khả năng giữ token, health check dành cho probe.
func Register(app *fiber.App, r *router.Router) error {
	handler, err := webhookhdl.NewWebhookHandler()
	if err != nil {
		return err
	}

	group := app.Group(r.Prefix.Webhook)

	group.Post("/abandoned-cart", handler.HandleAbandonedCart)
	group.Post("/abandoned-cart/strict", handler.HandleStrict)
	group.Post("/greenncovery", handler.HandleGreenncovery)
	group.Patch("/abandoned-cart/:id/status", handler.HandleStatusUpdate)
	group.Get("/health", handler.HandleHealth)

	return nil
}

package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// LƯU Ý: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
//
// Fiber v3 có vấn đề với cách đăng ký middleware trực tiếp trong route:
//
//	router.Get("/path", middleware.AuthMiddleware(""), handler)
//	→ Middleware sẽ KHÔNG được gọi, request bỏ qua middleware!
//
// Cách đúng: dùng RegisterRouteWithMiddleware, middleware được gắn qua
// .Use() trên một group riêng cho route đó.
// ============================================================================

// RoutePrefix chứa các prefix cơ bản của API
type RoutePrefix struct {
	API     string // Prefix cho các API cần xác thực (/api)
	Webhook string // Prefix cho các webhook công khai (/webhook)
	Auth    string // Prefix cho đăng ký/đăng nhập (/auth)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		API:     "/api",
		Webhook: "/webhook",
		Auth:    "/auth",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app    *fiber.App
	Prefix RoutePrefix
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app:    app,
		Prefix: NewRoutePrefix(),
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() trên group
// (cách duy nhất hoạt động đúng trong Fiber v3, xem comment đầu file).
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (prefix đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(app *fiber.App, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(app, r); err != nil {
			return err
		}
	}
	return nil
}

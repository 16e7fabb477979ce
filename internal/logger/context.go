package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// WithRequest tạo log entry với thông tin từ Fiber request context.
// Các field chuẩn: request_id, method, path, ip.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"request_id": requestid.FromContext(c),
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
	})
}

// WithFields tạo log entry với các fields tùy chỉnh
func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetAppLogger().WithFields(fields)
}

// WithError tạo log entry với error
func WithError(err error) *logrus.Entry {
	return GetErrorLogger().WithError(err)
}

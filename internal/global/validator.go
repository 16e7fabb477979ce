package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Các trạng thái lifecycle hợp lệ của một giỏ hàng bị bỏ rơi.
// Dùng bởi custom validator "cart_status" cho các DTO cập nhật trạng thái.
var validCartStatuses = map[string]struct{}{
	"abandoned": {},
	"recovered": {},
	"cancelled": {},
}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("cart_status", validateCartStatus)
}

// validateCartStatus kiểm tra giá trị có nằm trong tập trạng thái giỏ hàng hợp lệ
func validateCartStatus(fl validator.FieldLevel) bool {
	_, ok := validCartStatuses[fl.Field().String()]
	return ok
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

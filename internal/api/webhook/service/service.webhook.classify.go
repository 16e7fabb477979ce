package webhooksvc

// abandonedCheckoutEvents là tập các tên sự kiện được coi là "checkout bị bỏ rơi".
// Các đối tác upstream dùng nhiều tên khác nhau cho cùng một sự kiện.
// So khớp chính xác, phân biệt hoa thường.
var abandonedCheckoutEvents = map[string]struct{}{
	"checkoutAbandoned":  {},
	"cart_abandoned":     {},
	"abandoned_cart":     {},
	"checkout_abandoned": {},
}

// IsAbandonedCheckout kiểm tra eventName có phải sự kiện checkout bị bỏ rơi không.
// Trả về false nghĩa là caller phải trả "ignored" và KHÔNG persist gì cả.
// Đây là policy, không phải lỗi.
func IsAbandonedCheckout(eventName string) bool {
	_, ok := abandonedCheckoutEvents[eventName]
	return ok
}

package webhooksvc

import (
	"testing"
)

func TestIsAbandonedCheckout_AcceptedEvents(t *testing.T) {
	accepted := []string{
		"checkoutAbandoned",
		"cart_abandoned",
		"abandoned_cart",
		"checkout_abandoned",
	}
	for _, name := range accepted {
		if !IsAbandonedCheckout(name) {
			t.Errorf("Sự kiện %q phải được nhận là checkout bị bỏ rơi", name)
		}
	}
}

func TestIsAbandonedCheckout_RejectedEvents(t *testing.T) {
	rejected := []string{
		"",
		"saleApproved",
		"checkoutCompleted",
		"CHECKOUTABANDONED",  // so khớp phân biệt hoa thường
		"CheckoutAbandoned",  // khác hoa thường với synonym hợp lệ
		"checkoutAbandoned ", // có khoảng trắng thừa
		"cart-abandoned",
	}
	for _, name := range rejected {
		if IsAbandonedCheckout(name) {
			t.Errorf("Sự kiện %q không được nhận là checkout bị bỏ rơi", name)
		}
	}
}

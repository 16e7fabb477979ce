package webhooksvc

import (
	"encoding/json"
	"testing"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
)

// decode payload qua encoding/json để giả lập đúng kiểu dữ liệu nhận từ HTTP body
func decodePayload(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("Payload test không parse được: %v", err)
	}
	return raw
}

func TestExtractAbandonedCartEvent_FullPayload(t *testing.T) {
	raw := decodePayload(t, `{
		"event": "checkoutAbandoned",
		"type": "checkout",
		"sale": {"id": 526, "amount": 297.5, "status": "abandoned"},
		"client": {"id": 11, "name": "Adrian Barton", "email": "adrian.barton@greenholt.net"},
		"product": {"id": 42, "name": "Curso de Marketing"}
	}`)

	cart := ExtractAbandonedCartEvent(raw)

	if cart.EventName != "checkoutAbandoned" {
		t.Errorf("EventName = %q, muốn checkoutAbandoned", cart.EventName)
	}
	if cart.Sale.ID != 526 {
		t.Errorf("Sale.ID = %d, muốn 526", cart.Sale.ID)
	}
	if cart.Sale.Amount != 297.5 {
		t.Errorf("Sale.Amount = %v, muốn 297.5", cart.Sale.Amount)
	}
	if cart.Client.Email != "adrian.barton@greenholt.net" {
		t.Errorf("Client.Email = %q, muốn adrian.barton@greenholt.net", cart.Client.Email)
	}
	if cart.Client.Name != "Adrian Barton" {
		t.Errorf("Client.Name = %q, muốn Adrian Barton", cart.Client.Name)
	}
	if cart.Product.Name != "Curso de Marketing" {
		t.Errorf("Product.Name = %q, muốn Curso de Marketing", cart.Product.Name)
	}
	if cart.CartStatus != cartmodels.CartStatusAbandoned {
		t.Errorf("CartStatus = %q, muốn %q", cart.CartStatus, cartmodels.CartStatusAbandoned)
	}
}

func TestExtractAbandonedCartEvent_FallbackPaths(t *testing.T) {
	// sale.id không có, phải fallback sang order.id
	raw := decodePayload(t, `{
		"event": "cart_abandoned",
		"order": {"id": 99, "amount": 50},
		"customer": {"email": "a@b.com"}
	}`)

	cart := ExtractAbandonedCartEvent(raw)

	if cart.Sale.ID != 99 {
		t.Errorf("Sale.ID = %d, muốn fallback sang order.id = 99", cart.Sale.ID)
	}
	if cart.Sale.Amount != 50 {
		t.Errorf("Sale.Amount = %v, muốn fallback sang order.amount = 50", cart.Sale.Amount)
	}
	if cart.Client.Email != "a@b.com" {
		t.Errorf("Client.Email = %q, muốn fallback sang customer.email", cart.Client.Email)
	}
}

func TestExtractAbandonedCartEvent_FallbackOrder(t *testing.T) {
	// Cả sale.id và order.id cùng có: sale.id phải thắng vì đứng trước trong danh sách ứng viên
	raw := decodePayload(t, `{
		"sale": {"id": 1},
		"order": {"id": 2}
	}`)

	cart := ExtractAbandonedCartEvent(raw)
	if cart.Sale.ID != 1 {
		t.Errorf("Sale.ID = %d, muốn 1 (sale.id ưu tiên hơn order.id)", cart.Sale.ID)
	}
}

func TestExtractAbandonedCartEvent_Defaults(t *testing.T) {
	cart := ExtractAbandonedCartEvent(map[string]interface{}{})

	if cart.Sale.ID != 0 {
		t.Errorf("Sale.ID = %d, muốn mặc định 0", cart.Sale.ID)
	}
	if cart.Sale.Amount != 0 {
		t.Errorf("Sale.Amount = %v, muốn mặc định 0", cart.Sale.Amount)
	}
	if cart.Client.Name != DefaultClientName {
		t.Errorf("Client.Name = %q, muốn mặc định %q", cart.Client.Name, DefaultClientName)
	}
	if cart.EventType != "checkout" {
		t.Errorf("EventType = %q, muốn mặc định checkout", cart.EventType)
	}
	if cart.Sale.CreatedAt == "" {
		t.Error("Sale.CreatedAt rỗng, muốn mặc định timestamp hiện tại")
	}
	if cart.ProductMetadata == nil || cart.ProposalMetadata == nil {
		t.Error("Metadata phải là slice rỗng, không được nil")
	}
	if cart.Sale.ProposalID != nil {
		t.Error("Sale.ProposalID phải là nil khi payload không có giá trị")
	}
}

func TestExtractAbandonedCartEvent_NullableFields(t *testing.T) {
	raw := decodePayload(t, `{
		"sale": {"id": 3, "proposalId": 77},
		"product": {"id": 5, "stock": 12, "thankYouPage": "https://example.com/thanks"}
	}`)

	cart := ExtractAbandonedCartEvent(raw)

	if cart.Sale.ProposalID == nil || *cart.Sale.ProposalID != 77 {
		t.Errorf("Sale.ProposalID = %v, muốn 77", cart.Sale.ProposalID)
	}
	if cart.Product.Stock == nil || *cart.Product.Stock != 12 {
		t.Errorf("Product.Stock = %v, muốn 12", cart.Product.Stock)
	}
	if cart.Product.ThankYouPage == nil || *cart.Product.ThankYouPage != "https://example.com/thanks" {
		t.Errorf("Product.ThankYouPage = %v, muốn https://example.com/thanks", cart.Product.ThankYouPage)
	}
}

func TestExtractAbandonedCartEvent_MetadataPassthrough(t *testing.T) {
	raw := decodePayload(t, `{
		"productMetas": [{"key": "color", "value": "red"}],
		"affiliate": {"id": 8, "name": "Afiliado X"}
	}`)

	cart := ExtractAbandonedCartEvent(raw)

	if len(cart.ProductMetadata) != 1 {
		t.Fatalf("ProductMetadata có %d phần tử, muốn 1", len(cart.ProductMetadata))
	}
	if cart.ProductMetadata[0]["key"] != "color" {
		t.Errorf("ProductMetadata[0].key = %v, muốn color", cart.ProductMetadata[0]["key"])
	}
	if cart.Affiliate == nil || cart.Affiliate["name"] != "Afiliado X" {
		t.Errorf("Affiliate = %v, muốn giữ nguyên passthrough", cart.Affiliate)
	}
}

func TestExtractAbandonedCartEvent_StringCoercion(t *testing.T) {
	// ID gửi dưới dạng string vẫn phải parse được
	raw := decodePayload(t, `{"sale": {"id": "526", "amount": "99.9"}}`)

	cart := ExtractAbandonedCartEvent(raw)
	if cart.Sale.ID != 526 {
		t.Errorf("Sale.ID = %d, muốn parse từ string = 526", cart.Sale.ID)
	}
	if cart.Sale.Amount != 99.9 {
		t.Errorf("Sale.Amount = %v, muốn parse từ string = 99.9", cart.Sale.Amount)
	}
}

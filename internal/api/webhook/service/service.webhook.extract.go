package webhooksvc

import (
	"time"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/utility"
)

// DefaultClientName là tên khách hàng thay thế khi payload không có tên
const DefaultClientName = "Cliente Desconhecido"

// ExtractAbandonedCartEvent chuẩn hóa một payload JSON tùy ý thành AbandonedCart.
//
// Với mỗi thuộc tính đích, extractor thử lần lượt một danh sách đường dẫn ứng viên
// (các quy ước đặt tên khác nhau của các đối tác upstream) và lấy giá trị đầu tiên
// khác nil. Không tìm thấy thì dùng giá trị mặc định: 0 cho ID/số tiền, timestamp
// hiện tại cho ngày tháng, DefaultClientName cho tên khách.
//
// Hàm này không bao giờ thất bại. Dữ liệu thiếu trở thành placeholder thay vì
// reject payload, vì upstream gửi payload rất không đồng nhất. Entry point strict
// (DTO có validate tags) là đường vào dành cho đối tác tuân thủ schema.
func ExtractAbandonedCartEvent(raw map[string]interface{}) cartmodels.AbandonedCart {
	now := time.Now().Format(time.RFC3339)

	cart := cartmodels.AbandonedCart{
		EventType:      utility.GetStringValue(raw, "checkout", "type", "eventType", "event_type"),
		EventName:      utility.GetStringValue(raw, "", "event", "eventName", "event_name"),
		PreviousStatus: utility.GetStringValue(raw, "", "oldStatus", "previousStatus", "previous_status"),
		CurrentStatus:  utility.GetStringValue(raw, "", "currentStatus", "status", "current_status"),

		Contract:  extractContract(raw, now),
		Sale:      extractSale(raw, now),
		Client:    extractClient(raw, now),
		Product:   extractProduct(raw, now),
		OfferName: utility.GetStringValue(raw, "", "offerName", "offer.name", "offer_name"),
		Offer:     extractOffer(raw, now),
		Seller:    extractSeller(raw),

		CartStatus: cartmodels.CartStatusAbandoned,
	}

	// Passthrough: giữ nguyên cấu trúc, không chuẩn hóa
	if affiliate, ok := utility.GetNestedValue(raw, "affiliate").(map[string]interface{}); ok {
		cart.Affiliate = affiliate
	}
	cart.ProductMetadata = extractMetadataList(raw, "productMetas", "productMetadata", "product_metadata")
	cart.ProposalMetadata = extractMetadataList(raw, "proposalMetas", "proposalMetadata", "proposal_metadata")

	return cart
}

func extractContract(raw map[string]interface{}, now string) cartmodels.Contract {
	return cartmodels.Contract{
		ID:               utility.GetStringValue(raw, "", "contract.id", "subscription.id"),
		StartDate:        utility.GetStringValue(raw, now, "contract.startDate", "contract.start_date", "subscription.startDate"),
		CreatedAt:        utility.GetStringValue(raw, now, "contract.createdAt", "contract.created_at"),
		UpdatedAt:        utility.GetStringValue(raw, now, "contract.updatedAt", "contract.updated_at"),
		Status:           utility.GetStringValue(raw, "", "contract.status", "subscription.status"),
		CurrentPeriodEnd: utility.GetStringValue(raw, now, "contract.currentPeriodEnd", "contract.current_period_end"),
	}
}

func extractSale(raw map[string]interface{}, now string) cartmodels.Sale {
	sale := cartmodels.Sale{
		ID:           utility.GetInt64Value(raw, 0, "sale.id", "order.id", "transaction.id", "purchase.id"),
		Type:         utility.GetStringValue(raw, "", "sale.type", "order.type", "transaction.type"),
		Status:       utility.GetStringValue(raw, "", "sale.status", "order.status", "transaction.status"),
		CreatedAt:    utility.GetStringValue(raw, now, "sale.createdAt", "sale.created_at", "order.createdAt"),
		UpdatedAt:    utility.GetStringValue(raw, now, "sale.updatedAt", "sale.updated_at", "order.updatedAt"),
		SellerID:     utility.GetInt64Value(raw, 0, "sale.sellerId", "sale.seller_id", "order.sellerId"),
		Installments: utility.GetInt64Value(raw, 0, "sale.installments", "order.installments"),
		Method:       utility.GetStringValue(raw, "", "sale.method", "order.method", "paymentMethod"),
		ClientID:     utility.GetInt64Value(raw, 0, "sale.clientId", "sale.client_id", "order.clientId"),
		Amount:       utility.GetFloatValue(raw, 0, "sale.amount", "order.amount", "transaction.amount", "amount"),
		Total:        utility.GetFloatValue(raw, 0, "sale.total", "order.total", "total"),
	}

	// proposalId là nullable: chỉ set khi payload có giá trị
	if v := utility.FirstNestedValue(raw, "sale.proposalId", "sale.proposal_id"); v != nil {
		if f, ok := v.(float64); ok {
			proposalID := int64(f)
			sale.ProposalID = &proposalID
		}
	}

	return sale
}

func extractClient(raw map[string]interface{}, now string) cartmodels.Client {
	return cartmodels.Client{
		ID:           utility.GetInt64Value(raw, 0, "client.id", "customer.id", "buyer.id"),
		Name:         utility.GetStringValue(raw, DefaultClientName, "client.name", "customer.name", "buyer.name"),
		Email:        utility.GetStringValue(raw, "", "client.email", "customer.email", "buyer.email"),
		Cellphone:    utility.GetStringValue(raw, "", "client.cellphone", "client.phone", "customer.cellphone", "customer.phone"),
		Document:     utility.GetStringValue(raw, "", "client.document", "customer.document"),
		CpfCnpj:      utility.GetStringValue(raw, "", "client.cpfCnpj", "client.cpf_cnpj", "customer.cpfCnpj"),
		Zipcode:      utility.GetStringValue(raw, "", "client.zipcode", "client.zip_code", "customer.zipcode"),
		Street:       utility.GetStringValue(raw, "", "client.street", "customer.street"),
		Number:       utility.GetStringValue(raw, "", "client.number", "customer.number"),
		Complement:   utility.GetStringValue(raw, "", "client.complement", "customer.complement"),
		Neighborhood: utility.GetStringValue(raw, "", "client.neighborhood", "customer.neighborhood"),
		City:         utility.GetStringValue(raw, "", "client.city", "customer.city"),
		UF:           utility.GetStringValue(raw, "", "client.uf", "client.state", "customer.uf"),
		CreatedAt:    utility.GetStringValue(raw, now, "client.createdAt", "client.created_at", "customer.createdAt"),
		UpdatedAt:    utility.GetStringValue(raw, now, "client.updatedAt", "client.updated_at", "customer.updatedAt"),
	}
}

func extractProduct(raw map[string]interface{}, now string) cartmodels.Product {
	product := cartmodels.Product{
		ID:              utility.GetInt64Value(raw, 0, "product.id", "item.id"),
		Name:            utility.GetStringValue(raw, "", "product.name", "item.name", "productName"),
		Description:     utility.GetStringValue(raw, "", "product.description", "item.description"),
		CategoryID:      utility.GetInt64Value(raw, 0, "product.categoryId", "product.category_id"),
		Type:            utility.GetStringValue(raw, "", "product.type", "item.type"),
		Amount:          utility.GetFloatValue(raw, 0, "product.amount", "item.amount", "product.price"),
		Period:          utility.GetInt64Value(raw, 0, "product.period"),
		CreatedAt:       utility.GetStringValue(raw, now, "product.createdAt", "product.created_at"),
		UpdatedAt:       utility.GetStringValue(raw, now, "product.updatedAt", "product.updated_at"),
		SellerID:        utility.GetInt64Value(raw, 0, "product.sellerId", "product.seller_id"),
		Slug:            utility.GetStringValue(raw, "", "product.slug"),
		Method:          utility.GetStringValue(raw, "", "product.method"),
		ProductTypeID:   utility.GetInt64Value(raw, 0, "product.productTypeId", "product.product_type_id"),
		StatusChangedAt: utility.GetStringValue(raw, now, "product.statusChangedAt", "product.status_changed_at"),
		ProductID:       utility.GetInt64Value(raw, 0, "product.productId", "product.product_id"),
		Hash:            utility.GetStringValue(raw, "", "product.hash"),
	}

	// stock và thankYouPage nullable: chỉ set khi payload có giá trị
	if v := utility.FirstNestedValue(raw, "product.stock", "item.stock"); v != nil {
		if f, ok := v.(float64); ok {
			stock := int64(f)
			product.Stock = &stock
		}
	}
	if v := utility.FirstNestedValue(raw, "product.thankYouPage", "product.thank_you_page"); v != nil {
		if s, ok := v.(string); ok {
			product.ThankYouPage = &s
		}
	}

	return product
}

func extractOffer(raw map[string]interface{}, now string) cartmodels.Offer {
	return cartmodels.Offer{
		Hash:      utility.GetStringValue(raw, "", "offer.hash"),
		Amount:    utility.GetFloatValue(raw, 0, "offer.amount"),
		Method:    utility.GetStringValue(raw, "", "offer.method"),
		Name:      utility.GetStringValue(raw, "", "offer.name"),
		CreatedAt: utility.GetStringValue(raw, now, "offer.createdAt", "offer.created_at"),
	}
}

func extractSeller(raw map[string]interface{}) cartmodels.Seller {
	return cartmodels.Seller{
		ID:        utility.GetInt64Value(raw, 0, "seller.id", "vendor.id", "productOwner.id"),
		Name:      utility.GetStringValue(raw, "", "seller.name", "vendor.name", "productOwner.name"),
		Email:     utility.GetStringValue(raw, "", "seller.email", "vendor.email", "productOwner.email"),
		Cellphone: utility.GetStringValue(raw, "", "seller.cellphone", "seller.phone", "vendor.cellphone"),
	}
}

// extractMetadataList lấy danh sách metadata passthrough từ các đường dẫn ứng viên
func extractMetadataList(raw map[string]interface{}, paths ...string) []map[string]interface{} {
	value := utility.FirstNestedValue(raw, paths...)
	if value == nil {
		return []map[string]interface{}{}
	}

	list, ok := value.([]interface{})
	if !ok {
		return []map[string]interface{}{}
	}

	result := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			result = append(result, m)
		}
	}
	return result
}

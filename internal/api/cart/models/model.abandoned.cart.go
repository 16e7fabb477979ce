// Package cartmodels chứa các model của domain giỏ hàng bị bỏ rơi.
package cartmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái lifecycle của giỏ hàng
const (
	CartStatusAbandoned = "abandoned"
	CartStatusRecovered = "recovered"
	CartStatusCancelled = "cancelled"
)

// ValidCartStatuses là tập các trạng thái hợp lệ
var ValidCartStatuses = []string{CartStatusAbandoned, CartStatusRecovered, CartStatusCancelled}

// IsValidCartStatus kiểm tra status có nằm trong tập trạng thái hợp lệ
func IsValidCartStatus(status string) bool {
	for _, s := range ValidCartStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Contract chứa thông tin hợp đồng/subscription đi kèm sự kiện (nếu có)
type Contract struct {
	ID               string `json:"id" bson:"id"`
	StartDate        string `json:"startDate" bson:"startDate"`
	CreatedAt        string `json:"createdAt" bson:"createdAt"`
	UpdatedAt        string `json:"updatedAt" bson:"updatedAt"`
	Status           string `json:"status" bson:"status"`
	CurrentPeriodEnd string `json:"currentPeriodEnd" bson:"currentPeriodEnd"`
}

// Sale chứa thông tin giao dịch. Sale.ID là khóa idempotency tự nhiên của sự kiện.
type Sale struct {
	ID           int64   `json:"id" bson:"id"`
	Type         string  `json:"type" bson:"type"`
	Status       string  `json:"status" bson:"status"`
	CreatedAt    string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string  `json:"updatedAt" bson:"updatedAt"`
	SellerID     int64   `json:"sellerId" bson:"sellerId"`
	Installments int64   `json:"installments" bson:"installments"`
	Method       string  `json:"method" bson:"method"`
	ClientID     int64   `json:"clientId" bson:"clientId"`
	Amount       float64 `json:"amount" bson:"amount"`
	ProposalID   *int64  `json:"proposalId" bson:"proposalId"` // Nullable
	Total        float64 `json:"total" bson:"total"`
}

// Client chứa thông tin khách hàng
type Client struct {
	ID           int64  `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Cellphone    string `json:"cellphone" bson:"cellphone"`
	Document     string `json:"document" bson:"document"`
	CpfCnpj      string `json:"cpfCnpj" bson:"cpfCnpj"`
	Zipcode      string `json:"zipcode" bson:"zipcode"`
	Street       string `json:"street" bson:"street"`
	Number       string `json:"number" bson:"number"`
	Complement   string `json:"complement" bson:"complement"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood"`
	City         string `json:"city" bson:"city"`
	UF           string `json:"uf" bson:"uf"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string `json:"updatedAt" bson:"updatedAt"`
}

// Product chứa thông tin sản phẩm trong giỏ hàng
type Product struct {
	ID              int64   `json:"id" bson:"id"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description" bson:"description"`
	CategoryID      int64   `json:"categoryId" bson:"categoryId"`
	Stock           *int64  `json:"stock" bson:"stock"` // Nullable
	Type            string  `json:"type" bson:"type"`
	Amount          float64 `json:"amount" bson:"amount"`
	Period          int64   `json:"period" bson:"period"`
	ThankYouPage    *string `json:"thankYouPage" bson:"thankYouPage"` // Nullable
	CreatedAt       string  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       string  `json:"updatedAt" bson:"updatedAt"`
	SellerID        int64   `json:"sellerId" bson:"sellerId"`
	Slug            string  `json:"slug" bson:"slug"`
	Method          string  `json:"method" bson:"method"`
	ProductTypeID   int64   `json:"productTypeId" bson:"productTypeId"`
	StatusChangedAt string  `json:"statusChangedAt" bson:"statusChangedAt"`
	ProductID       int64   `json:"productId" bson:"productId"`
	Hash            string  `json:"hash" bson:"hash"`
}

// Offer chứa thông tin offer áp dụng cho giao dịch
type Offer struct {
	Hash      string  `json:"hash" bson:"hash"`
	Amount    float64 `json:"amount" bson:"amount"`
	Method    string  `json:"method" bson:"method"`
	Name      string  `json:"name" bson:"name"`
	CreatedAt string  `json:"createdAt" bson:"createdAt"`
}

// Seller chứa thông tin người bán
type Seller struct {
	ID        int64  `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Cellphone string `json:"cellphone" bson:"cellphone"`
}

// AbandonedCart là entity chính: một sự kiện checkout bị bỏ rơi đã chuẩn hóa.
// Sale.ID là duy nhất trên toàn collection (unique index), webhook trùng sale.id
// không tạo thêm bản ghi.
type AbandonedCart struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventType      string             `json:"eventType" bson:"eventType"`
	EventName      string             `json:"eventName" bson:"eventName"` // Quyết định phân loại sự kiện
	PreviousStatus string             `json:"previousStatus" bson:"previousStatus"`
	CurrentStatus  string             `json:"currentStatus" bson:"currentStatus"`

	Contract Contract `json:"contract" bson:"contract"`
	Sale     Sale     `json:"sale" bson:"sale"`
	Client   Client   `json:"client" bson:"client"`
	Product  Product  `json:"product" bson:"product"`

	OfferName string `json:"offerName" bson:"offerName"`
	Offer     Offer  `json:"offer" bson:"offer"`
	Seller    Seller `json:"seller" bson:"seller"`

	// Dữ liệu passthrough, không chuẩn hóa
	Affiliate        map[string]interface{}   `json:"affiliate" bson:"affiliate"`
	ProductMetadata  []map[string]interface{} `json:"productMetadata" bson:"productMetadata"`
	ProposalMetadata []map[string]interface{} `json:"proposalMetadata" bson:"proposalMetadata"`

	// Lifecycle của riêng hệ thống này, tách biệt với currentStatus/previousStatus upstream
	CartStatus      string `json:"cartStatus" bson:"cartStatus"`
	StatusUpdatedAt int64  `json:"statusUpdatedAt,omitempty" bson:"statusUpdatedAt,omitempty"` // Unix milliseconds
	StatusUpdatedBy string `json:"statusUpdatedBy,omitempty" bson:"statusUpdatedBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Summary trả về các field tóm tắt dùng trong response của webhook ingestion
func (c *AbandonedCart) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":          c.ID.Hex(),
		"saleId":      c.Sale.ID,
		"clientEmail": c.Client.Email,
		"productName": c.Product.Name,
		"amount":      c.Sale.Amount,
	}
}

// Package cartdto chứa các DTO của domain giỏ hàng bị bỏ rơi.
package cartdto

// CartListQuery là các tham số filter/sort của danh sách giỏ hàng.
// Các field đều tùy chọn, giá trị rỗng nghĩa là không filter theo field đó.
type CartListQuery struct {
	ClientEmail string `query:"clientEmail"`
	ProductName string `query:"productName"`
	SellerEmail string `query:"sellerEmail"`
	StartDate   string `query:"startDate"` // RFC3339 hoặc YYYY-MM-DD
	EndDate     string `query:"endDate"`
	MinAmount   string `query:"minAmount"`
	MaxAmount   string `query:"maxAmount"`
	CartStatus  string `query:"cart_status"`
	SortBy      string `query:"sortBy"`
	SortOrder   string `query:"sortOrder"` // asc | desc
}

// CartStatusUpdateInput là body của request chuyển trạng thái giỏ hàng
type CartStatusUpdateInput struct {
	CartStatus      string `json:"cart_status" validate:"required,cart_status"`
	StatusUpdatedBy string `json:"status_updated_by,omitempty" validate:"omitempty,max=100,no_xss"`
}

// StatsOverview là kết quả thống kê tổng quan
type StatsOverview struct {
	TotalCarts     int64            `json:"totalCarts"`
	TotalAmount    float64          `json:"totalAmount"`
	RecoveredCarts int64            `json:"recoveredCarts"`
	CancelledCarts int64            `json:"cancelledCarts"`
	AbandonedCarts int64            `json:"abandonedCarts"`
	RecoveryRate   float64          `json:"recoveryRate"` // Phần trăm recovered / tổng
	TopProducts    []StatsGroupItem `json:"topProducts"`
	TopSellers     []StatsGroupItem `json:"topSellers"`
}

// StatsGroupItem là một dòng trong bảng xếp hạng (top products / top sellers)
type StatsGroupItem struct {
	Key         string  `json:"key" bson:"_id"`
	Count       int64   `json:"count" bson:"count"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}

// StatsDailyItem là số liệu của một ngày trong thống kê theo ngày
type StatsDailyItem struct {
	Date        string  `json:"date" bson:"_id"`
	Count       int64   `json:"count" bson:"count"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}

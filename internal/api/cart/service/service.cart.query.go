package cartsvc

import (
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	cartdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/dto"
)

// Các field được phép sort trong danh sách giỏ hàng.
// Whitelist để client không sort trên field không có index.
var allowedSortFields = map[string]string{
	"createdAt":   "createdAt",
	"amount":      "sale.amount",
	"saleId":      "sale.id",
	"cartStatus":  "cartStatus",
	"clientEmail": "client.email",
	"productName": "product.name",
}

// BuildListFilter xây dựng bson filter từ query params của danh sách giỏ hàng.
// Email và tên sản phẩm được so khớp substring không phân biệt hoa thường.
func BuildListFilter(query cartdto.CartListQuery) bson.M {
	filter := bson.M{}

	if query.ClientEmail != "" {
		filter["client.email"] = primitive.Regex{Pattern: regexEscape(query.ClientEmail), Options: "i"}
	}
	if query.ProductName != "" {
		filter["product.name"] = primitive.Regex{Pattern: regexEscape(query.ProductName), Options: "i"}
	}
	if query.SellerEmail != "" {
		filter["seller.email"] = primitive.Regex{Pattern: regexEscape(query.SellerEmail), Options: "i"}
	}
	if query.CartStatus != "" {
		filter["cartStatus"] = query.CartStatus
	}

	// Khoảng thời gian trên createdAt (Unix milliseconds)
	dateFilter := bson.M{}
	if start, ok := parseDateParam(query.StartDate, false); ok {
		dateFilter["$gte"] = start
	}
	if end, ok := parseDateParam(query.EndDate, true); ok {
		dateFilter["$lte"] = end
	}
	if len(dateFilter) > 0 {
		filter["createdAt"] = dateFilter
	}

	// Khoảng giá trị trên sale.amount
	amountFilter := bson.M{}
	if min, err := strconv.ParseFloat(query.MinAmount, 64); err == nil && query.MinAmount != "" {
		amountFilter["$gte"] = min
	}
	if max, err := strconv.ParseFloat(query.MaxAmount, 64); err == nil && query.MaxAmount != "" {
		amountFilter["$lte"] = max
	}
	if len(amountFilter) > 0 {
		filter["sale.amount"] = amountFilter
	}

	return filter
}

// BuildListSort xây dựng find options với sort từ query params.
// sortBy không hợp lệ thì dùng mặc định createdAt giảm dần.
func BuildListSort(query cartdto.CartListQuery) *options.FindOptions {
	field, ok := allowedSortFields[query.SortBy]
	if !ok {
		field = "createdAt"
	}

	order := -1 // Mặc định mới nhất trước
	if query.SortOrder == "asc" {
		order = 1
	}

	return options.Find().SetSort(bson.D{{Key: field, Value: order}})
}

// parseDateParam parse một tham số ngày thành Unix milliseconds.
// endOfDay: với định dạng YYYY-MM-DD, lấy cuối ngày thay vì đầu ngày.
func parseDateParam(value string, endOfDay bool) (int64, bool) {
	if value == "" {
		return 0, false
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UnixMilli(), true
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Millisecond)
		}
		return t.UnixMilli(), true
	}

	return 0, false
}

// regexEscape escape các ký tự đặc biệt của regex trong input người dùng
func regexEscape(s string) string {
	return regexp.QuoteMeta(s)
}

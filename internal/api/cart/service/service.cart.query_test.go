package cartsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	cartdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/dto"
)

func TestBuildListFilter_Empty(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{})
	if len(filter) != 0 {
		t.Errorf("Query rỗng phải tạo filter rỗng, nhận %v", filter)
	}
}

func TestBuildListFilter_EmailRegex(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{ClientEmail: "adrian"})

	regex, ok := filter["client.email"].(primitive.Regex)
	if !ok {
		t.Fatalf("client.email phải là primitive.Regex, nhận %T", filter["client.email"])
	}
	if regex.Pattern != "adrian" {
		t.Errorf("Pattern = %q, muốn adrian", regex.Pattern)
	}
	if regex.Options != "i" {
		t.Errorf("Options = %q, muốn i (không phân biệt hoa thường)", regex.Options)
	}
}

func TestBuildListFilter_RegexEscaped(t *testing.T) {
	// Ký tự đặc biệt của regex trong input người dùng phải được escape
	filter := BuildListFilter(cartdto.CartListQuery{ProductName: "a.b*c"})

	regex, ok := filter["product.name"].(primitive.Regex)
	if !ok {
		t.Fatalf("product.name phải là primitive.Regex, nhận %T", filter["product.name"])
	}
	if regex.Pattern == "a.b*c" {
		t.Error("Pattern chưa được escape ký tự đặc biệt")
	}
}

func TestBuildListFilter_AmountRange(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{MinAmount: "10", MaxAmount: "100.5"})

	amountFilter, ok := filter["sale.amount"].(bson.M)
	if !ok {
		t.Fatalf("sale.amount phải là bson.M, nhận %T", filter["sale.amount"])
	}
	if amountFilter["$gte"] != float64(10) {
		t.Errorf("$gte = %v, muốn 10", amountFilter["$gte"])
	}
	if amountFilter["$lte"] != 100.5 {
		t.Errorf("$lte = %v, muốn 100.5", amountFilter["$lte"])
	}
}

func TestBuildListFilter_InvalidAmountIgnored(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{MinAmount: "abc"})
	if _, ok := filter["sale.amount"]; ok {
		t.Error("minAmount không parse được phải bị bỏ qua")
	}
}

func TestBuildListFilter_DateRange(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})

	dateFilter, ok := filter["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("createdAt phải là bson.M, nhận %T", filter["createdAt"])
	}

	start, _ := dateFilter["$gte"].(int64)
	end, _ := dateFilter["$lte"].(int64)
	if start <= 0 || end <= 0 {
		t.Fatalf("Khoảng thời gian phải là Unix milliseconds dương, nhận gte=%d lte=%d", start, end)
	}
	if end <= start {
		t.Errorf("endDate (%d) phải lớn hơn startDate (%d)", end, start)
	}
	// endDate dạng YYYY-MM-DD phải lấy cuối ngày
	wantDiff := int64(30*24*60*60*1000 + 24*60*60*1000 - 1)
	if end-start != wantDiff {
		t.Errorf("end - start = %d, muốn %d (cuối ngày 31/01)", end-start, wantDiff)
	}
}

func TestBuildListFilter_CartStatus(t *testing.T) {
	filter := BuildListFilter(cartdto.CartListQuery{CartStatus: "recovered"})
	if filter["cartStatus"] != "recovered" {
		t.Errorf("cartStatus = %v, muốn recovered", filter["cartStatus"])
	}
}

func TestBuildListSort(t *testing.T) {
	cases := []struct {
		sortBy    string
		sortOrder string
		wantField string
		wantOrder int
	}{
		{"", "", "createdAt", -1},                 // mặc định mới nhất trước
		{"amount", "asc", "sale.amount", 1},       // alias sang field lồng nhau
		{"saleId", "desc", "sale.id", -1},
		{"notAField", "asc", "createdAt", 1},      // field lạ rơi về mặc định
		{"clientEmail", "", "client.email", -1},
	}

	for _, tc := range cases {
		opts := BuildListSort(cartdto.CartListQuery{SortBy: tc.sortBy, SortOrder: tc.sortOrder})
		sort, ok := opts.Sort.(bson.D)
		if !ok || len(sort) != 1 {
			t.Fatalf("Sort phải là bson.D một phần tử, nhận %v", opts.Sort)
		}
		if sort[0].Key != tc.wantField {
			t.Errorf("sortBy=%q: field = %q, muốn %q", tc.sortBy, sort[0].Key, tc.wantField)
		}
		if sort[0].Value != tc.wantOrder {
			t.Errorf("sortBy=%q sortOrder=%q: order = %v, muốn %d", tc.sortBy, tc.sortOrder, sort[0].Value, tc.wantOrder)
		}
	}
}

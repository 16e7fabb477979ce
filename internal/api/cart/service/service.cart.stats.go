package cartsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	cartdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/dto"
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
)

// MaxDailyStatsDays là số ngày tối đa của thống kê theo ngày
const MaxDailyStatsDays = 90

// StatsOverview tính thống kê tổng quan trên toàn bộ abandoned_carts:
// tổng số giỏ, tổng giá trị, phân bố trạng thái, tỉ lệ recovery,
// top sản phẩm và top người bán theo số lần xuất hiện.
func (s *AbandonedCartService) StatsOverview(ctx context.Context) (*cartdto.StatsOverview, error) {
	overview := &cartdto.StatsOverview{
		TopProducts: []cartdto.StatsGroupItem{},
		TopSellers:  []cartdto.StatsGroupItem{},
	}

	// Tổng số và tổng giá trị + phân bố trạng thái trong một pipeline
	statusPipeline := []bson.M{
		{"$group": bson.M{
			"_id":         "$cartStatus",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$sale.amount"},
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, statusPipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var statusGroups []struct {
		ID          string  `bson:"_id"`
		Count       int64   `bson:"count"`
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cursor.All(ctx, &statusGroups); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	for _, group := range statusGroups {
		overview.TotalCarts += group.Count
		overview.TotalAmount += group.TotalAmount
		switch group.ID {
		case cartmodels.CartStatusRecovered:
			overview.RecoveredCarts = group.Count
		case cartmodels.CartStatusCancelled:
			overview.CancelledCarts = group.Count
		case cartmodels.CartStatusAbandoned:
			overview.AbandonedCarts = group.Count
		}
	}

	if overview.TotalCarts > 0 {
		overview.RecoveryRate = float64(overview.RecoveredCarts) / float64(overview.TotalCarts) * 100
	}

	topProducts, err := s.topGroup(ctx, "$product.name")
	if err != nil {
		return nil, err
	}
	overview.TopProducts = topProducts

	topSellers, err := s.topGroup(ctx, "$seller.email")
	if err != nil {
		return nil, err
	}
	overview.TopSellers = topSellers

	return overview, nil
}

// topGroup trả về top 5 nhóm theo số lần xuất hiện của một field
func (s *AbandonedCartService) topGroup(ctx context.Context, groupField string) ([]cartdto.StatsGroupItem, error) {
	pipeline := []bson.M{
		{"$match": bson.M{groupField[1:]: bson.M{"$nin": bson.A{nil, ""}}}},
		{"$group": bson.M{
			"_id":         groupField,
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$sale.amount"},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": 5},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	items := []cartdto.StatsGroupItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return items, nil
}

// StatsDaily tính số giỏ hàng và tổng giá trị theo từng ngày trong days ngày gần nhất.
// days được clamp trong khoảng [1, MaxDailyStatsDays].
func (s *AbandonedCartService) StatsDaily(ctx context.Context, days int) ([]cartdto.StatsDailyItem, error) {
	if days < 1 {
		days = 7
	}
	if days > MaxDailyStatsDays {
		days = MaxDailyStatsDays
	}

	since := time.Now().AddDate(0, 0, -days).UnixMilli()

	// createdAt là Unix milliseconds nên phải convert sang date trước khi group theo ngày
	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$createdAt"},
			}},
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$sale.amount"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	items := []cartdto.StatsDailyItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return items, nil
}

// Package database - Index bổ sung cho abandoned_carts (nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

// CreateCartAdditionalIndexes tạo các index bổ sung cho abandoned_carts trên các nested field.
// Gọi sau CreateIndexes cho từng collection.
//
// Index unique trên sale.id là chốt chặn cuối cùng chống ghi trùng khi hai webhook
// cùng sale.id đến đồng thời. Lỗi duplicate key khi insert được xử lý như tín hiệu
// "đã tồn tại" ở tầng service.
func CreateCartAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	carts := db.Collection(global.MongoDB_ColNames.AbandonedCarts)

	// abandoned_carts: sale.id unique — chặn ghi trùng sự kiện
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sale.id", Value: 1}},
		Options: options.Index().SetName("cart_sale_id_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: client.id — tra cứu theo khách hàng
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client.id", Value: 1}},
		Options: options.Index().SetName("cart_client_id"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: product.id — tra cứu theo sản phẩm
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product.id", Value: 1}},
		Options: options.Index().SetName("cart_product_id"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: client.email — filter danh sách theo email khách
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client.email", Value: 1}},
		Options: options.Index().SetName("cart_client_email"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: createdAt giảm dần — sort mặc định của danh sách
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("cart_created_at_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: sale.status — filter theo trạng thái giao dịch gốc
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sale.status", Value: 1}},
		Options: options.Index().SetName("cart_sale_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// abandoned_carts: cartStatus — filter theo lifecycle status
	if _, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cartStatus", Value: 1}},
		Options: options.Index().SetName("cart_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// webhook_logs: receivedAt giảm dần — tra cứu log mới nhất
	logs := db.Collection(global.MongoDB_ColNames.WebhookLogs)
	if _, err := logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "receivedAt", Value: -1}},
		Options: options.Index().SetName("webhook_log_received_at_desc"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}

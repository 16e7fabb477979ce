// Package cartsvc chứa logic nghiệp vụ cho domain giỏ hàng bị bỏ rơi.
package cartsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

// AbandonedCartService quản lý collection abandoned_carts
type AbandonedCartService struct {
	*basesvc.BaseServiceMongoImpl[cartmodels.AbandonedCart]
}

// NewAbandonedCartService tạo mới AbandonedCartService với collection từ registry
func NewAbandonedCartService() (*AbandonedCartService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.AbandonedCarts)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection abandoned_carts trong registry",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &AbandonedCartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[cartmodels.AbandonedCart](collection),
	}, nil
}

// FindBySaleID tìm bản ghi theo sale.id (khóa idempotency).
// Trả về common.ErrNotFound nếu chưa có bản ghi nào.
func (s *AbandonedCartService) FindBySaleID(ctx context.Context, saleID int64) (cartmodels.AbandonedCart, error) {
	return s.FindOne(ctx, bson.M{"sale.id": saleID}, nil)
}

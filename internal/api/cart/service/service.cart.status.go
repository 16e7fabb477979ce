package cartsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
)

// ActorSystem và ActorWebhook là các actor mặc định cho hai entry point
// của thao tác chuyển trạng thái.
const (
	ActorSystem  = "system"
	ActorWebhook = "webhook"
)

// UpdateCartStatus chuyển trạng thái lifecycle của một giỏ hàng và ghi audit trail.
//
// Đây là thao tác nội bộ duy nhất cho việc chuyển trạng thái, được gọi từ hai
// adapter: webhook công khai (actor = "webhook") và API quản trị có xác thực
// (actor = user hoặc "system"). Mọi trạng thái hiện tại đều chuyển được sang
// bất kỳ trạng thái đích hợp lệ nào.
func (s *AbandonedCartService) UpdateCartStatus(ctx context.Context, id primitive.ObjectID, targetStatus string, actor string) (cartmodels.AbandonedCart, error) {
	var zero cartmodels.AbandonedCart

	// Trạng thái đích không hợp lệ: reject, không mutate bản ghi
	if !cartmodels.IsValidCartStatus(targetStatus) {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái '%s' không hợp lệ. Các trạng thái hợp lệ: %s",
				targetStatus, strings.Join(cartmodels.ValidCartStatuses, ", ")),
			common.StatusBadRequest,
			nil,
		)
	}

	if actor == "" {
		actor = ActorSystem
	}

	// Lấy bản ghi hiện tại để ghi audit log với trạng thái cũ
	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	updated, err := s.UpdateById(ctx, id, map[string]interface{}{
		"cartStatus":      targetStatus,
		"statusUpdatedAt": time.Now().UnixMilli(),
		"statusUpdatedBy": actor,
	})
	if err != nil {
		return zero, err
	}

	logger.LogStatusChange(id.Hex(), existing.Sale.ID, existing.CartStatus, targetStatus, actor)

	return updated, nil
}

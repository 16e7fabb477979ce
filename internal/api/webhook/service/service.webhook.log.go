// Package webhooksvc chứa logic ingestion của domain webhook.
package webhooksvc

import (
	"context"
	"time"

	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	webhookmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/webhook/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
)

// WebhookLogService ghi payload thô của mọi webhook vào webhook_logs
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[webhookmodels.WebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService với collection từ registry
func NewWebhookLogService() (*WebhookLogService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.WebhookLogs)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection webhook_logs trong registry",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[webhookmodels.WebhookLog](collection),
	}, nil
}

// LogIncoming lưu một webhook vừa nhận. Lỗi ghi log không được chặn ingestion,
// chỉ ghi vào error logger.
func (s *WebhookLogService) LogIncoming(ctx context.Context, source, path, eventName string, body map[string]interface{}, rawBody string, parseErr error) {
	entry := webhookmodels.WebhookLog{
		Source:     source,
		Path:       path,
		EventName:  eventName,
		Body:       body,
		ReceivedAt: time.Now().UnixMilli(),
	}
	if parseErr != nil {
		entry.RawBody = rawBody
		entry.ParseError = parseErr.Error()
	}

	if _, err := s.InsertOne(ctx, entry); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("source", source).Error("Không thể lưu webhook log")
	}
}

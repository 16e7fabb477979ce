// Package webhookhdl chứa các handler của domain webhook.
package webhookhdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/handler"
	cartdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/dto"
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	cartsvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/service"
	webhookdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/webhook/dto"
	webhooksvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/webhook/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
)

// ServiceName là tên service trả về trong health check
const ServiceName = "grenncovery-webhook"

// WebhookHandler xử lý các endpoint công khai dưới /webhook
type WebhookHandler struct {
	ingestService *webhooksvc.IngestService
	logService    *webhooksvc.WebhookLogService
}

// NewWebhookHandler tạo mới WebhookHandler
func NewWebhookHandler() (*WebhookHandler, error) {
	ingestService, err := webhooksvc.NewIngestService()
	if err != nil {
		return nil, err
	}

	logService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, err
	}

	return &WebhookHandler{
		ingestService: ingestService,
		logService:    logService,
	}, nil
}

// HandleAbandonedCart là entry point flexible chính: chấp nhận JSON gần như
// tùy ý, chuẩn hóa bằng fallback extraction rồi ingest.
func (h *WebhookHandler) HandleAbandonedCart(c fiber.Ctx) error {
	return h.handleFlexible(c, "abandoned-cart")
}

// HandleGreenncovery là alias của entry point flexible với nhãn log riêng
// để phân biệt nguồn gửi.
func (h *WebhookHandler) HandleGreenncovery(c fiber.Ctx) error {
	return h.handleFlexible(c, "greenncovery")
}

// handleFlexible xử lý ingestion cho các entry point flexible.
// Payload không parse được vẫn trả về 200 vì webhook sender retry mù
// khi nhận lỗi, mà payload hỏng thì retry kiểu gì cũng hỏng.
func (h *WebhookHandler) handleFlexible(c fiber.Ctx, source string) error {
	body := c.Body()

	var raw map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(body))
	if err := decoder.Decode(&raw); err != nil {
		logger.WithRequest(c).WithFields(logrus.Fields{
			"source": source,
			"error":  err.Error(),
		}).Warn("Webhook payload không phải JSON hợp lệ")
		h.logService.LogIncoming(c.Context(), source, c.Path(), "", nil, string(body), err)

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": false,
			"message": "Payload không phải JSON hợp lệ",
		})
	}

	cart := webhooksvc.ExtractAbandonedCartEvent(raw)

	logger.WithRequest(c).WithFields(logrus.Fields{
		"source":     source,
		"event_name": cart.EventName,
		"sale_id":    cart.Sale.ID,
	}).Info("Nhận webhook")
	h.logService.LogIncoming(c.Context(), source, c.Path(), cart.EventName, raw, "", nil)

	return h.respondIngest(c, source, cart)
}

// HandleStrict là entry point generic với schema strict: payload phải đúng
// kiểu và đủ field bắt buộc, sai schema bị reject kèm lỗi theo từng field.
func (h *WebhookHandler) HandleStrict(c fiber.Ctx) error {
	body := c.Body()

	var input webhookdto.AbandonedCartWebhookInput
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&input); err != nil {
		h.logService.LogIncoming(c.Context(), "strict", c.Path(), "", nil, string(body), err)
		return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"success": false,
			"message": "Payload không đúng định dạng JSON",
			"errors":  fiber.Map{"_body": err.Error()},
		})
	}

	if err := global.Validate.Struct(&input); err != nil {
		return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"success": false,
			"message": common.MsgValidationError,
			"errors":  basehdl.FormatValidationErrors(err),
		})
	}

	cart := input.ToModel()

	logger.WithRequest(c).WithFields(logrus.Fields{
		"source":     "strict",
		"event_name": cart.EventName,
		"sale_id":    cart.Sale.ID,
	}).Info("Nhận webhook (strict)")
	h.logService.LogIncoming(c.Context(), "strict", c.Path(), cart.EventName, rawFromInput(&input), "", nil)

	return h.respondIngest(c, "strict", cart)
}

// respondIngest chạy pipeline ingest và map kết quả sang response webhook.
// Sự kiện ignored và duplicate đều là 200: webhook sender không được phép
// hiểu nhầm thành lỗi cần retry.
func (h *WebhookHandler) respondIngest(c fiber.Ctx, source string, cart cartmodels.AbandonedCart) error {
	result, err := h.ingestService.Ingest(c.Context(), cart)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithFields(logrus.Fields{
			"source":  source,
			"sale_id": cart.Sale.ID,
		}).Error("Ingest webhook thất bại")
		return respondError(c, err)
	}

	if result.Ignored {
		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"message": "Sự kiện không phải checkout bị bỏ rơi, đã bỏ qua",
			"ignored": true,
		})
	}

	message := "Sự kiện đã được lưu thành công"
	if result.Duplicate {
		message = "Sự kiện đã được xử lý trước đó"
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": message,
		"data":    result.Cart.Summary(),
	})
}

// respondError map lỗi nội bộ sang response webhook đơn giản
func respondError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return basehdl.JSONResponse(c, customErr.StatusCode, fiber.Map{
			"success": false,
			"message": customErr.Message,
			"errors":  customErr.Details,
		})
	}

	// Lỗi không xác định: che chi tiết khi chạy production
	message := common.MsgInternalError
	if !global.MongoDB_ServerConfig.IsProduction() {
		message = err.Error()
	}
	return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"success": false,
		"message": message,
	})
}

// parseObjectID parse và validate một ObjectID hex từ URI params
func parseObjectID(id string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return primitive.ObjectIDFromHex(id)
}

func rawFromInput(input *webhookdto.AbandonedCartWebhookInput) map[string]interface{} {
	bytes, err := json.Marshal(input)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(bytes, &m); err != nil {
		return nil
	}
	return m
}

// HandleStatusUpdate là adapter webhook của thao tác chuyển trạng thái,
// actor luôn là "webhook".
func (h *WebhookHandler) HandleStatusUpdate(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := parseObjectID(idStr)
	if err != nil {
		return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"success": false,
			"message": "ID không đúng định dạng",
		})
	}

	var input cartdto.CartStatusUpdateInput
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	if err := decoder.Decode(&input); err != nil {
		return basehdl.JSONResponse(c, common.StatusBadRequest, fiber.Map{
			"success": false,
			"message": "Body không đúng định dạng JSON",
		})
	}

	updated, err := h.ingestService.CartService().UpdateCartStatus(c.Context(), id, input.CartStatus, cartsvc.ActorWebhook)
	if err != nil {
		return respondError(c, err)
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": "Cập nhật trạng thái thành công",
		"data": fiber.Map{
			"id":                updated.ID.Hex(),
			"cart_status":       updated.CartStatus,
			"status_updated_at": updated.StatusUpdatedAt,
			"status_updated_by": updated.StatusUpdatedBy,
		},
	})
}

// HandleHealth là endpoint liveness
func (h *WebhookHandler) HandleHealth(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   ServiceName,
	})
}

// Package qahdl chứa các handler của domain hỏi đáp hỗ trợ.
package qahdl

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	basehdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/handler"
	qadto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/dto"
	qamodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/models"
	qasvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/service"
)

// QAHandler xử lý các endpoint /api/questions-answers (sau JWT middleware)
type QAHandler struct {
	*basehdl.BaseHandler[qamodels.QuestionAnswer, qadto.QACreateInput, qadto.QAUpdateInput]
	qaService *qasvc.QuestionAnswerService
}

// NewQAHandler tạo mới QAHandler
func NewQAHandler() (*QAHandler, error) {
	qaService, err := qasvc.NewQuestionAnswerService()
	if err != nil {
		return nil, err
	}

	return &QAHandler{
		BaseHandler: basehdl.NewBaseHandler[qamodels.QuestionAnswer, qadto.QACreateInput, qadto.QAUpdateInput](qaService),
		qaService:   qaService,
	}, nil
}

// Create tạo câu hỏi mới
func (h *QAHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input qadto.QACreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.qaService.Create(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách câu hỏi có phân trang và filter
func (h *QAHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := qadto.QAListQuery{
			Status:      c.Query("status"),
			Priority:    c.Query("priority"),
			Category:    c.Query("category"),
			ClientEmail: c.Query("clientEmail"),
			IsPublic:    c.Query("isPublic"),
		}

		page, limit := h.ParsePagination(c)
		filter := qasvc.BuildListFilter(query)

		data, err := h.qaService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetByID trả về một câu hỏi theo ID
func (h *QAHandler) GetByID(c fiber.Ctx) error {
	return h.FindOneById(c)
}

// Update cập nhật một câu hỏi
func (h *QAHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input qadto.QAUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.qaService.Update(c.Context(), id, input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một câu hỏi
func (h *QAHandler) Delete(c fiber.Ctx) error {
	return h.DeleteById(c)
}

// Answer ghi câu trả lời cho một câu hỏi, người trả lời là user đang đăng nhập
func (h *QAHandler) Answer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input qadto.QAAnswerInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		answeredBy := "system"
		if user, ok := c.Locals("user").(authmodels.User); ok {
			answeredBy = user.Email
		}

		data, err := h.qaService.Answer(c.Context(), id, input.Answer, answeredBy)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Stats trả về thống kê câu hỏi theo trạng thái
func (h *QAHandler) Stats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.qaService.Stats(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Package basehdl cung cấp base handler với các chức năng CRUD cơ bản
// và các tiện ích xử lý request/response dùng chung giữa các domain.
package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

// MaxPageLimit là số bản ghi tối đa trên một trang
const MaxPageLimit int64 = 100

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
	}
}

// FormatValidationErrors chuyển validator.ValidationErrors thành map field -> thông báo
// dễ đọc cho client. Các lỗi không phải ValidationErrors trả về message chung.
func FormatValidationErrors(err error) map[string]string {
	details := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["_error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			details[field] = fmt.Sprintf("Trường %s là bắt buộc", field)
		case "email":
			details[field] = fmt.Sprintf("Trường %s phải là email hợp lệ", field)
		case "min":
			details[field] = fmt.Sprintf("Trường %s phải có giá trị/độ dài tối thiểu %s", field, fieldErr.Param())
		case "max":
			details[field] = fmt.Sprintf("Trường %s vượt quá giá trị/độ dài tối đa %s", field, fieldErr.Param())
		case "oneof":
			details[field] = fmt.Sprintf("Trường %s phải là một trong các giá trị: %s", field, fieldErr.Param())
		case "cart_status":
			details[field] = fmt.Sprintf("Trường %s phải là một trong các giá trị: abandoned, recovered, cancelled", field)
		case "no_xss":
			details[field] = fmt.Sprintf("Trường %s chứa nội dung không được phép", field)
		default:
			details[field] = fmt.Sprintf("Trường %s không hợp lệ (quy tắc: %s)", field, fieldErr.Tag())
		}
	}

	return details
}

// ValidateInput validate dữ liệu đầu vào với struct tags qua global validator
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			FormatValidationErrors(err),
		)
	}
	return nil
}

// ParseRequestBody parse dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParsePagination lấy page và limit từ query string.
// page >= 1, limit trong khoảng (0, MaxPageLimit].
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return page, limit
}

// GetIDFromContext lấy và validate ObjectID từ URI params
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}

	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			err,
		)
	}

	return objID, nil
}

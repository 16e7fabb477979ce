// Package carthdl chứa các handler API quản trị của domain giỏ hàng.
package carthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	basehdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/handler"
	cartdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/dto"
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	cartsvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
)

// CartHandler xử lý các endpoint /api/abandoned-carts (sau JWT middleware)
type CartHandler struct {
	*basehdl.BaseHandler[cartmodels.AbandonedCart, cartdto.CartStatusUpdateInput, cartdto.CartStatusUpdateInput]
	cartService *cartsvc.AbandonedCartService
}

// NewCartHandler tạo mới CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := cartsvc.NewAbandonedCartService()
	if err != nil {
		return nil, err
	}

	return &CartHandler{
		BaseHandler: basehdl.NewBaseHandler[cartmodels.AbandonedCart, cartdto.CartStatusUpdateInput, cartdto.CartStatusUpdateInput](cartService),
		cartService: cartService,
	}, nil
}

// List trả về danh sách giỏ hàng có phân trang, filter và sort.
// limit bị clamp tối đa 100, page tối thiểu 1.
func (h *CartHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := cartdto.CartListQuery{
			ClientEmail: c.Query("clientEmail"),
			ProductName: c.Query("productName"),
			SellerEmail: c.Query("sellerEmail"),
			StartDate:   c.Query("startDate"),
			EndDate:     c.Query("endDate"),
			MinAmount:   c.Query("minAmount"),
			MaxAmount:   c.Query("maxAmount"),
			CartStatus:  c.Query("cart_status"),
			SortBy:      c.Query("sortBy"),
			SortOrder:   c.Query("sortOrder"),
		}

		page, limit := h.ParsePagination(c)
		filter := cartsvc.BuildListFilter(query)
		opts := cartsvc.BuildListSort(query)

		data, err := h.cartService.FindWithPagination(c.Context(), filter, page, limit, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetByID trả về một giỏ hàng theo ID
func (h *CartHandler) GetByID(c fiber.Ctx) error {
	return h.FindOneById(c)
}

// StatsOverview trả về thống kê tổng quan
func (h *CartHandler) StatsOverview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.cartService.StatsOverview(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// StatsDaily trả về thống kê theo ngày trong N ngày gần nhất (mặc định 7, tối đa 90)
func (h *CartHandler) StatsDaily(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		days, err := strconv.Atoi(c.Query("days", "7"))
		if err != nil {
			days = 7
		}

		data, err := h.cartService.StatsDaily(c.Context(), days)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateStatus là adapter API của thao tác chuyển trạng thái.
// Actor là status_updated_by trong body, hoặc email của user đang đăng nhập,
// hoặc "system" khi không xác định được.
func (h *CartHandler) UpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromContext(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input cartdto.CartStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Body không đúng định dạng JSON",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor := input.StatusUpdatedBy
		if actor == "" {
			if user, ok := c.Locals("user").(authmodels.User); ok {
				actor = user.Email
			}
		}
		if actor == "" {
			actor = cartsvc.ActorSystem
		}

		data, err := h.cartService.UpdateCartStatus(c.Context(), id, input.CartStatus, actor)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Package authhdl chứa các handler của domain auth.
package authhdl

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/dto"
	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	authsvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/service"
	basehdl "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/handler"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
)

// AuthHandler xử lý các endpoint /auth
type AuthHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.RegisterInput, authdto.RegisterInput]
	userService *authsvc.UserService
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		BaseHandler: basehdl.NewBaseHandler[authmodels.User, authdto.RegisterInput, authdto.RegisterInput](userService),
		userService: userService,
	}, nil
}

// Register xử lý đăng ký tài khoản mới
func (h *AuthHandler) Register(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, authsvc.ToProfileData(user), nil)
		return nil
	})
}

// Login xử lý đăng nhập, trả về JWT token kèm thông tin user
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Profile trả về thông tin của user đang đăng nhập (sau JWT middleware)
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userIDHex, ok := c.Locals("user_id").(string)
		if !ok || userIDHex == "" {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		data, err := h.userService.Profile(c.Context(), userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// VerifyToken kiểm tra token (từ header Authorization hoặc body) còn hợp lệ không.
// Token không hợp lệ vẫn là 200 với valid=false: endpoint này dành cho client
// tự kiểm tra phiên, không phải gate xác thực.
func (h *AuthHandler) VerifyToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token := tokenFromRequest(c)
		if token == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		result, err := h.userService.VerifyToken(c.Context(), token)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// tokenFromRequest lấy token từ header Authorization (Bearer) hoặc body {"token": "..."}
func tokenFromRequest(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(c.Body(), &body); err == nil && body.Token != "" {
		return body.Token
	}
	return ""
}

package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD basesvc.BaseServiceMongo[authmodels.User]
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		if !exists {
			panic("users collection chưa được đăng ký trong registry")
		}
		authManagerInstance = &AuthManager{
			UserCRUD: basesvc.NewBaseServiceMongo[authmodels.User](collection),
		}
	})
	return authManagerInstance
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// requireRole: nếu khác rỗng, user phải có role tương ứng (vd: "admin").
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Parse và verify JWT
		claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Invalid or expired token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tìm user theo ID trong claims
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user, err := authManager.UserCRUD.FindOneById(context.Background(), userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": claims.UserID,
			}).Warn("[AUTH] User from token not found")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user còn hoạt động không
		if !user.IsActive {
			HandleErrorResponse(c, common.ErrUserInactive)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		// Kiểm tra role nếu route yêu cầu
		if requireRole != "" && user.Role != requireRole {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":       user.ID.Hex(),
				"user_email":    user.Email,
				"path":          c.Path(),
				"required_role": requireRole,
			}).Warn("[AUTH] User does not have required role")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}

// Package authsvc chứa logic nghiệp vụ của domain auth.
package authsvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/dto"
	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/utility"
)

// Ngưỡng cảnh báo token sắp hết hạn
const tokenExpiringSoonWindow = 24 * time.Hour

// UserService xử lý nghiệp vụ người dùng và xác thực
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo mới UserService từ registry collection
func NewUserService() (*UserService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection users trong registry",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
	}, nil
}

// Register tạo tài khoản mới với role "user".
// Email trùng trả về lỗi conflict (unique index trên email là chốt chặn cuối).
func (s *UserService) Register(ctx context.Context, input authdto.RegisterInput) (authmodels.User, error) {
	var zero authmodels.User

	// Kiểm tra email đã tồn tại chưa
	_, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		logger.LogAuth("register", input.Email, false, nil)
		return zero, common.NewError(
			common.ErrCodeAuthCredentials,
			"Email đã được đăng ký",
			common.StatusConflict,
			nil,
		)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeInternalServer,
			"Không thể mã hóa mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}

	user := authmodels.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     "user",
		IsActive: true,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		// Thua race với một request đăng ký cùng email
		if errors.Is(err, common.ErrMongoDuplicate) {
			logger.LogAuth("register", input.Email, false, nil)
			return zero, common.NewError(
				common.ErrCodeAuthCredentials,
				"Email đã được đăng ký",
				common.StatusConflict,
				nil,
			)
		}
		return zero, err
	}

	logger.LogAuth("register", input.Email, true, nil)
	return created, nil
}

// Login xác thực thông tin đăng nhập và phát hành JWT token.
// Email không tồn tại và mật khẩu sai trả về cùng một lỗi để không lộ
// thông tin tài khoản nào tồn tại.
func (s *UserService) Login(ctx context.Context, input authdto.LoginInput) (*authdto.LoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logger.LogAuth("login", input.Email, false, nil)
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		logger.LogAuth("login", input.Email, false, nil)
		return nil, common.ErrUserInactive
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		logger.LogAuth("login", input.Email, false, nil)
		return nil, common.ErrInvalidCredentials
	}

	token, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		global.MongoDB_ServerConfig.JwtExpiresInHours,
	)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeAuthToken,
			"Không thể tạo token",
			common.StatusInternalServerError,
			err,
		)
	}

	// Cập nhật lastLogin, lỗi ở đây không chặn việc đăng nhập
	updated, err := s.UpdateById(ctx, user.ID, map[string]interface{}{
		"lastLogin": time.Now().UnixMilli(),
	})
	if err == nil {
		user = updated
	}

	logger.LogAuth("login", input.Email, true, nil)
	return &authdto.LoginResult{
		Token: token,
		User:  ToProfileData(user),
	}, nil
}

// Profile trả về thông tin của user theo ID
func (s *UserService) Profile(ctx context.Context, userID primitive.ObjectID) (authdto.ProfileData, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return authdto.ProfileData{}, err
	}
	return ToProfileData(user), nil
}

// VerifyToken kiểm tra token còn hợp lệ không và cảnh báo nếu sắp hết hạn
func (s *UserService) VerifyToken(ctx context.Context, tokenString string) (*authdto.VerifyTokenResult, error) {
	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, tokenString)
	if err != nil {
		return &authdto.VerifyTokenResult{Valid: false}, nil
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return &authdto.VerifyTokenResult{Valid: false}, nil
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil || !user.IsActive {
		return &authdto.VerifyTokenResult{Valid: false}, nil
	}

	expiresAt := time.Unix(claims.ExpiresAt, 0)
	return &authdto.VerifyTokenResult{
		Valid:        true,
		UserID:       user.ID.Hex(),
		Email:        user.Email,
		ExpiresAt:    claims.ExpiresAt,
		ExpiringSoon: time.Until(expiresAt) < tokenExpiringSoonWindow,
	}, nil
}

// ToProfileData chuyển model User sang dữ liệu profile trả về client
func ToProfileData(user authmodels.User) authdto.ProfileData {
	return authdto.ProfileData{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

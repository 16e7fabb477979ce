package utility

import (
	"math/rand"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// JwtToken là cấu trúc claims của JWT token
type JwtToken struct {
	UserID       string `json:"user_id"`      // ID của user
	Time         int64  `json:"time"`         // Thời điểm phát hành (milliseconds)
	RandomNumber int64  `json:"random"`       // Số ngẫu nhiên chống trùng token
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho user với thời hạn expiresInHours giờ
func CreateToken(secret string, userID string, expiresInHours int) (string, error) {
	if expiresInHours <= 0 {
		expiresInHours = 720 // Mặc định 30 ngày
	}

	now := time.Now()
	claims := JwtToken{
		UserID:       userID,
		Time:         now.UnixMilli(),
		RandomNumber: rand.Int63(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(expiresInHours) * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parse và xác thực JWT token, trả về claims nếu hợp lệ
func ParseToken(secret string, tokenString string) (*JwtToken, error) {
	claims := &JwtToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("token không hợp lệ", jwt.ValidationErrorSignatureInvalid)
	}
	return claims, nil
}

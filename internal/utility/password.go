package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hash mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePassword so sánh mật khẩu plaintext với hash đã lưu.
// Trả về nil khi khớp, lỗi của bcrypt khi không khớp.
func ComparePassword(hashedPassword string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

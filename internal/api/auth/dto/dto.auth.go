// Package authdto chứa các DTO của domain auth.
package authdto

// RegisterInput là body của request đăng ký tài khoản
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// LoginInput là body của request đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	Token string      `json:"token"`
	User  ProfileData `json:"user"`
}

// ProfileData là thông tin user trả về client (không bao gồm password hash)
type ProfileData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	LastLogin int64  `json:"lastLogin,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// VerifyTokenResult là kết quả kiểm tra token
type VerifyTokenResult struct {
	Valid        bool   `json:"valid"`
	UserID       string `json:"userId,omitempty"`
	Email        string `json:"email,omitempty"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"`    // Unix seconds
	ExpiringSoon bool   `json:"expiringSoon,omitempty"` // Token hết hạn trong vòng 24 giờ
}

// Package authmodels chứa các model của domain auth.
package authmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một người dùng trong hệ thống
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"` // Email đăng nhập, duy nhất
	Password  string             `json:"-" bson:"password"`                 // Hash bcrypt, không bao giờ trả về client
	Role      string             `json:"role" bson:"role"`                  // admin | user
	IsActive  bool               `json:"isActive" bson:"isActive"`
	LastLogin int64              `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"` // Unix milliseconds
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin kiểm tra user có phải admin không
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

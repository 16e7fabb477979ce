// Package qamodels chứa các model của domain hỏi đáp hỗ trợ.
package qamodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của một câu hỏi
const (
	QAStatusPending  = "pending"
	QAStatusAnswered = "answered"
	QAStatusArchived = "archived"
)

// Các mức độ ưu tiên
const (
	QAPriorityLow    = "low"
	QAPriorityMedium = "medium"
	QAPriorityHigh   = "high"
)

// ValidQAStatuses là danh sách trạng thái hợp lệ của câu hỏi
var ValidQAStatuses = []string{QAStatusPending, QAStatusAnswered, QAStatusArchived}

// QuestionAnswer đại diện cho một câu hỏi hỗ trợ khách hàng và câu trả lời của nó
type QuestionAnswer struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Question string             `json:"question" bson:"question"`
	Answer   string             `json:"answer,omitempty" bson:"answer,omitempty"`
	Status   string             `json:"status" bson:"status" index:"single"`     // pending | answered | archived
	Priority string             `json:"priority" bson:"priority"`                // low | medium | high
	Category string             `json:"category,omitempty" bson:"category,omitempty"`

	// Liên kết với khách hàng / sản phẩm (tùy chọn)
	ClientEmail string `json:"clientEmail,omitempty" bson:"clientEmail,omitempty" index:"single"`
	ProductID   int64  `json:"productId,omitempty" bson:"productId,omitempty"`

	Tags     []string `json:"tags,omitempty" bson:"tags,omitempty"`
	IsPublic bool     `json:"isPublic" bson:"isPublic"`

	AnsweredAt int64  `json:"answeredAt,omitempty" bson:"answeredAt,omitempty"` // Unix milliseconds
	AnsweredBy string `json:"answeredBy,omitempty" bson:"answeredBy,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// IsValidQAStatus kiểm tra một trạng thái câu hỏi có hợp lệ không
func IsValidQAStatus(status string) bool {
	for _, s := range ValidQAStatuses {
		if s == status {
			return true
		}
	}
	return false
}

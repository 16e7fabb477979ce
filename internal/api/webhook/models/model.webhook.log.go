// Package webhookmodels chứa các model của domain webhook.
package webhookmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu payload thô của mọi webhook nhận được, phục vụ debug và đối soát.
// Log được ghi trước khi parse nên payload hỏng vẫn được lưu lại.
type WebhookLog struct {
	ID         primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Source     string                 `json:"source" bson:"source"` // Nhãn nguồn: abandoned-cart, greenncovery, strict
	Path       string                 `json:"path" bson:"path"`
	EventName  string                 `json:"eventName,omitempty" bson:"eventName,omitempty"`
	Body       map[string]interface{} `json:"body" bson:"body"`
	RawBody    string                 `json:"rawBody,omitempty" bson:"rawBody,omitempty"` // Chỉ lưu khi parse JSON thất bại
	ParseError string                 `json:"parseError,omitempty" bson:"parseError,omitempty"`
	ReceivedAt int64                  `json:"receivedAt" bson:"receivedAt"` // Unix milliseconds
	CreatedAt  int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                  `json:"updatedAt" bson:"updatedAt"`
}

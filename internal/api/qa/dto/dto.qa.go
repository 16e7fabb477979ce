// Package qadto chứa các DTO của domain hỏi đáp hỗ trợ.
package qadto

// QACreateInput là body của request tạo câu hỏi mới
type QACreateInput struct {
	Question    string   `json:"question" validate:"required,min=5,max=2000,no_xss"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string   `json:"category" validate:"omitempty,max=100,no_xss"`
	ClientEmail string   `json:"clientEmail" validate:"omitempty,email"`
	ProductID   int64    `json:"productId" validate:"omitempty,min=0"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	IsPublic    bool     `json:"isPublic"`
}

// QAUpdateInput là body của request cập nhật câu hỏi.
// Các field đều tùy chọn, chỉ field có giá trị mới được cập nhật.
type QAUpdateInput struct {
	Question    string   `json:"question" validate:"omitempty,min=5,max=2000,no_xss"`
	Status      string   `json:"status" validate:"omitempty,oneof=pending answered archived"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string   `json:"category" validate:"omitempty,max=100,no_xss"`
	ClientEmail string   `json:"clientEmail" validate:"omitempty,email"`
	ProductID   int64    `json:"productId" validate:"omitempty,min=0"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	IsPublic    *bool    `json:"isPublic"`
}

// QAAnswerInput là body của request trả lời một câu hỏi
type QAAnswerInput struct {
	Answer string `json:"answer" validate:"required,min=1,max=5000,no_xss"`
}

// QAListQuery là các tham số filter của danh sách câu hỏi
type QAListQuery struct {
	Status      string `query:"status"`
	Priority    string `query:"priority"`
	Category    string `query:"category"`
	ClientEmail string `query:"clientEmail"`
	IsPublic    string `query:"isPublic"` // "true" | "false" | "" (không filter)
}

// QAStats là kết quả thống kê câu hỏi theo trạng thái
type QAStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Answered int64 `json:"answered"`
	Archived int64 `json:"archived"`
}

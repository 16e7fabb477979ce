// Package qasvc chứa logic nghiệp vụ của domain hỏi đáp hỗ trợ.
package qasvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/base/service"
	qadto "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/dto"
	qamodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/common"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

// QuestionAnswerService xử lý nghiệp vụ hỏi đáp hỗ trợ
type QuestionAnswerService struct {
	*basesvc.BaseServiceMongoImpl[qamodels.QuestionAnswer]
}

// NewQuestionAnswerService tạo mới QuestionAnswerService từ registry collection
func NewQuestionAnswerService() (*QuestionAnswerService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.QuestionsAnswers)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không tìm thấy collection questions_answers trong registry",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &QuestionAnswerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[qamodels.QuestionAnswer](collection),
	}, nil
}

// Create tạo câu hỏi mới với trạng thái pending
func (s *QuestionAnswerService) Create(ctx context.Context, input qadto.QACreateInput) (qamodels.QuestionAnswer, error) {
	priority := input.Priority
	if priority == "" {
		priority = qamodels.QAPriorityMedium
	}

	qa := qamodels.QuestionAnswer{
		Question:    input.Question,
		Status:      qamodels.QAStatusPending,
		Priority:    priority,
		Category:    input.Category,
		ClientEmail: input.ClientEmail,
		ProductID:   input.ProductID,
		Tags:        input.Tags,
		IsPublic:    input.IsPublic,
	}

	return s.InsertOne(ctx, qa)
}

// Update cập nhật các field có giá trị của một câu hỏi
func (s *QuestionAnswerService) Update(ctx context.Context, id primitive.ObjectID, input qadto.QAUpdateInput) (qamodels.QuestionAnswer, error) {
	set := map[string]interface{}{}
	if input.Question != "" {
		set["question"] = input.Question
	}
	if input.Status != "" {
		set["status"] = input.Status
	}
	if input.Priority != "" {
		set["priority"] = input.Priority
	}
	if input.Category != "" {
		set["category"] = input.Category
	}
	if input.ClientEmail != "" {
		set["clientEmail"] = input.ClientEmail
	}
	if input.ProductID != 0 {
		set["productId"] = input.ProductID
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.IsPublic != nil {
		set["isPublic"] = *input.IsPublic
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, id)
	}

	return s.UpdateById(ctx, id, set)
}

// Answer ghi câu trả lời cho một câu hỏi: set answer, chuyển trạng thái sang
// answered và ghi lại thời điểm cùng người trả lời.
func (s *QuestionAnswerService) Answer(ctx context.Context, id primitive.ObjectID, answer string, answeredBy string) (qamodels.QuestionAnswer, error) {
	return s.UpdateById(ctx, id, map[string]interface{}{
		"answer":     answer,
		"status":     qamodels.QAStatusAnswered,
		"answeredAt": time.Now().UnixMilli(),
		"answeredBy": answeredBy,
	})
}

// BuildListFilter xây dựng bson filter từ query params của danh sách câu hỏi
func BuildListFilter(query qadto.QAListQuery) bson.M {
	filter := bson.M{}

	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Priority != "" {
		filter["priority"] = query.Priority
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.ClientEmail != "" {
		filter["clientEmail"] = query.ClientEmail
	}
	switch query.IsPublic {
	case "true":
		filter["isPublic"] = true
	case "false":
		filter["isPublic"] = false
	}

	return filter
}

// Stats đếm số câu hỏi theo từng trạng thái
func (s *QuestionAnswerService) Stats(ctx context.Context) (*qadto.QAStats, error) {
	stats := &qadto.QAStats{}

	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.Total = total

	counts := map[string]*int64{
		qamodels.QAStatusPending:  &stats.Pending,
		qamodels.QAStatusAnswered: &stats.Answered,
		qamodels.QAStatusArchived: &stats.Archived,
	}
	for status, dest := range counts {
		count, err := s.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		*dest = count
	}

	return stats, nil
}

package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/douglasrochagreenn/grenncovery-sub000/config"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	AbandonedCarts   string // Tên collection cho sự kiện giỏ hàng bị bỏ rơi
	QuestionsAnswers string // Tên collection cho hỏi đáp hỗ trợ
	Users            string // Tên collection cho người dùng
	WebhookLogs      string // Tên collection cho log webhook thô
}

// Các biến toàn cục
var Validate *validator.Validate                                               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                 // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/douglasrochagreenn/grenncovery-sub000/config"
	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	cartmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/cart/models"
	qamodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/qa/models"
	webhookmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/webhook/models"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/database"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.AbandonedCarts = "abandoned_carts"
	global.MongoDB_ColNames.QuestionsAnswers = "questions_answers"
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.WebhookLogs = "webhook_logs"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, cart_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection từ struct tags
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AbandonedCarts), cartmodels.AbandonedCart{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.QuestionsAnswers), qamodels.QuestionAnswer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.WebhookLogs), webhookmodels.WebhookLog{})

	// Các index trên field lồng nhau (sale.id unique, client.email, ...) không
	// khai báo được qua struct tag, tạo riêng ở đây
	if err := database.CreateCartAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create cart indexes: %v", err)
	}
	logrus.Info("Created indexes")
}

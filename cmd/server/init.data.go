package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/models"
	authsvc "github.com/douglasrochagreenn/grenncovery-sub000/internal/api/auth/service"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/global"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/logger"
	"github.com/douglasrochagreenn/grenncovery-sub000/internal/utility"
)

// InitDefaultData tạo tài khoản admin mặc định khi collection users còn rỗng.
// Bỏ qua nếu ADMIN_EMAIL / ADMIN_PASSWORD không được cấu hình.
func InitDefaultData() {
	log := logger.GetAppLogger()

	cfg := global.MongoDB_ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping default admin creation")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := context.Background()
	count, err := userService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.WithError(err).Error("Failed to count users, skipping default admin creation")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := utility.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.WithError(err).Error("Failed to hash default admin password")
		return
	}

	admin := authmodels.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     "admin",
		IsActive: true,
	}
	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.WithError(err).Error("Failed to create default admin user")
		return
	}

	log.Infof("Default admin user created (ID: %s)", created.ID.Hex())
}

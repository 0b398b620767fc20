package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "postboard/api/v1"
	"postboard/config"
	"postboard/dao"
	"postboard/internal/auth"
	"postboard/internal/storage"
	"postboard/model"
	"postboard/service"
)

func main() {
	// .env 仅在本地开发存在，缺失不算错误
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}

	ctx := context.Background()
	rdb, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Connect redis failed: %v", err)
	}

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Connect mysql failed: %v", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Migrate failed: %v", err)
	}

	// 附件存储后端
	var store storage.Storage
	uploadsDir := ""
	switch cfg.Storage.Backend {
	case "s3":
		store, err = storage.NewS3(ctx, storage.S3Options{
			Bucket:        cfg.Storage.S3Bucket,
			Region:        cfg.Storage.S3Region,
			Endpoint:      cfg.Storage.S3Endpoint,
			AccessKey:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
			PublicBaseURL: cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("Init s3 storage failed: %v", err)
		}
	default:
		local, err := storage.NewLocal(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatalf("Init local storage failed: %v", err)
		}
		store = local
		uploadsDir = cfg.Storage.LocalDir
	}

	// 初始化 DAO 和 Service
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessExpire)*time.Second)
	userDAO := dao.NewUserDAO(db)
	postDAO := dao.NewPostDAO(db)
	userService := service.NewUserService(userDAO, tokens)
	postService := service.NewPostService(postDAO, userDAO)

	authAPI := v1.NewAuthAPI(userService)
	userAPI := v1.NewUserAPI(userService, store)
	postAPI := v1.NewPostAPI(postService, store)

	// 注册自定义校验器
	if err := v1.RegisterValidators(); err != nil {
		log.Fatalf("Register validators failed: %v", err)
	}

	r := v1.NewRouter(authAPI, userAPI, postAPI, tokens, rdb, uploadsDir)

	// 启动服务
	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/blog-comments/internal/repository/mysql"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/blog-comments/internal/repository/redis"
	"github.com/Guyuepp/blog-comments/internal/rest"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/usecase/comment"
	"github.com/Guyuepp/blog-comments/internal/usecase/user"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
}

func main() {
	cfg := loadConfig()

	//prepare database
	db, err := openDB(cfg.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.AutoMigrate {
		// 只迁移评论表, blog 和 user 由其他模块维护
		if err := db.AutoMigrate(&model.Comment{}); err != nil {
			logrus.Fatal("failed to migrate comment table: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	blogRepo := mysqlRepo.NewBlogRepository(db)

	// Comment相关的三层架构
	// 1. DB层
	commentDBRepo := mysqlRepo.NewCommentRepository(db)
	// 2. Cache层
	commentCache := myRedisCache.NewCommentCache(client)
	// 3. Repository协调层
	commentRepo := repository.NewCommentRepository(commentDBRepo, commentCache, userRepo)

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, blogRepo, userRepo)
	userSvc := user.NewService(userRepo)
	commentHandler := rest.NewCommentHandler(commentSvc)

	// Register routes
	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(userSvc))
	commentHandler.Register(route, authorized)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	logrus.Info("Server exiting")
}

// openDB 带重试地连接数据库
func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

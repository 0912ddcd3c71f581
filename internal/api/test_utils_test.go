package api

import (
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealpicker/backend/config"
	"github.com/mealpicker/backend/internal/model"
	"github.com/mealpicker/backend/internal/service"
)

// setupTestRouter wires the handlers onto a fresh gin engine against an
// isolated in-memory SQLite database and an upload broker signing with
// static credentials. The engine is built here rather than through the
// router package, which imports this one.
func setupTestRouter(t *testing.T) (*gin.Engine, *service.DishService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.Dish{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	s3Config := &config.S3Config{
		Client: s3.NewFromConfig(aws.Config{
			Region:      "eu-central-1",
			Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
		}),
		BucketName: "mymealpicker",
		Region:     "eu-central-1",
	}

	dishService := service.NewDishService(db, zerolog.Nop())
	uploadService := service.NewUploadService(s3Config, time.Hour, zerolog.Nop())

	dishHandler := NewDishHandler(dishService, zerolog.Nop())
	uploadHandler := NewUploadHandler(uploadService, nil, zerolog.Nop())

	engine := gin.New()
	engine.Use(gin.Recovery())
	v1 := engine.Group("/api/v1")
	dishHandler.RegisterRoutes(v1)
	uploadHandler.RegisterRoutes(v1)

	return engine, dishService
}

// postForm submits a form-encoded request the way the browser client does.
func postForm(router *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dishForm(title string) url.Values {
	form := url.Values{}
	form.Set("title", title)
	form.Set("category", model.CategoryMeat)
	form.Set("calories", model.CaloriesNormal)
	form.Set("difficulty", model.DifficultyEasy)
	return form
}

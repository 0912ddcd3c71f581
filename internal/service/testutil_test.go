package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealpicker/backend/internal/model"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// dish schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

func newTestDishService(t *testing.T) *DishService {
	t.Helper()
	return NewDishService(newTestDB(t), zerolog.Nop())
}

func seedDish(t *testing.T, s *DishService, title, category, calories, difficulty string, ingredients ...string) *model.Dish {
	t.Helper()
	dish, err := s.Create(context.Background(), &model.Dish{
		Title:       title,
		Category:    category,
		Calories:    calories,
		Difficulty:  difficulty,
		Ingredients: model.JSONBStringArray(ingredients),
	})
	if err != nil {
		t.Fatalf("failed to seed dish %q: %v", title, err)
	}
	return dish
}

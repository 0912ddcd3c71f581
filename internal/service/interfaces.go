package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mealpicker/backend/internal/model"
)

// IDishService defines the interface for dish operations
type IDishService interface {
	Create(ctx context.Context, dish *model.Dish) (*model.Dish, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Dish, error)
	Update(ctx context.Context, id uuid.UUID, update *model.DishUpdate) (*model.Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Dish, error)
	Random(ctx context.Context, filter DishFilter) (*model.Dish, error)
}

// IUploadService defines the interface for the upload broker
type IUploadService interface {
	SignUpload(ctx context.Context, fileName, contentType string) (*SignedUpload, error)
	SignDelete(ctx context.Context, key string) (string, error)
	DeleteImage(ctx context.Context, imgURL string) error
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mealpicker/backend/internal/model"
)

// DishService handles dish persistence and the random draw
type DishService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewDishService creates a new DishService instance
func NewDishService(db *gorm.DB, logger zerolog.Logger) *DishService {
	return &DishService{
		db:     db,
		logger: logger.With().Str("service", "dish").Logger(),
	}
}

// Create validates and persists a new dish, returning it with its assigned ID
func (s *DishService) Create(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	if err := dish.Validate(); err != nil {
		return nil, err
	}
	if dish.ID == uuid.Nil {
		dish.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(dish).Error; err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", dish.ID.String()).Str("title", dish.Title).Msg("dish created")
	return dish, nil
}

// Get retrieves a dish by ID
func (s *DishService) Get(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	var dish model.Dish
	if err := s.db.WithContext(ctx).First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrDishNotFound
		}
		return nil, err
	}
	return &dish, nil
}

// Update overwrites the supplied fields of an existing dish. Fields not
// supplied keep their stored values.
func (s *DishService) Update(ctx context.Context, id uuid.UUID, update *model.DishUpdate) (*model.Dish, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	// Check existence first so an absent identity is reported as not found
	// rather than as a zero-row update.
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.ImgURL != nil {
		fields["img_url"] = *update.ImgURL
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Calories != nil {
		fields["calories"] = *update.Calories
	}
	if update.Difficulty != nil {
		fields["difficulty"] = *update.Difficulty
	}
	if update.Ingredients != nil {
		fields["ingredients"] = model.JSONBStringArray(update.Ingredients)
	}

	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.Dish{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("id", id.String()).Int("fields", len(fields)).Msg("dish updated")
	return s.Get(ctx, id)
}

// Delete removes a dish by ID
func (s *DishService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.Dish{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrDishNotFound
	}
	s.logger.Info().Str("id", id.String()).Msg("dish deleted")
	return nil
}

// List returns all dishes
func (s *DishService) List(ctx context.Context) ([]*model.Dish, error) {
	var dishes []model.Dish
	if err := s.db.WithContext(ctx).Find(&dishes).Error; err != nil {
		return nil, err
	}
	result := make([]*model.Dish, len(dishes))
	for i := range dishes {
		result[i] = &dishes[i]
	}
	return result, nil
}

// Random draws one dish uniformly at random from those matching the filter.
// Every call is an independent draw; repeated calls with the same filter may
// return the same dish again. An empty matching subset yields
// model.ErrDishNotFound, never a transport error.
func (s *DishService) Random(ctx context.Context, filter DishFilter) (*model.Dish, error) {
	query := filter.Apply(s.db.WithContext(ctx).Model(&model.Dish{}))

	var dishes []model.Dish
	if err := query.Order("RANDOM()").Limit(1).Find(&dishes).Error; err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, model.ErrDishNotFound
	}
	return &dishes[0], nil
}

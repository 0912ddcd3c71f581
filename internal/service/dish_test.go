package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealpicker/backend/internal/model"
)

func strPtr(s string) *string { return &s }

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, &model.Dish{
		Title:       "Gemüsecurry",
		ImgURL:      "https://mymealpicker.s3.amazonaws.com/curry.png",
		Category:    model.CategoryVegetarian,
		Calories:    model.CaloriesDiet,
		Difficulty:  model.DifficultyMedium,
		Ingredients: model.JSONBStringArray{"Brokkoli", "Karotten"},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gemüsecurry", got.Title)
	assert.Equal(t, "https://mymealpicker.s3.amazonaws.com/curry.png", got.ImgURL)
	assert.Equal(t, model.CategoryVegetarian, got.Category)
	assert.Equal(t, model.CaloriesDiet, got.Calories)
	assert.Equal(t, model.DifficultyMedium, got.Difficulty)
	assert.Equal(t, model.JSONBStringArray{"Brokkoli", "Karotten"}, got.Ingredients)
}

func TestCreateRejectsInvalidDish(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, &model.Dish{Category: model.CategoryMeat, Calories: model.CaloriesNormal, Difficulty: model.DifficultyEasy})
	assert.True(t, model.IsValidation(err))

	_, err = s.Create(ctx, &model.Dish{Title: "Steak", Category: "Dessert", Calories: model.CaloriesNormal, Difficulty: model.DifficultyEasy})
	assert.True(t, model.IsValidation(err))

	// Nothing must have been persisted.
	dishes, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}

func TestGetNotFound(t *testing.T) {
	s := newTestDishService(t)
	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrDishNotFound)
}

func TestUpdatePartialLeavesOtherFieldsUntouched(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()
	dish := seedDish(t, s, "Spaghetti", model.CategoryVegetarian, model.CaloriesNormal, model.DifficultyEasy, "Nudeln", "Tomaten")

	updated, err := s.Update(ctx, dish.ID, &model.DishUpdate{Title: strPtr("Spaghetti Napoli")})
	require.NoError(t, err)

	assert.Equal(t, "Spaghetti Napoli", updated.Title)
	assert.Equal(t, model.CategoryVegetarian, updated.Category)
	assert.Equal(t, model.CaloriesNormal, updated.Calories)
	assert.Equal(t, model.DifficultyEasy, updated.Difficulty)
	assert.Equal(t, model.JSONBStringArray{"Nudeln", "Tomaten"}, updated.Ingredients)
}

func TestUpdateOverwritesSuppliedFields(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()
	dish := seedDish(t, s, "Spaghetti", model.CategoryVegetarian, model.CaloriesNormal, model.DifficultyEasy, "Nudeln")

	updated, err := s.Update(ctx, dish.ID, &model.DishUpdate{
		Calories:    strPtr(model.CaloriesDiet),
		Ingredients: []string{"Vollkornnudeln", "Tomaten"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.CaloriesDiet, updated.Calories)
	assert.Equal(t, model.JSONBStringArray{"Vollkornnudeln", "Tomaten"}, updated.Ingredients)
	assert.Equal(t, "Spaghetti", updated.Title)
}

func TestUpdateEmptyImgURLClearsImage(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()

	dish, err := s.Create(ctx, &model.Dish{
		Title:      "Steak",
		ImgURL:     "https://mymealpicker.s3.amazonaws.com/steak.png",
		Category:   model.CategoryMeat,
		Calories:   model.CaloriesNormal,
		Difficulty: model.DifficultyHard,
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, dish.ID, &model.DishUpdate{ImgURL: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.ImgURL)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestDishService(t)
	_, err := s.Update(context.Background(), uuid.New(), &model.DishUpdate{Title: strPtr("Neu")})
	assert.ErrorIs(t, err, model.ErrDishNotFound)
}

func TestUpdateRejectsInvalidEnumValue(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()
	dish := seedDish(t, s, "Steak", model.CategoryMeat, model.CaloriesNormal, model.DifficultyEasy)

	_, err := s.Update(ctx, dish.ID, &model.DishUpdate{Difficulty: strPtr("unmöglich")})
	assert.True(t, model.IsValidation(err))

	got, err := s.Get(ctx, dish.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)
}

func TestDeleteRemovesDish(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()
	dish := seedDish(t, s, "Steak", model.CategoryMeat, model.CaloriesNormal, model.DifficultyEasy)

	require.NoError(t, s.Delete(ctx, dish.ID))

	_, err := s.Get(ctx, dish.ID)
	assert.ErrorIs(t, err, model.ErrDishNotFound)

	// Deleting again signals not found internally; callers may ignore it.
	assert.ErrorIs(t, s.Delete(ctx, dish.ID), model.ErrDishNotFound)
}

func TestRandomNoMatchSignal(t *testing.T) {
	s := newTestDishService(t)

	_, err := s.Random(context.Background(), DishFilter{})
	assert.ErrorIs(t, err, model.ErrDishNotFound)

	seedDish(t, s, "Steak", model.CategoryMeat, model.CaloriesNormal, model.DifficultyEasy)
	_, err = s.Random(context.Background(), DishFilter{Category: model.CategoryFish})
	assert.ErrorIs(t, err, model.ErrDishNotFound)
}

func TestRandomReachesEveryMatch(t *testing.T) {
	s := newTestDishService(t)
	ctx := context.Background()

	ids := map[uuid.UUID]bool{}
	for _, title := range []string{"Steak", "Gulasch", "Frikadellen"} {
		dish := seedDish(t, s, title, model.CategoryMeat, model.CaloriesNormal, model.DifficultyEasy)
		ids[dish.ID] = false
	}

	// Each of the three dishes has nonzero probability per draw; 100
	// independent draws miss one of them with probability < 1e-17.
	for i := 0; i < 100; i++ {
		dish, err := s.Random(ctx, DishFilter{Category: model.CategoryMeat})
		require.NoError(t, err)
		ids[dish.ID] = true
	}

	for id, seen := range ids {
		assert.True(t, seen, "dish %s was never drawn", id)
	}
}

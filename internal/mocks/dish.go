package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mealpicker/backend/internal/model"
	"github.com/mealpicker/backend/internal/service"
)

// MockDishService is a mock implementation of the dish service
type MockDishService struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockDishService) Create(ctx context.Context, dish *model.Dish) (*model.Dish, error) {
	args := m.Called(ctx, dish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

// Get mocks the Get method
func (m *MockDishService) Get(ctx context.Context, id uuid.UUID) (*model.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

// Update mocks the Update method
func (m *MockDishService) Update(ctx context.Context, id uuid.UUID, update *model.DishUpdate) (*model.Dish, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockDishService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method
func (m *MockDishService) List(ctx context.Context) ([]*model.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Dish), args.Error(1)
}

// Random mocks the Random method
func (m *MockDishService) Random(ctx context.Context, filter service.DishFilter) (*model.Dish, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dish), args.Error(1)
}

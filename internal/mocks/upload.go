package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mealpicker/backend/internal/service"
)

// MockUploadService is a mock implementation of the upload broker
type MockUploadService struct {
	mock.Mock
}

// SignUpload mocks the SignUpload method
func (m *MockUploadService) SignUpload(ctx context.Context, fileName, contentType string) (*service.SignedUpload, error) {
	args := m.Called(ctx, fileName, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignedUpload), args.Error(1)
}

// SignDelete mocks the SignDelete method
func (m *MockUploadService) SignDelete(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// DeleteImage mocks the DeleteImage method
func (m *MockUploadService) DeleteImage(ctx context.Context, imgURL string) error {
	args := m.Called(ctx, imgURL)
	return args.Error(0)
}

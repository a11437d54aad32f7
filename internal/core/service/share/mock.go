package share

import (
	"context"

	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockShareService is a mock implementation of ShareService
type MockShareService struct {
	mock.Mock
}

// NewMockShareService creates a new MockShareService
func NewMockShareService() *MockShareService {
	return &MockShareService{}
}

func (m *MockShareService) HandleUpload(ctx context.Context, files []domain.FileUpload) (*domain.UploadReceipt, port.PersistFunc, error) {
	args := m.Called(ctx, files)
	var persist port.PersistFunc
	if fn := args.Get(1); fn != nil {
		persist = fn.(port.PersistFunc)
	}
	return args.Get(0).(*domain.UploadReceipt), persist, args.Error(2)
}

func (m *MockShareService) HandleDownload(ctx context.Context, sessionID string) ([]domain.DownloadLink, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.DownloadLink), args.Error(1)
}

func (m *MockShareService) CompleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockShareService) SessionExists(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

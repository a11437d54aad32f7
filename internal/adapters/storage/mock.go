package storage

import (
	"context"

	"linkdrop/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Upload(ctx context.Context, payload []byte, originalName string) (domain.StoredObjectRef, error) {
	args := m.Called(ctx, payload, originalName)
	return args.Get(0).(domain.StoredObjectRef), args.Error(1)
}

func (m *MockStorage) ResolveURL(ctx context.Context, ref domain.StoredObjectRef) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, ref domain.StoredObjectRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

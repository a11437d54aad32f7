package share_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"linkdrop/internal/adapters/eventbroker"
	"linkdrop/internal/adapters/repository"
	"linkdrop/internal/adapters/storage"
	"linkdrop/internal/config"
	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/service/share"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultCfg = config.ShareConfig{
	SessionTTL:            time.Hour,
	UploadMaxAttempts:     3,
	UploadRetryMaxElapsed: 5 * time.Second,
	MaxRequestSize:        10 << 20,
	CleanupEvery:          5 * time.Minute,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShareService_HandleUpload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	files := []domain.FileUpload{
		{Name: "a.txt", Data: []byte("hello")},
		{Name: "b.png", Data: []byte("world")},
	}

	refA := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}
	refB := domain.StoredObjectRef{PublicID: "uploads/id-b.png", Filename: "b.png", Format: "png"}

	mockStorage.On("Upload", mock.Anything, []byte("hello"), "a.txt").Return(refA, nil)
	mockStorage.On("Upload", mock.Anything, []byte("world"), "b.png").Return(refB, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.NotEmpty(t, receipt.SessionID)
	assert.Equal(t, []domain.StoredObjectRef{refA, refB}, receipt.Files)
	assert.Empty(t, receipt.Failed)

	require.NotNil(t, persist)
	require.NoError(t, persist(ctx))

	mockRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.ID == receipt.SessionID &&
			len(s.Files) == 2 &&
			s.ExpiresAt.Sub(s.CreatedAt) == defaultCfg.SessionTTL
	}))
	mockStorage.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestShareService_HandleUpload_NoFiles(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := share.NewShareService(
		repository.NewMockSessionRepository(),
		storage.NewMockStorage(),
		nil,
		defaultCfg,
		discardLogger(),
	)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, nil)

	// Assert
	require.ErrorIs(t, err, domain.ErrNoFilesProvided)
	assert.Nil(t, receipt)
	assert.Nil(t, persist)
}

func TestShareService_HandleUpload_PartialFailure_EmptyFile(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	files := []domain.FileUpload{
		{Name: "a.txt", Data: []byte("hello")},
		{Name: "b.txt", Data: nil},
	}

	refA := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}

	mockStorage.On("Upload", mock.Anything, []byte("hello"), "a.txt").Return(refA, nil)
	mockStorage.On("Upload", mock.Anything, []byte(nil), "b.txt").
		Return(domain.StoredObjectRef{}, domain.ErrEmptyFile)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, []domain.StoredObjectRef{refA}, receipt.Files)
	assert.Equal(t, []string{"b.txt"}, receipt.Failed)

	// an empty payload is terminal: exactly one attempt
	mockStorage.AssertNumberOfCalls(t, "Upload", 2)

	require.NoError(t, persist(ctx))
	mockRepo.AssertExpectations(t)
}

func TestShareService_HandleUpload_RetryThenSuccess(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	files := []domain.FileUpload{{Name: "a.txt", Data: []byte("hello")}}
	ref := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}

	mockStorage.On("Upload", mock.Anything, []byte("hello"), "a.txt").
		Return(domain.StoredObjectRef{}, domain.ErrUploadFailed).Twice()
	mockStorage.On("Upload", mock.Anything, []byte("hello"), "a.txt").
		Return(ref, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []domain.StoredObjectRef{ref}, receipt.Files)
	assert.Empty(t, receipt.Failed)
	mockStorage.AssertNumberOfCalls(t, "Upload", 3)

	require.NoError(t, persist(ctx))
}

func TestShareService_HandleUpload_AllUploadsFailed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	files := []domain.FileUpload{
		{Name: "a.txt", Data: []byte("hello")},
		{Name: "b.txt", Data: []byte("world")},
	}

	mockStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.StoredObjectRef{}, domain.ErrUploadFailed)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.ErrorIs(t, err, domain.ErrAllUploadsFailed)
	assert.Nil(t, receipt)
	assert.Nil(t, persist)

	// 3 attempts per file, no session created
	mockStorage.AssertNumberOfCalls(t, "Upload", 6)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShareService_HandleUpload_RetryStopsWhenElapsedBudgetExhausted(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cfg := defaultCfg
	cfg.UploadRetryMaxElapsed = 0

	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(
		repository.NewMockSessionRepository(),
		mockStorage,
		nil,
		cfg,
		discardLogger(),
	)

	files := []domain.FileUpload{{Name: "a.txt", Data: []byte("hello")}}

	mockStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.StoredObjectRef{}, domain.ErrUploadFailed)

	// Act
	_, _, err := service.HandleUpload(ctx, files)

	// Assert
	require.ErrorIs(t, err, domain.ErrAllUploadsFailed)
	mockStorage.AssertNumberOfCalls(t, "Upload", 1)
}

func TestShareService_HandleUpload_PersistFailureIsReported(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	files := []domain.FileUpload{{Name: "a.txt", Data: []byte("hello")}}
	ref := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}

	dbErr := errors.New("db down")
	mockStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(ref, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, receipt)

	persistErr := persist(ctx)
	require.Error(t, persistErr)
	assert.ErrorIs(t, persistErr, dbErr)
}

func TestShareService_HandleUpload_PublishesCreatedEvent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	mockEvents := eventbroker.NewMockPublisher()
	service := share.NewShareService(mockRepo, mockStorage, mockEvents, defaultCfg, discardLogger())

	files := []domain.FileUpload{{Name: "a.txt", Data: []byte("hello")}}
	ref := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}

	mockStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(ref, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.SessionEvent) bool {
		return e.Type == domain.SessionEventCreated && e.FileCount == 1
	})).Return(nil)

	// Act
	receipt, persist, err := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err)
	require.NoError(t, persist(ctx))
	assert.NotEmpty(t, receipt.SessionID)
	mockEvents.AssertExpectations(t)
}

func TestShareService_HandleUpload_FreshSessionIDPerBatch(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockSessionRepository()
	mockStorage := storage.NewMockStorage()
	service := share.NewShareService(mockRepo, mockStorage, nil, defaultCfg, discardLogger())

	ref := domain.StoredObjectRef{PublicID: "uploads/id-a.txt", Filename: "a.txt", Format: "txt"}
	mockStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(ref, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	files := []domain.FileUpload{{Name: "a.txt", Data: []byte("hello")}}

	// Act
	first, _, err1 := service.HandleUpload(ctx, files)
	second, _, err2 := service.HandleUpload(ctx, files)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

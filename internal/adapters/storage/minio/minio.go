package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"linkdrop/internal/config"
	"linkdrop/internal/core/domain"
	"linkdrop/internal/core/identity"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectPrefix namespaces stored keys away from unrelated bucket content.
const objectPrefix = "uploads"

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter. The configuration is captured at
// construction time; the adapter holds no other mutable state.
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Upload stores a raw payload under a freshly generated namespaced key
// and returns its reference. Empty payloads are rejected before any
// network call.
func (a *Adapter) Upload(ctx context.Context, payload []byte, originalName string) (domain.StoredObjectRef, error) {
	if len(payload) == 0 {
		return domain.StoredObjectRef{}, fmt.Errorf("%w: %s", domain.ErrEmptyFile, originalName)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	key := fmt.Sprintf("%s/%s%s", objectPrefix, identity.New(), ext)

	contentType := http.DetectContentType(payload)

	_, err := a.client.PutObject(ctx, a.config.BucketName, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return domain.StoredObjectRef{}, fmt.Errorf("%w: %s: %w", domain.ErrUploadFailed, originalName, err)
	}

	a.logger.Info("object uploaded",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName),
		slog.Int("size", len(payload)))

	return domain.StoredObjectRef{
		PublicID: key,
		Filename: originalName,
		Format:   strings.TrimPrefix(ext, "."),
	}, nil
}

// ResolveURL re-resolves a stored reference to a currently fetchable
// presigned URL. The upload response is not assumed to carry a durable
// URL; the object is stat'ed first so missing objects surface as
// domain.ErrObjectNotFound.
func (a *Adapter) ResolveURL(ctx context.Context, ref domain.StoredObjectRef) (string, error) {
	_, err := a.client.StatObject(ctx, a.config.BucketName, ref.PublicID, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return "", fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref.PublicID)
		}
		return "", fmt.Errorf("failed to stat object: %w", err)
	}

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", ref.Filename))

	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, ref.PublicID, a.config.DownloadSignedURLDuration, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	return presignedURL.String(), nil
}

// Delete removes the stored object. MinIO treats removing an absent
// object as success, which matches the best-effort cleanup contract.
func (a *Adapter) Delete(ctx context.Context, ref domain.StoredObjectRef) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, ref.PublicID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", ref.PublicID),
		slog.String("bucket", a.config.BucketName))

	return nil
}

package layouts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"layout-catalog/core/storage"
	"layout-catalog/feature/layouts/models"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive keeps the last fetched catalog of each scope in object storage so
// the store can be rebuilt without the remote service.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewArchive creates an archive writing to bucket under prefix.
func NewArchive(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Key returns the object name of scope's snapshot.
func (a *Archive) Key(scope string) string {
	return path.Join(a.prefix, scope+".json")
}

// EnsureBucket creates the archive bucket if it does not exist.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created archive bucket", zap.String("bucket", a.bucket))
	return nil
}

// Save writes catalog as the snapshot of scope.
func (a *Archive) Save(ctx context.Context, scope string, catalog *models.Catalog) error {
	snapshot := models.Catalog{
		Categories: catalog.Categories,
		Layouts:    make([]models.CatalogLayout, len(catalog.Layouts)),
	}
	if snapshot.Categories == nil {
		snapshot.Categories = []models.CatalogCategory{}
	}
	copy(snapshot.Layouts, catalog.Layouts)
	for i := range snapshot.Layouts {
		if snapshot.Layouts[i].Categories == nil {
			snapshot.Layouts[i].Categories = []models.CategoryRef{}
		}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode catalog snapshot: %w", err)
	}

	key := a.Key(scope)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	a.logger.Debug("Archived layout catalog", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Load reads the snapshot of scope. A snapshot that does not decode into a
// valid catalog fails with ErrParse.
func (a *Archive) Load(ctx context.Context, scope string) (*models.Catalog, error) {
	key := a.Key(scope)

	reader, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	catalog, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, key, err)
	}
	return catalog, nil
}

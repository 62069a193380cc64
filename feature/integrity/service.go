package integrity

import (
	"context"
	"errors"

	"layout-catalog/core/storage"
	"layout-catalog/feature/integrity/checks"
	"layout-catalog/feature/layouts/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrArchiveDisabled is returned by archive checks when no storage client is configured.
var ErrArchiveDisabled = errors.New("integrity: catalog archive is disabled")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. client may be nil when the
// catalog archive is disabled.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckSchema verifies the layout tables against the layout models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, &models.Category{}, &models.Layout{})
}

// CheckArchive reports whether the snapshot bucket exists.
func (s *Service) CheckArchive(ctx context.Context) (bool, error) {
	if s.client == nil {
		return false, ErrArchiveDisabled
	}
	return checks.CheckArchive(ctx, s.client, s.bucket)
}

// FixArchive creates the snapshot bucket.
func (s *Service) FixArchive(ctx context.Context) error {
	if s.client == nil {
		return ErrArchiveDisabled
	}
	return checks.FixArchive(ctx, s.client, s.bucket, s.logger)
}

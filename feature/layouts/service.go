package layouts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"layout-catalog/feature/layouts/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned by Restore when no archive is configured.
var ErrArchiveDisabled = errors.New("layouts: catalog archive is disabled")

// Completion receives the outcome of one RequestLayouts call: the fetched
// catalog, or the error that stopped the pipeline.
type Completion func(catalog *models.Catalog, err error)

// Result describes one completed sync.
type Result struct {
	ID      string          `json:"sync_id"`
	Scope   string          `json:"scope"`
	Summary Summary         `json:"summary"`
	Catalog *models.Catalog `json:"catalog"`
}

// Service runs the fetch, decode, reconcile pipeline and serves the persisted
// catalog.
type Service struct {
	fetcher    *Fetcher
	reconciler *Reconciler
	feed       *Feed
	store      *Store
	archive    *Archive
	logger     *zap.Logger
}

// NewService creates the layout service. archive may be nil.
func NewService(fetcher *Fetcher, reconciler *Reconciler, feed *Feed, store *Store, archive *Archive, logger *zap.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		reconciler: reconciler,
		feed:       feed,
		store:      store,
		archive:    archive,
		logger:     logger,
	}
}

// RequestLayouts fetches the catalog for account and replaces the persisted
// catalog with it. done is invoked exactly once. Configuration errors are
// reported before RequestLayouts returns; otherwise the pipeline runs on its
// own goroutine.
func (s *Service) RequestLayouts(ctx context.Context, account Account, size Size, done Completion) {
	var once sync.Once
	complete := func(catalog *models.Catalog, err error) {
		once.Do(func() { done(catalog, err) })
	}

	req, err := s.fetcher.Prepare(account)
	if err != nil {
		complete(nil, err)
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Layout sync panicked", zap.Any("panic", r))
				complete(nil, fmt.Errorf("layouts: sync panicked: %v", r))
			}
		}()

		res, err := s.run(ctx, req, size)
		if err != nil {
			complete(nil, err)
			return
		}
		complete(res.Catalog, nil)
	}()
}

// FetchLayouts is the blocking form of RequestLayouts.
func (s *Service) FetchLayouts(ctx context.Context, account Account, size Size) (*Result, error) {
	req, err := s.fetcher.Prepare(account)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, req, size)
}

func (s *Service) run(ctx context.Context, req *Request, size Size) (*Result, error) {
	id := uuid.NewString()
	l := s.logger.With(zap.String("sync_id", id), zap.String("scope", req.Endpoint.Scope))
	l.Info("Layout sync started", zap.String("path", req.Endpoint.Path))

	catalog, err := s.fetcher.Do(ctx, req, size)
	if err != nil {
		l.Warn("Layout fetch failed", zap.String("kind", string(KindOf(err))), zap.Error(err))
		return nil, err
	}

	summary, err := s.reconciler.Reconcile(ctx, catalog)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, req.Endpoint.Scope, catalog); err != nil {
			l.Warn("Unable to archive layout catalog", zap.Error(err))
		}
	}

	l.Info("Layout sync completed",
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("layouts", len(catalog.Layouts)))

	return &Result{ID: id, Scope: req.Endpoint.Scope, Summary: summary, Catalog: catalog}, nil
}

// Restore reconciles the last archived catalog of account's scope without
// contacting the remote service.
func (s *Service) Restore(ctx context.Context, account Account) (*Result, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	endpoint, err := ResolveEndpoint(account)
	if err != nil {
		return nil, err
	}

	catalog, err := s.archive.Load(ctx, endpoint.Scope)
	if err != nil {
		return nil, err
	}

	summary, err := s.reconciler.Reconcile(ctx, catalog)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.logger.Info("Layout catalog restored from archive",
		zap.String("sync_id", id),
		zap.String("scope", endpoint.Scope))

	return &Result{ID: id, Scope: endpoint.Scope, Summary: summary, Catalog: catalog}, nil
}

// Categories returns the persisted categories sorted by title.
func (s *Service) Categories(ctx context.Context) []models.Category {
	return s.feed.Categories(ctx)
}

// ObserveCategories subscribes to the sorted category feed.
func (s *Service) ObserveCategories(ctx context.Context) *Subscription {
	return s.feed.Observe(ctx)
}

// Layouts returns the persisted layouts, optionally restricted to one category.
func (s *Service) Layouts(ctx context.Context, categorySlug string) ([]models.Layout, error) {
	return s.store.ListLayouts(ctx, categorySlug)
}

// Close stops the feed and the store writer.
func (s *Service) Close() {
	s.feed.Close()
	s.store.Close()
}

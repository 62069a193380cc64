package layouts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"layout-catalog/core/database"
	"layout-catalog/feature/layouts/models"

	"gorm.io/gorm"
)

// ErrStoreClosed is returned by Write after Close.
var ErrStoreClosed = errors.New("layouts: store closed")

type writeJob struct {
	ctx    context.Context
	fn     func(tx *gorm.DB) error
	result chan error
}

// Store wraps the layout database. Writes are serialized through a single
// writer goroutine, each in its own transaction. Reads use independent
// sessions and see either pre- or post-commit state.
type Store struct {
	db        *gorm.DB
	jobs      chan writeJob
	done      chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewStore starts the writer for db.
func NewStore(db *gorm.DB) *Store {
	s := &Store{
		db:        db,
		jobs:      make(chan writeJob),
		done:      make(chan struct{}),
		listeners: make(map[int]func()),
	}
	go s.writer()
	return s
}

// Migrate creates or updates the layout tables and verifies their columns.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.Category{}, &models.Layout{}); err != nil {
		return fmt.Errorf("failed to migrate layout tables: %w", err)
	}

	required := map[string][]string{
		models.TableCategories:       {"id", "slug", "title", "description", "emoji", "ordinal"},
		models.TableLayouts:          {"id", "slug", "title", "preview", "preview_tablet", "preview_mobile", "demo_url", "content", "ordinal"},
		models.TableLayoutCategories: {"layout_id", "category_id"},
	}
	for _, table := range []string{models.TableCategories, models.TableLayouts, models.TableLayoutCategories} {
		missing, err := database.MissingColumns(s.db, table, required[table])
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %v", table, missing)
		}
	}
	return nil
}

// Read returns a read session bound to ctx.
func (s *Store) Read(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Write runs fn in a transaction on the writer goroutine and waits for the
// outcome. The transaction commits when fn returns nil; commit listeners run
// after a successful commit.
func (s *Store) Write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	job := writeJob{ctx: ctx, fn: fn, result: make(chan error, 1)}

	select {
	case <-s.done:
		return ErrStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	case s.jobs <- job:
	}

	return <-job.result
}

func (s *Store) writer() {
	for {
		select {
		case <-s.done:
			return
		case job := <-s.jobs:
			err := s.run(job)
			if err == nil {
				s.notify()
			}
			job.result <- err
		}
	}
}

// run executes one job. A panic inside fn is rolled back by the transaction
// and returned as an error so the writer keeps serving later jobs.
func (s *Store) run(job writeJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layouts: write panicked: %v", r)
		}
	}()
	return s.db.WithContext(job.ctx).Transaction(job.fn)
}

// OnCommit registers fn to run after every committed write, before Write
// returns. fn runs on the writer goroutine and must not block or write. The
// returned function removes it.
func (s *Store) OnCommit(fn func()) (remove func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close stops the writer. Pending writes already accepted complete first.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// ListCategories returns all categories sorted by title, then slug.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.Read(ctx).Order("title ASC").Order("slug ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListLayouts returns all layouts in catalog order with their categories
// loaded. A non-empty categorySlug restricts the result to that category.
func (s *Store) ListLayouts(ctx context.Context, categorySlug string) ([]models.Layout, error) {
	q := s.Read(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC").Order("slug ASC")
		}).
		Order("ordinal ASC").Order("slug ASC")

	if categorySlug != "" {
		q = q.Where("id IN (?)", s.Read(ctx).
			Table(models.TableLayoutCategories+" AS lc").
			Select("lc.layout_id").
			Joins("JOIN "+models.TableCategories+" AS c ON c.id = lc.category_id").
			Where("c.slug = ?", categorySlug))
	}

	var layouts []models.Layout
	if err := q.Find(&layouts).Error; err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return layouts, nil
}

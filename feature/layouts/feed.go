package layouts

import (
	"context"
	"sync"

	"layout-catalog/feature/layouts/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Feed is a live, sorted view over the persisted categories. Subscribers get
// a fresh snapshot after every committed write to the store.
type Feed struct {
	store  *Store
	logger *zap.Logger
	group  singleflight.Group

	// pushMu serializes snapshot loads with delivery so a subscriber never
	// receives an older snapshot after a newer one.
	pushMu sync.Mutex
	mu     sync.Mutex
	subs   map[*Subscription]struct{}

	refresh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	unlisten  func()
}

// NewFeed creates a feed over store and starts its refresh loop.
func NewFeed(store *Store, logger *zap.Logger) *Feed {
	f := &Feed{
		store:   store,
		logger:  logger,
		subs:    make(map[*Subscription]struct{}),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	f.unlisten = store.OnCommit(f.invalidate)
	go f.loop()
	return f
}

// invalidate schedules a refresh. Commits arriving while one is pending
// collapse into it. A Categories load already in flight may predate the
// commit, so later callers start a new one instead of joining it.
func (f *Feed) invalidate() {
	f.group.Forget("categories")
	select {
	case f.refresh <- struct{}{}:
	default:
	}
}

func (f *Feed) loop() {
	for {
		select {
		case <-f.done:
			return
		case <-f.refresh:
			f.pushMu.Lock()
			snapshot := f.load(context.Background())
			f.broadcast(snapshot)
			f.pushMu.Unlock()
		}
	}
}

// Categories returns the current snapshot sorted by title, then slug.
// Concurrent callers share one query. Load errors are logged and yield an
// empty snapshot.
func (f *Feed) Categories(ctx context.Context) []models.Category {
	v, _, _ := f.group.Do("categories", func() (any, error) {
		return f.load(context.WithoutCancel(ctx)), nil
	})
	return clone(v.([]models.Category))
}

func (f *Feed) load(ctx context.Context) []models.Category {
	categories, err := f.store.ListCategories(ctx)
	if err != nil {
		f.logger.Error("Unable to load layout categories", zap.Error(err))
		return []models.Category{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

func (f *Feed) broadcast(snapshot []models.Category) {
	f.mu.Lock()
	subs := make([]*Subscription, 0, len(f.subs))
	for s := range f.subs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		s.push(clone(snapshot))
	}
}

// Observe subscribes to the feed. The subscription receives the current
// snapshot first, then one after every committed write. Only the latest
// undelivered snapshot is kept. The subscription ends on Close, when ctx is
// done, or when the feed closes.
func (f *Feed) Observe(ctx context.Context) *Subscription {
	s := &Subscription{
		feed:   f,
		ch:     make(chan []models.Category, 1),
		closed: make(chan struct{}),
	}

	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		s.close()
		return s
	default:
	}
	f.subs[s] = struct{}{}
	f.mu.Unlock()

	f.pushMu.Lock()
	s.push(f.load(ctx))
	f.pushMu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.closed:
		}
	}()

	return s
}

func (f *Feed) remove(s *Subscription) {
	f.mu.Lock()
	delete(f.subs, s)
	f.mu.Unlock()
}

// Close stops the refresh loop and ends every subscription.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.unlisten()

		f.mu.Lock()
		close(f.done)
		subs := f.subs
		f.subs = make(map[*Subscription]struct{})
		f.mu.Unlock()

		for s := range subs {
			s.close()
		}
	})
}

// Subscription is a live category feed registration.
type Subscription struct {
	feed *Feed

	mu       sync.Mutex
	ch       chan []models.Category
	closed   chan struct{}
	isClosed bool
}

// C returns the snapshot channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan []models.Category {
	return s.ch
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.feed.remove(s)
	s.close()
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return
	}
	s.isClosed = true
	close(s.closed)
	close(s.ch)
}

// push replaces any undelivered snapshot with snapshot.
func (s *Subscription) push(snapshot []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snapshot
}

func clone(categories []models.Category) []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

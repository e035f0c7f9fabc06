// Package service implements the portfolio data service: the single owner
// of the embedded SQL engine handle and the only writer to the durable
// snapshot.
//
// Lifecycle: Uninitialized -> Initializing -> Ready. Every public operation
// goes through ensureReady, which runs initialization at most once per
// service instance. A failed initialization is permanent for the session:
// the service degrades to an empty store (reads return empty collections,
// writes are no-ops) instead of surfacing engine errors to consumers.
//
// Every successful mutation follows the same commit path: execute SQL,
// export the full engine snapshot to the durable store, then broadcast one
// change notification. Reads never mutate and never broadcast.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Fsince94/PortfolioApp/internal/bus"
	"github.com/Fsince94/PortfolioApp/internal/engine"
	"github.com/Fsince94/PortfolioApp/internal/kvstore"
)

// Service is the data service facade. Construct exactly one per running
// application with New and share it by reference; it is safe for
// concurrent use, with all engine operations strictly serialized.
type Service struct {
	kv      *kvstore.Store
	changes *bus.Bus
	lang    string

	initOnce sync.Once
	initErr  error

	mu  sync.Mutex // serializes all engine access and the commit path
	eng *engine.Engine
}

// Option configures a Service.
type Option func(*Service)

// WithSeedLanguage selects the catalog language used on first-ever
// seeding. Defaults to "en", the original bootstrap language.
func WithSeedLanguage(lang string) Option {
	return func(s *Service) {
		s.lang = lang
	}
}

// New creates a data service over the given durable store. The engine is
// not loaded yet; that happens on Init or lazily on first use.
func New(kv *kvstore.Store, opts ...Option) *Service {
	s := &Service{
		kv:      kv,
		changes: bus.New(),
		lang:    "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Changes returns the change-notification bus. Consumers subscribe here
// and re-query on every signal.
func (s *Service) Changes() *bus.Bus {
	return s.changes
}

// Init loads the engine eagerly and reports any initialization failure.
// Calling Init is optional - every operation self-initializes - but it is
// the one place a caller can observe that the store came up degraded.
func (s *Service) Init(ctx context.Context) error {
	return s.ensureReady(ctx)
}

// Close releases the engine handle. The durable snapshot is already
// current (every mutation commits synchronously), so nothing is flushed.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.eng == nil {
		return nil
	}
	err := s.eng.Close()
	s.eng = nil
	return err
}

// ensureReady runs initialization exactly once and returns its outcome.
// Concurrent early calls share the single in-flight initialization.
func (s *Service) ensureReady(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.initialize(ctx)
		if s.initErr != nil {
			slog.Error("data service initialization failed; store is unavailable for this session",
				"error", s.initErr)
		}
	})
	return s.initErr
}

// initialize hydrates the engine from the durable snapshot, or builds and
// seeds a fresh database when no snapshot exists.
func (s *Service) initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	image, hydrated, err := s.loadSnapshot()
	if err != nil {
		return err
	}

	var eng *engine.Engine
	if hydrated {
		eng, err = engine.OpenSnapshot(image)
	} else {
		eng, err = engine.Open()
	}
	if err != nil {
		return err
	}
	s.eng = eng

	if err := s.ensureSchema(ctx); err != nil {
		return err
	}

	seeded, err := s.seedIfEmpty(ctx)
	if err != nil {
		return err
	}

	if !hydrated || seeded {
		if err := s.commitLocked(ctx); err != nil {
			return err
		}
	}

	slog.Info("data service ready", "hydrated", hydrated, "seeded", seeded)
	return nil
}

// degraded logs and reports an unavailable store. Callers translate this
// into empty reads and no-op writes so the failure never reaches UI code.
func (s *Service) degraded(ctx context.Context, op string) bool {
	if err := s.ensureReady(ctx); err != nil {
		slog.Debug("data service degraded", "op", op)
		return true
	}
	return false
}

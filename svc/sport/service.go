package sport

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/cache"
	"github.com/dmitrymomot/clubhouse/pkg/logger"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

const (
	msgInvalidInput = "Invalid sport data"
	msgNotFound     = "Sport not found"
	msgNoData       = "No data returned from database"
)

// Service manages the sport catalog.
type Service interface {
	Create(ctx context.Context, in CreateInput) (*Sport, error)
	// FindAll returns the whole catalog, from cache when possible.
	FindAll(ctx context.Context) ([]Sport, error)
	FindOne(ctx context.Context, id string) (*Sport, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Sport, error)
	// Remove deletes a sport and returns the deleted record.
	Remove(ctx context.Context, id string) (*Sport, error)
}

type service struct {
	store datastore.Gateway[Sport]
	cache *cache.Typed[[]Sport]
	ttl   time.Duration
	log   *slog.Logger
	// generation is bumped by every eviction. A miss only keeps what it
	// cached if no eviction happened since it read the store.
	generation atomic.Uint64
}

type Option func(*service)

func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCacheTTL sets how long a cached catalog is served. Non-positive
// values keep DefaultCacheTTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewService panics if store or catalogCache is nil.
func NewService(store datastore.Gateway[Sport], catalogCache cache.Store, opts ...Option) Service {
	if store == nil {
		panic("sport: store is required")
	}
	if catalogCache == nil {
		panic("sport: cache is required")
	}

	s := &service{
		store: store,
		cache: cache.NewTyped[[]Sport](catalogCache),
		ttl:   DefaultCacheTTL,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("sport"))

	return s
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Sport, error) {
	if err := in.validate(); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	sp, err := s.store.Insert(ctx, in.record())
	if err != nil {
		return nil, s.storeFailure(ctx, "create", "", err)
	}
	if sp == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}

	s.evict(ctx)
	return sp, nil
}

func (s *service) FindAll(ctx context.Context) ([]Sport, error) {
	cached, ok, err := s.cache.Get(ctx, CatalogKey)
	if err != nil {
		s.log.WarnContext(ctx, "catalog cache read failed",
			logger.CacheKey(CatalogKey), logger.Error(err))
	}
	if ok {
		return cached, nil
	}

	gen := s.generation.Load()
	sports, err := s.store.SelectAll(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list", "", err)
	}
	if sports == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}

	if s.generation.Load() != gen {
		return sports, nil
	}
	if err := s.cache.Set(ctx, CatalogKey, sports, s.ttl); err != nil {
		s.log.WarnContext(ctx, "catalog cache write failed",
			logger.CacheKey(CatalogKey), logger.Error(err))
		return sports, nil
	}
	// An eviction that landed between the check and Set would be lost.
	if s.generation.Load() != gen {
		s.evict(ctx)
	}
	return sports, nil
}

func (s *service) FindOne(ctx context.Context, id string) (*Sport, error) {
	if !validator.IsUUID(id) {
		return nil, svcerr.NotFound(msgNotFound, nil)
	}

	sp, err := s.store.SelectOne(ctx, idKey(id))
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNotFound, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "find", id, err)
	case sp == nil:
		return nil, svcerr.NotFound(msgNotFound, nil)
	}
	return sp, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*Sport, error) {
	if !validator.IsUUID(id) {
		return nil, svcerr.NotFound(msgNotFound, nil)
	}
	if err := in.validate(); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	sp, err := s.store.Update(ctx, idKey(id), in.record())
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNotFound, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "update", id, err)
	case sp == nil:
		return nil, svcerr.NotFound(msgNotFound, nil)
	}

	s.evict(ctx)
	return sp, nil
}

func (s *service) Remove(ctx context.Context, id string) (*Sport, error) {
	if !validator.IsUUID(id) {
		return nil, svcerr.NotFound(msgNotFound, nil)
	}

	sp, err := s.store.Delete(ctx, idKey(id))
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNotFound, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "remove", id, err)
	case sp == nil:
		return nil, svcerr.NotFound(msgNotFound, nil)
	}

	s.evict(ctx)
	s.log.InfoContext(ctx, "sport removed", logger.SportID(id))
	return sp, nil
}

// evict drops the cached catalog. A failed eviction leaves a stale listing
// for at most one TTL; the write itself has already succeeded.
func (s *service) evict(ctx context.Context) {
	s.generation.Add(1)
	if err := s.cache.Delete(ctx, CatalogKey); err != nil {
		s.log.ErrorContext(ctx, "catalog cache eviction failed",
			logger.CacheKey(CatalogKey), logger.Error(err))
	}
}

func (s *service) storeFailure(ctx context.Context, op, id string, err error) error {
	attrs := []any{logger.Operation(op), logger.Error(err)}
	if id != "" {
		attrs = append(attrs, logger.SportID(id))
	}
	s.log.ErrorContext(ctx, "sport store failure", attrs...)

	return svcerr.ValidationFailed(fmt.Sprintf("could not %s sport: %s", op, datastore.Describe(err)), err)
}

package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/logger"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

const (
	msgInvalidInput = "Invalid member data"
	msgNotFound     = "Member not found"
	msgNoData       = "No data returned from database"
)

// Service manages club members.
type Service interface {
	Create(ctx context.Context, in CreateInput) (*Member, error)
	// FindAll returns every member, oldest first. An empty directory yields
	// an empty, non-nil slice.
	FindAll(ctx context.Context) ([]Member, error)
	FindOne(ctx context.Context, id string) (*Member, error)
	// Update applies the set fields of in. Without any set field it
	// returns the current row.
	Update(ctx context.Context, id string, in UpdateInput) (*Member, error)
	// Remove deletes the member and returns a confirmation message.
	// Removing an absent member succeeds.
	Remove(ctx context.Context, id string) (string, error)
}

type service struct {
	store datastore.Gateway[Member]
	log   *slog.Logger
	now   func() time.Time
}

// Option configures the member service.
type Option func(*service)

func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the clock used to reject dates of birth in the future.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService panics if store is nil.
func NewService(store datastore.Gateway[Member], opts ...Option) Service {
	if store == nil {
		panic("member: store is required")
	}

	s := &service{
		store: store,
		log:   logger.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("member"))

	return s
}

func (s *service) Create(ctx context.Context, in CreateInput) (*Member, error) {
	if err := in.validate(s.today()); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	m, err := s.store.Insert(ctx, in.record())
	if err != nil {
		return nil, s.storeFailure(ctx, "create", "", err)
	}
	if m == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}
	return m, nil
}

func (s *service) FindAll(ctx context.Context) ([]Member, error) {
	members, err := s.store.SelectAll(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list", "", err)
	}
	if members == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}
	return members, nil
}

func (s *service) FindOne(ctx context.Context, id string) (*Member, error) {
	if !validator.IsUUID(id) {
		return nil, svcerr.NotFound(msgNotFound, nil)
	}

	m, err := s.store.SelectOne(ctx, idKey(id))
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNotFound, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "find", id, err)
	case m == nil:
		return nil, svcerr.NotFound(msgNotFound, nil)
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) (*Member, error) {
	if !validator.IsUUID(id) {
		return nil, svcerr.NotFound(msgNotFound, nil)
	}
	if err := in.validate(id, s.today()); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	m, err := s.store.Update(ctx, idKey(id), in.record())
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNotFound, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "update", id, err)
	case m == nil:
		return nil, svcerr.NotFound(msgNotFound, nil)
	}
	return m, nil
}

func (s *service) Remove(ctx context.Context, id string) (string, error) {
	if err := validator.Apply(validator.ValidUUID("id", id)); err != nil {
		return "", svcerr.ValidationFailed(msgInvalidInput, err)
	}

	if _, err := s.store.Delete(ctx, idKey(id)); err != nil && !datastore.IsNoRows(err) {
		return "", s.storeFailure(ctx, "remove", id, err)
	}

	s.log.InfoContext(ctx, "member removed", logger.MemberID(id))
	return fmt.Sprintf("Member with id %s removed successfully", id), nil
}

func (s *service) storeFailure(ctx context.Context, op, id string, err error) error {
	attrs := []any{logger.Operation(op), logger.Error(err)}
	if id != "" {
		attrs = append(attrs, logger.MemberID(id))
	}
	s.log.ErrorContext(ctx, "member store failure", attrs...)

	return svcerr.ValidationFailed(fmt.Sprintf("could not %s member: %s", op, datastore.Describe(err)), err)
}

func (s *service) today() civil.Date {
	return civil.DateOf(s.now())
}

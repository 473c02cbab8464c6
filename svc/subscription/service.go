package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/logger"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
	"github.com/dmitrymomot/clubhouse/svc/member"
	"github.com/dmitrymomot/clubhouse/svc/sport"
	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

const (
	msgInvalidInput      = "Invalid subscription data"
	msgNoData            = "No data returned from database"
	msgUpdateKeyRequired = "Member ID and Sport ID are required to update a subscription"
	msgDeleteKeyRequired = "Member ID and Sport ID are required to delete a subscription"
	msgNothingToUpdate   = "No subscription found to update"
	msgMemberNotFound    = "Member not found"
	msgSportNotFound     = "Sport not found"
)

const (
	columnMemberID = "member_id"
	columnSportID  = "sport_id"
)

// Service manages subscriptions of members to sports.
type Service interface {
	Subscribe(ctx context.Context, in SubscribeInput) (*Subscription, error)
	FindAll(ctx context.Context) ([]Subscription, error)
	// FindByMemberID fails with svcerr.ErrReferenceNotFound when the member
	// does not exist.
	FindByMemberID(ctx context.Context, memberID string) ([]Subscription, error)
	// FindBySportID fails with svcerr.ErrReferenceNotFound when the sport
	// does not exist.
	FindBySportID(ctx context.Context, sportID string) ([]Subscription, error)
	Update(ctx context.Context, in UpdateInput) (*Subscription, error)
	// Unsubscribe deletes the subscription and returns a confirmation
	// message. An absent subscription is reported in the message only.
	Unsubscribe(ctx context.Context, key Key) (string, error)
}

// MemberFinder is the part of the member directory used for reference checks.
type MemberFinder interface {
	FindOne(ctx context.Context, id string) (*member.Member, error)
}

// SportFinder is the part of the sport catalog used for reference checks.
type SportFinder interface {
	FindOne(ctx context.Context, id string) (*sport.Sport, error)
}

type service struct {
	store   datastore.Gateway[Subscription]
	members MemberFinder
	sports  SportFinder
	log     *slog.Logger
}

type Option func(*service)

func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService panics if any dependency is nil.
func NewService(store datastore.Gateway[Subscription], members MemberFinder, sports SportFinder, opts ...Option) Service {
	if store == nil {
		panic("subscription: store is required")
	}
	if members == nil {
		panic("subscription: member finder is required")
	}
	if sports == nil {
		panic("subscription: sport finder is required")
	}

	s := &service{
		store:   store,
		members: members,
		sports:  sports,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("subscription"))

	return s
}

func (s *service) Subscribe(ctx context.Context, in SubscribeInput) (*Subscription, error) {
	if err := in.validate(); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	sub, err := s.store.Insert(ctx, in.record())
	if err != nil {
		return nil, s.storeFailure(ctx, "subscribe", Key{MemberID: in.MemberID, SportID: in.SportID}, err)
	}
	if sub == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}

	s.log.InfoContext(ctx, "member subscribed",
		logger.MemberID(in.MemberID), logger.SportID(in.SportID))
	return sub, nil
}

func (s *service) FindAll(ctx context.Context) ([]Subscription, error) {
	subs, err := s.store.SelectAll(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list", Key{}, err)
	}
	if subs == nil {
		return nil, svcerr.PersistenceInconsistency(msgNoData)
	}
	return subs, nil
}

func (s *service) FindByMemberID(ctx context.Context, memberID string) ([]Subscription, error) {
	if _, err := s.members.FindOne(ctx, memberID); err != nil {
		return nil, referenceError(msgMemberNotFound, err)
	}
	return s.selectWhere(ctx, columnMemberID, memberID, Key{MemberID: memberID})
}

func (s *service) FindBySportID(ctx context.Context, sportID string) ([]Subscription, error) {
	if _, err := s.sports.FindOne(ctx, sportID); err != nil {
		return nil, referenceError(msgSportNotFound, err)
	}
	return s.selectWhere(ctx, columnSportID, sportID, Key{SportID: sportID})
}

func (s *service) Update(ctx context.Context, in UpdateInput) (*Subscription, error) {
	if !in.complete() {
		return nil, svcerr.InvalidArgument(msgUpdateKeyRequired)
	}
	if err := in.validate(); err != nil {
		return nil, svcerr.ValidationFailed(msgInvalidInput, err)
	}

	sub, err := s.store.Update(ctx, in.datastoreKey(), in.record())
	switch {
	case datastore.IsNoRows(err):
		return nil, svcerr.NotFound(msgNothingToUpdate, err)
	case err != nil:
		return nil, s.storeFailure(ctx, "update", in.Key, err)
	case sub == nil:
		return nil, svcerr.NotFound(msgNothingToUpdate, nil)
	}
	return sub, nil
}

func (s *service) Unsubscribe(ctx context.Context, key Key) (string, error) {
	if !key.complete() {
		return "", svcerr.InvalidArgument(msgDeleteKeyRequired)
	}
	if err := validator.Apply(keyRules(key)...); err != nil {
		return "", svcerr.ValidationFailed(msgInvalidInput, err)
	}

	_, err := s.store.Delete(ctx, key.datastoreKey())
	switch {
	case datastore.IsNoRows(err):
		return fmt.Sprintf(
			"Subscription for member with id %s and sport with id %s was not found, nothing to delete",
			key.MemberID, key.SportID,
		), nil
	case err != nil:
		return "", s.storeFailure(ctx, "unsubscribe", key, err)
	}

	s.log.InfoContext(ctx, "member unsubscribed",
		logger.MemberID(key.MemberID), logger.SportID(key.SportID))
	return fmt.Sprintf(
		"Member with id %s unsubscribed from sport with id %s successfully",
		key.MemberID, key.SportID,
	), nil
}

func (s *service) selectWhere(ctx context.Context, column, value string, key Key) ([]Subscription, error) {
	subs, err := s.store.SelectWhere(ctx, column, value)
	if err != nil {
		return nil, s.storeFailure(ctx, "list", key, err)
	}
	if subs == nil {
		return []Subscription{}, nil
	}
	return subs, nil
}

// referenceError turns a missing member or sport into ErrReferenceNotFound
// and passes every other failure through unchanged.
func referenceError(msg string, err error) error {
	if errors.Is(err, svcerr.ErrNotFound) {
		return svcerr.ReferenceNotFound(msg, err)
	}
	return err
}

func (s *service) storeFailure(ctx context.Context, op string, key Key, err error) error {
	attrs := []any{logger.Operation(op), logger.Error(err)}
	if key.MemberID != "" {
		attrs = append(attrs, logger.MemberID(key.MemberID))
	}
	if key.SportID != "" {
		attrs = append(attrs, logger.SportID(key.SportID))
	}
	s.log.ErrorContext(ctx, "subscription store failure", attrs...)

	return svcerr.ValidationFailed(fmt.Sprintf("could not %s: %s", op, datastore.Describe(err)), err)
}

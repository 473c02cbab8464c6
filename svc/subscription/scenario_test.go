package subscription_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/internal/datastore/datastoretest"
	"github.com/dmitrymomot/clubhouse/pkg/cache"
	"github.com/dmitrymomot/clubhouse/svc/member"
	"github.com/dmitrymomot/clubhouse/svc/sport"
	"github.com/dmitrymomot/clubhouse/svc/subscription"
	"github.com/dmitrymomot/clubhouse/svc/svcerr"
)

func TestSubscribeUnsubscribeLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	memberStore := &datastoretest.MockGateway[member.Member]{}
	sportStore := &datastoretest.MockGateway[sport.Sport]{}
	subStore := &datastoretest.MockGateway[subscription.Subscription]{}
	mem, err := cache.NewMemoryStore(8)
	require.NoError(t, err)

	members := member.NewService(memberStore)
	sports := sport.NewService(sportStore, mem)
	subs := subscription.NewService(subStore, members, sports)

	memberStore.On("Insert", mock.Anything, mock.Anything).
		Return(&member.Member{ID: memberID, FirstName: "Mia", LastName: "Hamm", Gender: member.GenderFemale}, nil).Once()
	m1, err := members.Create(ctx, member.CreateInput{FirstName: "Mia", LastName: "Hamm", Gender: member.GenderFemale})
	require.NoError(t, err)

	price := decimal.RequireFromString("50.00")
	sportStore.On("Insert", mock.Anything, mock.Anything).
		Return(&sport.Sport{ID: sportID, Name: "Football", Price: price, AllowedGender: sport.AllowedMixed}, nil).Once()
	s1, err := sports.Create(ctx, sport.CreateInput{Name: "Football", Price: price, AllowedGender: sport.AllowedMixed})
	require.NoError(t, err)

	in := subscription.SubscribeInput{
		MemberID:         m1.ID,
		SportID:          s1.ID,
		SubscriptionDate: "2025-01-01",
		SubscriptionType: subscription.TypeGroup,
	}
	date, err := datastore.ParseDate(in.SubscriptionDate)
	require.NoError(t, err)
	subStore.On("Insert", mock.Anything, mock.Anything).
		Return(&subscription.Subscription{ID: "sub-1", MemberID: m1.ID, SportID: s1.ID, SubscriptionDate: date, SubscriptionType: subscription.TypeGroup}, nil).Once()
	subStore.On("Insert", mock.Anything, mock.Anything).
		Return(nil, datastoretest.Err(datastore.CodeUniqueViolation)).Once()

	created, err := subs.Subscribe(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, m1.ID, created.MemberID)
	assert.Equal(t, s1.ID, created.SportID)

	_, err = subs.Subscribe(ctx, in)
	require.ErrorIs(t, err, svcerr.ErrValidationFailed)
	assert.Contains(t, svcerr.MessageOf(err), "already exists")

	key := subscription.Key{MemberID: m1.ID, SportID: s1.ID}
	subStore.On("Delete", mock.Anything, mock.Anything).Return(created, nil).Once()
	subStore.On("Delete", mock.Anything, mock.Anything).Return(nil, datastoretest.Err(datastore.CodeNoRows)).Once()

	msg, err := subs.Unsubscribe(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, msg, m1.ID)
	assert.Contains(t, msg, s1.ID)
	assert.Contains(t, msg, "unsubscribed")

	msg, err = subs.Unsubscribe(ctx, key)
	require.NoError(t, err)
	assert.Contains(t, msg, "not found, nothing to delete")

	sportStore.On("SelectOne", mock.Anything, datastore.Key{"id": s1.ID}).Return(s1, nil).Once()
	subStore.On("SelectWhere", mock.Anything, "sport_id", s1.ID).Return([]subscription.Subscription{}, nil).Once()
	remaining, err := subs.FindBySportID(ctx, s1.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	memberStore.AssertExpectations(t)
	sportStore.AssertExpectations(t)
	subStore.AssertExpectations(t)
}

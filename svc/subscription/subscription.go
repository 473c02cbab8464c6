package subscription

import (
	"time"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

// Type is the kind of a subscription.
type Type string

const (
	TypePrivate     Type = "private"
	TypeGroup       Type = "group"
	TypeSemiPrivate Type = "semi_private"
)

var Types = []Type{TypePrivate, TypeGroup, TypeSemiPrivate}

type Subscription struct {
	ID               string         `json:"id"`
	MemberID         string         `json:"memberId"`
	SportID          string         `json:"sportId"`
	SubscriptionDate datastore.Date `json:"subscriptionDate"`
	SubscriptionType Type           `json:"subscriptionType"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Key is the composite identity of a subscription.
type Key struct {
	MemberID string `json:"memberId"`
	SportID  string `json:"sportId"`
}

func (k Key) complete() bool {
	return k.MemberID != "" && k.SportID != ""
}

func (k Key) datastoreKey() datastore.Key {
	return datastore.Key{"member_id": k.MemberID, "sport_id": k.SportID}
}

var Table = datastore.Table[Subscription]{
	Name: "subscriptions",
	Columns: []string{
		"id", "member_id", "sport_id", "subscription_date",
		"subscription_type", "created_at", "updated_at",
	},
	Scan:      scan,
	UpdatedAt: "updated_at",
	OrderBy:   []string{"created_at", "id"},
}

func scan(row datastore.Row) (Subscription, error) {
	var s Subscription
	err := row.Scan(
		&s.ID, &s.MemberID, &s.SportID, &s.SubscriptionDate,
		&s.SubscriptionType, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

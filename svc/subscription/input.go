package subscription

import (
	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
)

type SubscribeInput struct {
	MemberID         string `json:"memberId"`
	SportID          string `json:"sportId"`
	SubscriptionDate string `json:"subscriptionDate"`
	SubscriptionType Type   `json:"subscriptionType"`
}

func (in SubscribeInput) validate() error {
	return validator.Apply(
		validator.ValidUUID("memberId", in.MemberID),
		validator.ValidUUID("sportId", in.SportID),
		validator.ValidDate("subscriptionDate", in.SubscriptionDate),
		validator.OneOf("subscriptionType", in.SubscriptionType, Types),
	)
}

func (in SubscribeInput) record() datastore.Record {
	date, _ := datastore.ParseDate(in.SubscriptionDate)
	return datastore.Record{
		"member_id":         in.MemberID,
		"sport_id":          in.SportID,
		"subscription_date": date,
		"subscription_type": string(in.SubscriptionType),
	}
}

// UpdateInput addresses a subscription by its composite key and patches
// the non-nil fields.
type UpdateInput struct {
	Key
	SubscriptionDate *string `json:"subscriptionDate,omitempty"`
	SubscriptionType *Type   `json:"subscriptionType,omitempty"`
}

func (in UpdateInput) validate() error {
	rules := keyRules(in.Key)
	if in.SubscriptionDate != nil {
		rules = append(rules, validator.ValidDate("subscriptionDate", *in.SubscriptionDate))
	}
	if in.SubscriptionType != nil {
		rules = append(rules, validator.OneOf("subscriptionType", *in.SubscriptionType, Types))
	}
	return validator.Apply(rules...)
}

func (in UpdateInput) record() datastore.Record {
	rec := datastore.Record{}
	if in.SubscriptionDate != nil {
		date, _ := datastore.ParseDate(*in.SubscriptionDate)
		rec["subscription_date"] = date
	}
	if in.SubscriptionType != nil {
		rec["subscription_type"] = string(*in.SubscriptionType)
	}
	return rec
}

func keyRules(k Key) []validator.Rule {
	return []validator.Rule{
		validator.ValidUUID("memberId", k.MemberID),
		validator.ValidUUID("sportId", k.SportID),
	}
}

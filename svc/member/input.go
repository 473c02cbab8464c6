package member

import (
	"github.com/golang-sql/civil"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/optional"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
)

const maxNameLen = 100

// CreateInput is the payload of a new member.
type CreateInput struct {
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Gender             Gender  `json:"gender"`
	Dob                *string `json:"dob,omitempty"`
	AssociatedMemberID *string `json:"associatedMemberId,omitempty"`
}

func (in CreateInput) validate(today civil.Date) error {
	rules := []validator.Rule{
		validator.Required("firstName", in.FirstName),
		validator.MaxLen("firstName", in.FirstName, maxNameLen),
		validator.Required("lastName", in.LastName),
		validator.MaxLen("lastName", in.LastName, maxNameLen),
		validator.OneOf("gender", in.Gender, Genders),
	}
	if in.Dob != nil {
		rules = append(rules, dobRules(*in.Dob, today)...)
	}
	if in.AssociatedMemberID != nil {
		rules = append(rules, validator.ValidUUID("associatedMemberId", *in.AssociatedMemberID))
	}
	return validator.Apply(rules...)
}

// record must only be called on validated input.
func (in CreateInput) record() datastore.Record {
	rec := datastore.Record{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"gender":     string(in.Gender),
	}
	if in.Dob != nil {
		d, _ := datastore.ParseDate(*in.Dob)
		rec["dob"] = d
	}
	if in.AssociatedMemberID != nil {
		rec["associated_member_id"] = *in.AssociatedMemberID
	}
	return rec
}

// UpdateInput patches a member. Nil pointers and absent optional fields
// are left unchanged; an explicit null clears dob or associatedMemberId.
type UpdateInput struct {
	FirstName          *string                `json:"firstName,omitempty"`
	LastName           *string                `json:"lastName,omitempty"`
	Gender             *Gender                `json:"gender,omitempty"`
	Dob                optional.Field[string] `json:"dob"`
	AssociatedMemberID optional.Field[string] `json:"associatedMemberId"`
}

func (in UpdateInput) validate(id string, today civil.Date) error {
	var rules []validator.Rule
	if in.FirstName != nil {
		rules = append(rules,
			validator.Required("firstName", *in.FirstName),
			validator.MaxLen("firstName", *in.FirstName, maxNameLen),
		)
	}
	if in.LastName != nil {
		rules = append(rules,
			validator.Required("lastName", *in.LastName),
			validator.MaxLen("lastName", *in.LastName, maxNameLen),
		)
	}
	if in.Gender != nil {
		rules = append(rules, validator.OneOf("gender", *in.Gender, Genders))
	}
	if dob, ok := in.Dob.Get(); ok {
		rules = append(rules, dobRules(dob, today)...)
	}
	if assoc, ok := in.AssociatedMemberID.Get(); ok {
		rules = append(rules,
			validator.ValidUUID("associatedMemberId", assoc),
			validator.Rule{
				Check: func() bool { return assoc != id },
				Error: validator.ValidationError{Field: "associatedMemberId", Message: "must not reference the member itself"},
			},
		)
	}
	return validator.Apply(rules...)
}

func (in UpdateInput) record() datastore.Record {
	rec := datastore.Record{}
	if in.FirstName != nil {
		rec["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		rec["last_name"] = *in.LastName
	}
	if in.Gender != nil {
		rec["gender"] = string(*in.Gender)
	}
	if in.Dob.IsSet() {
		if v, ok := in.Dob.Get(); ok {
			d, _ := datastore.ParseDate(v)
			rec["dob"] = d
		} else {
			rec["dob"] = nil
		}
	}
	if in.AssociatedMemberID.IsSet() {
		if v, ok := in.AssociatedMemberID.Get(); ok {
			rec["associated_member_id"] = v
		} else {
			rec["associated_member_id"] = nil
		}
	}
	return rec
}

func dobRules(dob string, today civil.Date) []validator.Rule {
	return []validator.Rule{
		validator.ValidDate("dob", dob),
		validator.DateNotAfter("dob", dob, today),
	}
}

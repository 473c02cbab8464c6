package member

import (
	"time"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

// Gender shares the store's gender enum with sports.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderMixed  Gender = "mixed"
)

// Genders lists the values accepted for a member.
var Genders = []Gender{GenderMale, GenderFemale, GenderMixed}

type Member struct {
	ID                 string          `json:"id"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Gender             Gender          `json:"gender"`
	Dob                *datastore.Date `json:"dob"`
	AssociatedMemberID *string         `json:"associatedMemberId"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Table maps the members table onto Member.
var Table = datastore.Table[Member]{
	Name: "members",
	Columns: []string{
		"id", "first_name", "last_name", "gender", "dob",
		"associated_member_id", "created_at", "updated_at",
	},
	Scan:      scan,
	UpdatedAt: "updated_at",
	OrderBy:   []string{"created_at", "id"},
}

func scan(row datastore.Row) (Member, error) {
	var m Member
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Gender, &m.Dob,
		&m.AssociatedMemberID, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func idKey(id string) datastore.Key {
	return datastore.Key{"id": id}
}

package sport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
)

type AllowedGender string

const (
	AllowedMale   AllowedGender = "male"
	AllowedFemale AllowedGender = "female"
	AllowedMixed  AllowedGender = "mixed"
)

var AllowedGenders = []AllowedGender{AllowedMale, AllowedFemale, AllowedMixed}

// Sport is a catalog item members can subscribe to.
type Sport struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	AllowedGender AllowedGender   `json:"allowedGender"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

var Table = datastore.Table[Sport]{
	Name:      "sports",
	Columns:   []string{"id", "name", "price", "allowed_gender", "created_at", "updated_at"},
	Scan:      scan,
	UpdatedAt: "updated_at",
	OrderBy:   []string{"created_at", "id"},
}

func scan(row datastore.Row) (Sport, error) {
	var s Sport
	err := row.Scan(&s.ID, &s.Name, &s.Price, &s.AllowedGender, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func idKey(id string) datastore.Key {
	return datastore.Key{"id": id}
}

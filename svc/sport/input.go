package sport

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/clubhouse/internal/datastore"
	"github.com/dmitrymomot/clubhouse/pkg/validator"
)

const (
	maxNameLen  = 100
	priceScale  = 2
	priceDigits = 10
)

// maxPrice is the first value that no longer fits NUMERIC(10,2).
var maxPrice = decimal.New(1, priceDigits-priceScale)

type CreateInput struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	AllowedGender AllowedGender   `json:"allowedGender"`
}

func (in CreateInput) validate() error {
	rules := []validator.Rule{
		validator.Required("name", in.Name),
		validator.MaxLen("name", in.Name, maxNameLen),
		validator.OneOf("allowedGender", in.AllowedGender, AllowedGenders),
	}
	rules = append(rules, priceRules(in.Price)...)
	return validator.Apply(rules...)
}

func (in CreateInput) record() datastore.Record {
	return datastore.Record{
		"name":           in.Name,
		"price":          in.Price,
		"allowed_gender": string(in.AllowedGender),
	}
}

// UpdateInput patches a sport; nil fields are left unchanged.
type UpdateInput struct {
	Name          *string          `json:"name,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	AllowedGender *AllowedGender   `json:"allowedGender,omitempty"`
}

func (in UpdateInput) validate() error {
	var rules []validator.Rule
	if in.Name != nil {
		rules = append(rules,
			validator.Required("name", *in.Name),
			validator.MaxLen("name", *in.Name, maxNameLen),
		)
	}
	if in.Price != nil {
		rules = append(rules, priceRules(*in.Price)...)
	}
	if in.AllowedGender != nil {
		rules = append(rules, validator.OneOf("allowedGender", *in.AllowedGender, AllowedGenders))
	}
	return validator.Apply(rules...)
}

func (in UpdateInput) record() datastore.Record {
	rec := datastore.Record{}
	if in.Name != nil {
		rec["name"] = *in.Name
	}
	if in.Price != nil {
		rec["price"] = *in.Price
	}
	if in.AllowedGender != nil {
		rec["allowed_gender"] = string(*in.AllowedGender)
	}
	return rec
}

func priceRules(price decimal.Decimal) []validator.Rule {
	return []validator.Rule{
		validator.PositiveDecimal("price", price),
		validator.MaxDecimalPlaces("price", price, priceScale),
		{
			Check: func() bool { return price.LessThan(maxPrice) },
			Error: validator.ValidationError{Field: "price", Message: "must be less than " + maxPrice.String()},
		},
	}
}

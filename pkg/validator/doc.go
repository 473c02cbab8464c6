// Package validator builds declarative validation from small Rule values.
//
// Each rule pairs a Check func with the error reported when the check fails.
// Apply evaluates a list of rules and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// via errors.Is:
//
//	err := validator.Apply(
//	    validator.Required("firstName", in.FirstName),
//	    validator.OneOf("gender", in.Gender, []string{"male", "female"}),
//	    validator.PositiveDecimal("price", in.Price),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    _ = verrs.Details() // map[field][]message
//	}
//
// Optional fields are validated by appending rules only when the value is set:
//
//	if in.Dob != nil {
//	    rules = append(rules, validator.ValidDate("dob", *in.Dob))
//	}
//
// Rules are plain values with no shared state and are safe for concurrent use.
package validator

// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, the controller, and storage can all import types without
// depending on each other.
package types

// Person represents a person record in our system.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. Email and Phone are optional: "omitempty" skips the rule
//     when the field is empty, so only a present-but-malformed email
//     fails validation.
//
// ID is caller-assigned (not auto-generated) and intentionally carries no
// validation tag: creation accepts any id, and a duplicate id overwrites
// the stored record. Only the read/update/delete paths enforce id > 0.
type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// Package schemas holds the request payloads accepted by the HTTP layer and
// their validation rules. A payload that fails validation is rejected before
// any entity is constructed or persisted.
package schemas

import (
	"errors"
	"net/mail"
	"unicode/utf8"

	"calc-service/internal/calculator"
	"calc-service/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUsernameLength     = errors.New("username must be 3-50 characters")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrPasswordLength     = errors.New("password must be 8-100 characters")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)

// UserCreate carries the fields required to register a new account.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// lengthBetween counts runes, not bytes, so multibyte usernames and
// passwords measure the way users see them.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func (u UserCreate) Validate() error {
	if !lengthBetween(u.Username, 3, 50) {
		return ErrUsernameLength
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}
	if !lengthBetween(u.Password, 8, 100) {
		return ErrPasswordLength
	}
	return nil
}

// UserUpdate carries an optional new username and/or email. At least one
// field must be present; present fields follow the UserCreate constraints.
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (u UserUpdate) Validate() error {
	if u.Username == nil && u.Email == nil {
		return ErrNoFieldsToUpdate
	}
	if u.Username != nil && !lengthBetween(*u.Username, 3, 50) {
		return ErrUsernameLength
	}
	if u.Email != nil {
		if _, err := mail.ParseAddress(*u.Email); err != nil {
			return ErrInvalidEmail
		}
	}
	return nil
}

// UserLogin carries login credentials.
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u UserLogin) Validate() error {
	if u.Username == "" || u.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// CalculationCreate is a calculation request. Validate checks the operation
// field first and the cross-field zero-divisor rule last, so the field error
// wins when both would fail.
type CalculationCreate struct {
	A      float64              `json:"a"`
	B      float64              `json:"b"`
	Type   calculator.Operation `json:"type"`
	UserID *uuid.UUID           `json:"user_id"`
}

func (c CalculationCreate) Validate() error {
	if _, err := calculator.Resolve(string(c.Type)); err != nil {
		return err
	}
	if c.Type == calculator.OperationDivide && c.B == 0 {
		return calculator.NewDivisionByZeroError()
	}
	return nil
}

// CalculationUpdate is a partial calculation payload. It has no Validate of
// its own: callers merge it onto the stored record with Apply and validate
// the merged value through CalculationCreate.Validate, keeping create and
// update on a single validation path.
type CalculationUpdate struct {
	A    *float64              `json:"a"`
	B    *float64              `json:"b"`
	Type *calculator.Operation `json:"type"`
}

// Apply merges the update onto the stored calculation and returns the full
// request value to be revalidated and recomputed.
func (u CalculationUpdate) Apply(current models.Calculation) CalculationCreate {
	merged := CalculationCreate{
		A:      current.A,
		B:      current.B,
		Type:   calculator.Operation(current.Type),
		UserID: current.UserID,
	}
	if u.A != nil {
		merged.A = *u.A
	}
	if u.B != nil {
		merged.B = *u.B
	}
	if u.Type != nil {
		merged.Type = *u.Type
	}
	return merged
}

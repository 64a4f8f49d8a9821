package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain errors shared between services and handlers. Handlers translate
// these into HTTP statuses via StatusFor.
var (
	// ErrSweetNotFound is returned when the referenced sweet does not exist.
	ErrSweetNotFound = errors.New("sweet not found")
	// ErrUserNotFound is returned when a user lookup finds no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials is returned on login failure. The same error covers
	// unknown email and wrong password so the response does not reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyPatch is returned when an update request carries no fields.
	ErrEmptyPatch = errors.New("no update data provided")
	// ErrAdjustmentRejected is returned when the conditional quantity update
	// matched no row. The caller must re-check to tell not-found from
	// insufficient stock.
	ErrAdjustmentRejected = errors.New("quantity adjustment rejected")
)

// InsufficientStockError reports how far a purchase overshot available stock.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// StatusFor maps a domain error to its HTTP status code. Unrecognized errors
// become 500 and their detail must not be sent to the client.
func StatusFor(err error) int {
	var stock *InsufficientStockError
	switch {
	case errors.Is(err, ErrSweetNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrEmptyPatch), errors.Is(err, ErrAdjustmentRejected), errors.As(err, &stock):
		return http.StatusBadRequest
	case IsDuplicateKey(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsDuplicateKey reports whether err is a store-level uniqueness violation.
// Postgres and SQLite phrase the reason differently, so match on the text.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

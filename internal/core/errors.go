package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/wuquf/wuquf-backend/internal/db"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrLocationNotFound    = errors.New("parking location not found")
	ErrSpotNotFound        = errors.New("parking spot not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrMissingFields is returned before any write when a required field is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrMissingUserID is the reservation-specific form of ErrMissingFields.
	ErrMissingUserID = fmt.Errorf("%w: userId", ErrMissingFields)
	// ErrInvalidInput covers present but unusable values such as an unparsable expiresIn.
	ErrInvalidInput = errors.New("invalid input")

	ErrIdentityProvider = errors.New("identity provider failure")
	ErrPaymentProvider  = errors.New("payment provider failure")
)

// field pairs a wire name with whether the request carried it.
type field struct {
	name    string
	present bool
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// truthy reports whether a loosely typed JSON value counts as supplied: not
// null, false, zero or the empty string.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case int:
		return val != 0
	case int64:
		return val != 0
	case bool:
		return val
	default:
		return true
	}
}

// notFoundAs rewrites db.ErrNotFound into the entity sentinel, keeping other errors intact.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}

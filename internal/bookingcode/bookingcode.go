package bookingcode

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length of a booking code in characters.
const Length = 8

// New returns a fresh human-shareable booking code: 8 uppercase hex chars
// taken from a random UUID. Uniqueness is not guaranteed by construction;
// the storage layer enforces it with a unique constraint and the caller
// retries on collision.
func New() string {
	id := uuid.New()
	return strings.ToUpper(fmt.Sprintf("%x", id[0:4]))
}

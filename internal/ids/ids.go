// Package ids generates opaque identifiers for catalog entities.
package ids

import gonanoid "github.com/matoous/go-nanoid/v2"

// Length is the number of characters in a generated identifier.
const Length = 8

// New returns a random 8-character identifier from the URL-safe nanoid
// alphabet. Uniqueness is probabilistic only; no check against existing ids
// is performed.
func New() string {
	return gonanoid.Must(Length)
}

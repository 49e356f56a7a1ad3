package uid

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// DefaultLength is the number of encoded characters kept after the prefix.
// A full 128-bit UUID encodes to 22 url-safe characters; truncating to 12
// keeps 72 bits of entropy, which callers must budget against their expected
// node counts.
const DefaultLength = 12

// Generate returns a short unique identifier of the form
// "<prefix>:<base64url-random>", e.g. "Article:c3VwZXJzZWNy".
func Generate(prefix string, length int) string {
	if length <= 0 || length > 22 {
		length = DefaultLength
	}
	id := uuid.New()
	encoded := base64.RawURLEncoding.EncodeToString(id[:])
	return prefix + ":" + encoded[:length]
}

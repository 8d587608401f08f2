// internal/domain/id.go
package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID generates a prefixed identifier such as "order_3f2a9c81d04b".
// The suffix is the first 12 hex characters of a random UUID.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:12]
}

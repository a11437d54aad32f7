// Package identity produces unguessable identifiers for sessions and
// stored objects.
package identity

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// New returns a fresh random identifier suitable for embedding in URLs.
// It uses a version 4 UUID; if the secure random source is unavailable
// it falls back to a UUID-shaped string built from math/rand.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback()
	}
	return id.String()
}

func fallback() string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = byte(rand.UintN(256))
	}
	// version 4, RFC 4122 variant
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

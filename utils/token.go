package utils

import "github.com/google/uuid"

// NewIdentityToken mints a fresh identity for an anonymous caller. UUIDv4
// from crypto/rand keeps collision probability negligible, so the store can
// treat identities as globally unique without coordination.
func NewIdentityToken() string {
	return uuid.NewString()
}

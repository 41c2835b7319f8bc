package auth

import "crypto/subtle"

// AdminVerifier checks presented credentials against the shared admin secret.
type AdminVerifier struct {
	secret []byte
}

// NewAdminVerifier builds a verifier for the given secret.
func NewAdminVerifier(secret string) *AdminVerifier {
	return &AdminVerifier{secret: []byte(secret)}
}

// Verify reports whether candidate equals the configured secret.
// An empty configured secret never verifies.
func (v *AdminVerifier) Verify(candidate string) bool {
	if len(v.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.secret, []byte(candidate)) == 1
}

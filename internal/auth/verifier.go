package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a presented password against the stored
// credential material. It is a separate capability so the fixture-backed
// plaintext comparison can be swapped for a real hashing scheme without
// touching the authenticator's control flow.
type CredentialVerifier interface {
	Verify(presented string, stored string) bool
}

// PlaintextVerifier compares passwords in cleartext, constant-time. The
// fixture credential table stores raw passwords, so this is the verifier
// the mock runs with. Never store or compare cleartext passwords outside
// fixture data.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}

// BcryptVerifier treats the stored credential as a bcrypt hash. This is
// what a real deployment plugs in.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(presented, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// ABOUTME: Derives the UI session from the stored bearer token
// ABOUTME: Decodes JWT claims without verification for display purposes only

package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user snapshot decoded from the token payload.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the derived authentication state. It is pure derivation from
// the token: never stored, recomputed at every navigation boundary.
type Session struct {
	Authenticated bool
	Identity      *Identity
}

// claims mirrors the payload the Blogify API issues.
type claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Anonymous is the session for a missing or unusable token.
func Anonymous() Session {
	return Session{}
}

// Derive decodes the token's claims and returns the resulting session.
// The signature is NOT verified: the server is the authorization boundary
// and rejects bad tokens per request. A malformed token derives the
// anonymous session rather than an error, so a corrupted token file can
// never take the UI down.
func Derive(tok string) Session {
	if tok == "" {
		return Anonymous()
	}

	var c claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &c); err != nil {
		return Anonymous()
	}
	if c.ID == "" {
		return Anonymous()
	}

	return Session{
		Authenticated: true,
		Identity: &Identity{
			ID:    c.ID,
			Email: c.Email,
			Name:  c.Name,
		},
	}
}

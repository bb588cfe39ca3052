package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is the decoded form of a signed bearer token. Tokens are immutable:
// ExpiresAt is fixed at mint time and a "refreshed" token is always a newly
// minted pair, never an extension of the old one.
type Token struct {
	Subject   uuid.UUID
	Kind      TokenKind
	ExpiresAt time.Time
}

// Expired reports whether the token expiry has passed at the given instant.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// TokenPair carries the access and refresh tokens minted together by login or
// refresh. Both members always share the same subject.
type TokenPair struct {
	Access  string
	Refresh string
}

// Session is the single-slot holder of the most recently issued TokenPair,
// persisted between terminal interactions. A logout or expiry simply renders
// it unusable until the next login; there is no explicit destruction.
type Session struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Principal identifies the connected user for the duration of a session.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Package service provides technical services for authentication operations.
//
// This package implements the one-way credential transformation and the
// signed token codec used by the token use case.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
)

// CredentialService defines operations for password hashing and verification.
// Implementations must use a memory-hard, salted hashing algorithm (Argon2id).
type CredentialService interface {
	// Hash derives a stored hash from a plaintext password. Hashing the same
	// plaintext twice yields different hashes (random salt); both verify.
	// Fails only on catastrophic environment error.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plaintext attempt against a stored hash in constant
	// time. Any failure, including a malformed stored hash, returns false:
	// the caller cannot distinguish "wrong password" from "broken hash".
	Verify(plainPassword string, hashedPassword string) bool
}

// TokenCodec creates and verifies compact signed bearer tokens carrying a
// subject, a kind and an absolute expiry.
type TokenCodec interface {
	// Mint serializes {subject, kind, expires_at = now + ttl} and signs it
	// with the shared secret. Output is a compact URL-safe string.
	Mint(subject uuid.UUID, kind authDomain.TokenKind, ttl time.Duration) (string, error)

	// Decode verifies signature integrity and decodes the fields. Expired,
	// mis-signed and malformed tokens all surface as ErrInvalidToken; the
	// caller only learns the token is unusable.
	Decode(tokenString string) (*authDomain.Token, error)
}

package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/epicevents/crm/internal/errors"
)

// credentialService implements CredentialService using Argon2id.
type credentialService struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plaintext password using Argon2id with a random salt.
func (c *credentialService) Hash(plainPassword string) (string, error) {
	hashedPassword, err := c.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// Verify performs a constant-time comparison between a plaintext password and
// its stored hash. A malformed stored hash verifies as false rather than
// erroring, so the caller sees a single "did not match" outcome.
func (c *credentialService) Verify(plainPassword string, hashedPassword string) bool {
	ok, err := c.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewCredentialService creates a CredentialService using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewCredentialService() CredentialService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &credentialService{
		hasher: hasher,
	}
}

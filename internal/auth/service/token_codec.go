package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// tokenIssuer is the fixed issuer claim stamped into every minted token.
const tokenIssuer = "epicevents"

// tokenClaims is the JWT payload: registered claims plus the token kind.
type tokenClaims struct {
	Kind authDomain.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec with HS256 signing over a shared secret.
type tokenCodec struct {
	secret []byte
}

// Mint creates a signed token for the subject with the given kind and ttl.
// The expiry is absolute and never extended afterwards.
func (c *tokenCodec) Mint(
	subject uuid.UUID,
	kind authDomain.TokenKind,
	ttl time.Duration,
) (string, error) {
	if subject == uuid.Nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "token subject is required")
	}
	if !kind.IsValid() {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "unknown token kind")
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti claim keeps two mints within the same second distinct,
			// so rotation always replaces the pair with new tokens.
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Decode verifies the signature and expiry and extracts the token fields.
// All failure modes collapse into ErrInvalidToken: the refresh-retry policy
// one layer up does not depend on why a token is unusable.
func (c *tokenCodec) Decode(tokenString string) (*authDomain.Token, error) {
	if tokenString == "" {
		return nil, authDomain.ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, authDomain.ErrInvalidToken
			}
			return c.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}
	if !claims.Kind.IsValid() {
		return nil, authDomain.ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.Token{
		Subject:   subject,
		Kind:      claims.Kind,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// NewTokenCodec creates a TokenCodec signing with the shared secret.
func NewTokenCodec(secret string) TokenCodec {
	return &tokenCodec{secret: []byte(secret)}
}

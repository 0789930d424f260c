// Package auth implements stateless access tokens: signed, time-boxed JWTs
// carrying the user identifier. Verification needs no store access.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/tunedeck/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Signer signs and verifies access tokens with a configured HMAC key set.
// The first key is the active signing key; every key is accepted during
// verification so the active key can be rotated without cutting off tokens
// signed by a previous one.
type Signer struct {
	keys [][]byte
}

// NewSigner builds a Signer from the configured key strings. At least one
// key is required.
func NewSigner(keys []string) (*Signer, error) {
	if len(keys) == 0 {
		return nil, errors.New("no signing keys configured")
	}
	ks := make([][]byte, 0, len(keys))
	for _, k := range keys {
		ks = append(ks, []byte(k))
	}
	return &Signer{keys: ks}, nil
}

// Sign produces an HS256 token for userID that expires after validity.
func (s *Signer) Sign(userID string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(s.keys[0])
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the token against every configured key and returns the
// embedded user identifier. Any signature, format or expiry failure comes
// back as common.ErrInvalidToken.
func (s *Signer) Verify(tokenString string) (string, error) {
	for _, key := range s.keys {
		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrInvalidToken
			}
			return key, nil
		})
		if err != nil {
			continue
		}

		if token.Valid {
			return claims.UserID, nil
		}
	}

	return "", common.ErrInvalidToken
}

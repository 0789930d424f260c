// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/tunedeck/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// refresh tokens. Tokens are long-lived: there is no expiry, only explicit
// revocation.
type Repository interface {
	// Create stores a new refresh token for userID.
	Create(ctx context.Context, userID string, token string) error

	// Find looks up a refresh token by its opaque token string and returns
	// its metadata. Implementations return common.ErrNotFound when the token
	// is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a
	// non-existent token is not an error, so concurrent logouts stay safe.
	Delete(ctx context.Context, token string) error
}

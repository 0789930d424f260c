package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/tunedeck/internal/common"
)

type contextKey string

const userIDKey contextKey = "user_id"

// userIDFrom returns the authenticated user stored by the auth middleware.
func userIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// authMiddleware validates the bearer access token and stores the user
// identifier in the request context. Requests without a valid token never
// reach the protected handlers.
func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(r.Context(), w, a.logger, common.ErrUnauthorized)
			return
		}

		userID, err := a.tokens.VerifyAccess(token)
		if err != nil {
			respondError(r.Context(), w, a.logger, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

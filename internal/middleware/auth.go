package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cypress-app/cypress-api/internal/auth"
	"github.com/cypress-app/cypress-api/internal/models"
	"github.com/cypress-app/cypress-api/internal/utils"
)

// UserResolver turns a bearer token into the user it identifies.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth rejects requests without a valid bearer token and pushes
// the resolved user into the request context.
func RequireAuth(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			header := r.Header.Get("Authorization")
			if header == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := resolver.ResolveUser(r.Context(), token)
			if errors.Is(err, auth.ErrUnknownSubject) {
				utils.JSONError(w, http.StatusNotFound, "User not found")
				return
			}
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}
}

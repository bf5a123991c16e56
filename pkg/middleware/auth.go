package middleware

import (
	"net/http"
	"strings"

	"health-tracker/pkg/token"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer session token and puts its subject username on
// the request context. Fails closed: any token problem ends the request
// with 401 and the not-found error body, it never reaches a handler.
func Auth(issuer *token.Issuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
				return
			}

			sessionToken := parts[1]

			username, err := issuer.CheckSubject(sessionToken)
			if err != nil {
				logger.Warn("Rejected session token", zap.Error(err))
				utils.ResponseError(w, http.StatusUnauthorized, utils.CodeNotFound, "user")
				return
			}

			ctx := utils.SetUsernameContext(r.Context(), username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

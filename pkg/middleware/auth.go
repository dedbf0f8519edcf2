package middleware

import (
	"net/http"
	"strings"

	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Identity resolves the caller's identity and stores it on the request
// context. A bearer token wins; the x-user-id / x-user-type headers are the
// web client's fallback. Requests without identity pass through, handlers
// decide what they require.
func Identity(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || parts[0] != "Bearer" {
					utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
					return
				}

				claims, err := utils.ParseToken(jwtConfig, parts[1])
				if err != nil {
					logger.Warn("Invalid or expired token", zap.Error(err))
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}

				ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Role)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if userID := r.Header.Get("x-user-id"); userID != "" {
				ctx := utils.SetUserContext(r.Context(), userID, r.Header.Get("x-user-type"))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin requires an admin identity set by Identity.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != "admin" {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

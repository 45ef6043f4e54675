package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/Rakhulsr/go-category-admin/app/helpers"
	"go.uber.org/zap"
)

// AdminAuthMiddleware guards the admin area with HTTP basic auth checked
// against a bcrypt hash. An empty hash disables the check.
func AdminAuthMiddleware(username, passwordHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	if passwordHash == "" {
		logger.Warn("AdminAuthMiddleware: ADMIN_PASSWORD_HASH is empty, admin area is unprotected")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			userMatches := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			if !userMatches || !helpers.PasswordCompare(passwordHash, []byte(password)) {
				logger.Warn("AdminAuthMiddleware: rejected credentials",
					zap.String("user", user),
					zap.String("remote_addr", r.RemoteAddr),
				)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/bhamfoods/invoicetrack-backend/api/responses"
	pkgauth "github.com/bhamfoods/invoicetrack-backend/pkg/auth"
	"github.com/bhamfoods/invoicetrack-backend/pkg/auth/session"
	"github.com/bhamfoods/invoicetrack-backend/pkg/config"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
)

// SessionCookieName holds the app access token for browser clients.
const SessionCookieName = "it_session"

// RefreshCookieName holds the refresh token paired with the session.
const RefreshCookieName = "it_refresh"

// Auth validates the session and seeds the request context with the user id.
// Browser clients present the session cookie; API clients may use a bearer
// token instead. Responses are 401 JSON; page routes use RequireSession.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable"))
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession guards page routes: anonymous or stale sessions get a 302
// to the login entry point instead of a JSON error.
func RequireSession(cfg config.JWTConfig, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil || claims.ID == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}

package controllers

import (
	"net/http"
	"time"

	"github.com/bhamfoods/invoicetrack-backend/api/middleware"
	"github.com/bhamfoods/invoicetrack-backend/api/responses"
	"github.com/bhamfoods/invoicetrack-backend/internal/auth"
	"github.com/bhamfoods/invoicetrack-backend/pkg/config"
	pkgerrors "github.com/bhamfoods/invoicetrack-backend/pkg/errors"
	"github.com/bhamfoods/invoicetrack-backend/pkg/logger"
)

// Login sends the browser to the external identity provider. The provider
// authenticates the user and redirects back to /auth/callback with a signed
// identity token.
func Login(cfg config.IdentityConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.LoginURL, http.StatusFound)
	}
}

// Callback completes the login round trip: it exchanges the provider's
// identity token for an app session and installs the session cookies.
func Callback(svc auth.Service, appCfg config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "token is required"))
			return
		}

		session, err := svc.EstablishSession(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setSessionCookies(w, appCfg, session)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Refresh rotates the session behind the cookies and reissues them.
func Refresh(svc auth.Service, appCfg config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := cookieValue(r, middleware.SessionCookieName)
		refreshToken := cookieValue(r, middleware.RefreshCookieName)
		if accessToken == "" || refreshToken == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session"))
			return
		}

		session, err := svc.Refresh(r.Context(), auth.RefreshRequest{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		})
		if err != nil {
			clearSessionCookies(w, appCfg)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setSessionCookies(w, appCfg, session)
		responses.WriteSuccess(w, map[string]string{"status": "refreshed"})
	}
}

// Logout revokes the session and clears the cookies. A missing session is
// not an error; logout is idempotent from the browser's point of view.
func Logout(svc auth.Service, appCfg config.AppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if accessToken := cookieValue(r, middleware.SessionCookieName); accessToken != "" {
			if err := svc.Logout(r.Context(), accessToken); err != nil {
				if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
			}
		}
		clearSessionCookies(w, appCfg)
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookies(w http.ResponseWriter, appCfg config.AppConfig, session *auth.SessionResponse) {
	http.SetCookie(w, sessionCookie(appCfg, middleware.SessionCookieName, session.AccessToken, 0))
	http.SetCookie(w, sessionCookie(appCfg, middleware.RefreshCookieName, session.RefreshToken, 0))
}

func clearSessionCookies(w http.ResponseWriter, appCfg config.AppConfig) {
	expired := -time.Hour
	http.SetCookie(w, sessionCookie(appCfg, middleware.SessionCookieName, "", expired))
	http.SetCookie(w, sessionCookie(appCfg, middleware.RefreshCookieName, "", expired))
}

func sessionCookie(appCfg config.AppConfig, name, value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   appCfg.IsProd(),
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
	}
	return cookie
}

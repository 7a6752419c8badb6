package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/color-game/colorimetry/models"
)

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Access-Control-Allow-Credentials, Access-Control-Allow-Origin, Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// tokenFromRequest reads the access token cookie, falling back to a bearer header
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(models.JWT.ACCESS_COOKIE_NAME); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}
	return "", errors.New("no access token found")
}

// Verify the caller holds an admin token
func (app *Application) requireAdmin(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Config.JwtSecret == "" {
			app.invalidAuthorization(w, r, models.ErrAdminDisabled)
			return
		}

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		claims, err := models.ValidateJWTToken(tokenString, app.Config.JwtSecret)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		if claims.Scope != models.JWT.ADMIN_SCOPE {
			app.invalidAuthorization(w, r, ErrInvalidPrivelege)
			return
		}

		h.ServeHTTP(w, r)
	}
}

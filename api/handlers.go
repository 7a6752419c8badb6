package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/color-game/colorimetry/models"
	"github.com/color-game/colorimetry/notation"
	"github.com/color-game/colorimetry/validation"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Colorimetry API")
}

// POST /v1/colors/convert - Convert a color to one format, or to all of them
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ConvertRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		app.badRequest(w, r, errors.New("input is required"))
		return
	}

	var target models.Format
	if req.Target != "" {
		parsed, err := models.ParseFormat(req.Target)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		target = parsed
	}

	source, _ := notation.Detect(req.Input)

	if !target.IsValid() {
		rep, err := app.Converter.Represent(req.Input)
		app.recordConversion(req.Input, source, target, rep.HexString(), err)
		if err != nil {
			app.invalidColor(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rep.Response())
		return
	}

	output, err := app.Converter.Convert(req.Input, target)
	app.recordConversion(req.Input, source, target, output, err)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ConvertResponse{
		Input:  req.Input,
		Source: source,
		Target: target,
		Output: output,
	})
}

// POST /v1/colors/components - Represent a color given as component values
func (app *Application) buildColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ComponentsRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	format, err := models.ParseFormat(req.Format)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	rep, err := app.Converter.RepresentComponents(format, req.Components)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep.Response())
}

// POST /v1/colors/validate - Check a color string without converting it
func (app *Application) validateColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ValidateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	var (
		format models.Format
		result models.ValidationResult
	)
	if req.Format != "" {
		parsed, err := models.ParseFormat(req.Format)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		format, result = parsed, validation.Validate(req.Input, parsed)
	} else {
		format, result = app.Converter.Validate(req.Input)
	}

	resp := models.ValidateResponse{Valid: result.Valid(), Reason: result.Reason()}
	if format.IsValid() {
		resp.Format = &format
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/colors/detect?input= - Report which notation a string uses
func (app *Application) detectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	input := r.URL.Query().Get("input")
	resp := models.DetectResponse{Input: input}
	if format, ok := notation.Detect(input); ok {
		resp.Format = &format
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/colors/named?name= - Represent a CSS color keyword
func (app *Application) getNamedColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		app.badRequest(w, r, errors.New("name is required"))
		return
	}

	rep, err := app.Converter.RepresentNamed(name)
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep.Response())
}

// GET /v1/colors/random - Represent a random opaque color
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	color := models.NewRGB(rand.Intn(256), rand.Intn(256), rand.Intn(256))
	rep, err := app.Converter.RepresentColor(color)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep.Response())
}

// POST /v1/auth/token - Exchange the admin password for an access token
func (app *Application) issueToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.TokenRequest{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if app.Config.JwtSecret == "" {
		app.invalidCredentials(w, r, models.ErrAdminDisabled)
		return
	}
	if err := models.CheckAdminPassword(app.Config.AdminPasswordHash, creds.Password); err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessClaims := models.JWTClaims{
		Scope:     models.JWT.ADMIN_SCOPE,
		TokenType: models.JWT.ACCESS_COOKIE_NAME,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    accessTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  accessExpiry,
	})

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: accessTokenString,
		ExpiresAt:   accessExpiry.Unix(),
	})
}

// GET /v1/admin/conversions?limit= - List recent conversions (Admin only)
func (app *Application) getConversions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	if app.ConversionRepo == nil {
		app.notFound(w, r, ErrHistoryDisabled)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			app.badRequest(w, r, fmt.Errorf("limit must be a positive integer, got %q", raw))
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	conversions, err := app.ConversionRepo.GetRecent(limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conversions)
}

// POST /v1/admin/conversions/prune - Apply the retention window now (Admin only)
func (app *Application) pruneConversions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}
	if app.Pruner == nil {
		app.notFound(w, r, ErrHistoryDisabled)
		return
	}

	deleted, err := app.Pruner.PruneOnce(time.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// recordConversion stores a history entry. Failures are logged, not returned.
func (app *Application) recordConversion(input string, source, target models.Format, output string, convErr error) {
	if app.ConversionRepo == nil {
		return
	}
	if convErr != nil {
		output = ""
	}
	conversion := models.NewConversion(input, source, target, output, convErr)
	if _, err := app.ConversionRepo.Create(conversion); err != nil {
		log.Printf("Error recording conversion %s: %v", conversion.ID, err)
	}
}

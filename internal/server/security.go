package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening headers and CORS behavior of
// the observability endpoints.
type SecurityConfig struct {
	// EnableCORS turns on CORS header handling.
	EnableCORS bool
	// AllowedOrigins lists the origins permitted to read the
	// endpoints; "*" allows any.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised in preflight
	// responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the defaults: CORS open to any origin,
// read-only methods. The endpoints expose only telemetry, so a
// permissive CORS policy is acceptable.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware sets hardening headers on every response, applies
// the CORS policy, and answers OPTIONS preflight requests directly.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			applyCORS(config, w, r)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// applyCORS sets the CORS response headers when the request origin is
// allowed.
func applyCORS(config SecurityConfig, w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")

	allowed := ""
	for _, o := range config.AllowedOrigins {
		if o == "*" {
			allowed = "*"
			break
		}
		if o == origin && origin != "" {
			allowed = origin
			break
		}
	}
	if allowed == "" {
		return
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", allowed)
	h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Max-Age", "86400")
}

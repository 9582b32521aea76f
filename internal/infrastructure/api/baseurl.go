package api

import (
	"net"
	"strings"
)

// URLs de backend. La local apunta al backend stub (cmd/stubapi).
const (
	LocalBaseURL      = "http://localhost:8000/api/v1"
	ProductionBaseURL = "https://sultan.quicdeal.in/api/v1"
)

// ResolveBaseURL elige el backend según el hostname donde corre la consola:
// hosts de desarrollo local usan LocalBaseURL, cualquier otro ProductionBaseURL.
func ResolveBaseURL(host string) string {
	h := strings.ToLower(strings.TrimSpace(host))
	if hst, _, err := net.SplitHostPort(h); err == nil {
		h = hst
	}
	h = strings.Trim(h, "[]")

	switch {
	case h == "localhost", h == "127.0.0.1", h == "::1", h == "0.0.0.0":
		return LocalBaseURL
	case strings.HasSuffix(h, ".localhost"), strings.HasSuffix(h, ".local"):
		return LocalBaseURL
	default:
		return ProductionBaseURL
	}
}

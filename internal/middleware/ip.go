package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP for a request: the first entry of
// X-Forwarded-For, then X-Real-IP, then RemoteAddr without the port.
//
// These headers are trusted, so the service must sit behind a reverse proxy
// that sets them; exposed directly, clients could spoof their way past the
// rate limiter.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

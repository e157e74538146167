package middleware

import (
	"net/http"
	"strings"
)

// CacheControl sets Cache-Control headers based on request path:
// - Static assets: 1 year (immutable)
// - robots.txt: 1 day
// - Public share pages and fallback profiles: 1 minute with revalidation
// - Editor and API: never cached (live authoring state)
// - POST/PUT/DELETE: no caching
//
// Handlers may still override these (the sandbox sets its own preview
// headers after this runs).
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, "/static/"):
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/robots.txt":
			w.Header().Set("Cache-Control", "public, max-age=86400")
		case strings.HasPrefix(path, "/share/") || strings.HasPrefix(path, "/profiles/"):
			w.Header().Set("Cache-Control", "public, max-age=60, must-revalidate")
		case strings.HasPrefix(path, "/editor/") || strings.HasPrefix(path, "/api/"):
			w.Header().Set("Cache-Control", "no-store")
		default:
			w.Header().Set("Cache-Control", "public, max-age=300, must-revalidate")
		}

		next.ServeHTTP(w, r)
	})
}

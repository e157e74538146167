// Package sandbox delivers merged share page documents inside an isolated
// browsing context.
package sandbox

import (
	"log/slog"
	"net/http"
)

// Mode selects how a merged document is being served.
type Mode int

const (
	// ModeInline is the final public page: the document is the entire
	// visible page and may be cached briefly.
	ModeInline Mode = iota

	// ModePreview is the editor's disposable view: never cached, never
	// indexed.
	ModePreview
)

// Renderer hosts merged documents. The CSP sandbox directive without
// allow-same-origin gives every response an opaque synthesized origin, so
// authored scripts cannot reach the host application's cookies, storage, or
// DOM even though they execute.
type Renderer struct {
	allowScripts bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithoutScripts disables script execution in hosted documents. Author
// interactivity is lost; everything else renders unchanged.
func WithoutScripts() Option {
	return func(r *Renderer) {
		r.allowScripts = false
	}
}

// New creates a sandbox renderer. Scripts are allowed by default; the
// isolation comes from the origin, not from blocking execution.
func New(opts ...Option) *Renderer {
	r := &Renderer{allowScripts: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Host writes a merged document as the full response body with sandbox
// headers for the given mode. The document is served as-is: if the author's
// markup is broken, the browser's parser recovery is the only handling.
func (r *Renderer) Host(w http.ResponseWriter, mode Mode, document string) {
	csp := "sandbox"
	if r.allowScripts {
		csp = "sandbox allow-scripts allow-popups"
	}

	h := w.Header()
	h.Set("Content-Security-Policy", csp)
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("Content-Type", "text/html; charset=utf-8")

	switch mode {
	case ModePreview:
		h.Set("Cache-Control", "no-store")
		h.Set("X-Robots-Tag", "noindex")
	case ModeInline:
		h.Set("Cache-Control", "public, max-age=60, must-revalidate")
	}

	if _, err := w.Write([]byte(document)); err != nil {
		slog.Debug("failed to write sandboxed document", "error", err)
	}
}

// Package api implements the design persistence and preview JSON API used by
// the template editor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/sandbox"
)

// shareLinkStore is the share link access the API needs.
type shareLinkStore interface {
	Resolve(ctx context.Context, shareID string) (*model.ShareLink, error)
	Mint(ctx context.Context, targetType model.TargetType, targetID string) (*model.ShareLink, error)
}

// designStore is the design access the API needs.
type designStore interface {
	Load(ctx context.Context, shareID string) (model.TemplateDesign, error)
	Save(ctx context.Context, shareID string, d model.TemplateDesign) error
	DefaultDesign() model.TemplateDesign
}

// platformClient fetches the live data preview renders with.
type platformClient interface {
	PageData(ctx context.Context, link *model.ShareLink) (*model.ProfileUser, []model.CampaignSummary, error)
}

// documentHost serves merged preview documents in the sandbox.
type documentHost interface {
	Host(w http.ResponseWriter, mode sandbox.Mode, document string)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	links      shareLinkStore
	designs    designStore
	platform   platformClient
	host       documentHost
	sanitizer  *design.ValueSanitizer // nil unless value hardening is enabled
	bufferPool *sync.Pool
}

// Option configures an API Handler.
type Option func(*Handler)

// WithValueSanitizer enables the hardening policy on preview values.
func WithValueSanitizer(s *design.ValueSanitizer) Option {
	return func(h *Handler) {
		h.sanitizer = s
	}
}

// New creates a new API Handler.
func New(links shareLinkStore, designs designStore, platform platformClient, host documentHost, opts ...Option) (*Handler, error) {
	if links == nil {
		return nil, errors.New("share link store is required")
	}
	if designs == nil {
		return nil, errors.New("design store is required")
	}
	if platform == nil {
		return nil, errors.New("platform client is required")
	}
	if host == nil {
		return nil, errors.New("document host is required")
	}

	h := &Handler{
		links:    links,
		designs:  designs,
		platform: platform,
		host:     host,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/designs/{shareId}", h.GetDesign)
	mux.HandleFunc("PUT /api/v1/designs/{shareId}", h.SaveDesign)
	mux.HandleFunc("POST /api/v1/designs/{shareId}/preview", h.Preview)
	mux.HandleFunc("POST /api/v1/share-links", h.MintShareLink)
	mux.HandleFunc("GET /api/v1/placeholders", h.ListPlaceholders)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}

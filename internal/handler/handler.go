package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/sandbox"
)

// ShareLinkStore resolves and mints share links.
type ShareLinkStore interface {
	Resolve(ctx context.Context, shareID string) (*model.ShareLink, error)
	Mint(ctx context.Context, targetType model.TargetType, targetID string) (*model.ShareLink, error)
}

// DesignStore loads and saves template designs.
type DesignStore interface {
	Load(ctx context.Context, shareID string) (model.TemplateDesign, error)
	Save(ctx context.Context, shareID string, d model.TemplateDesign) error
	DefaultDesign() model.TemplateDesign
}

// PlatformClient fetches the live data a share page renders.
type PlatformClient interface {
	PageData(ctx context.Context, link *model.ShareLink) (*model.ProfileUser, []model.CampaignSummary, error)
}

// TemplateRenderer renders the service's own pages.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// DocumentHost serves merged documents in an isolated browsing context.
type DocumentHost interface {
	Host(w http.ResponseWriter, mode sandbox.Mode, document string)
}

// Handler holds dependencies for the HTML-facing routes.
type Handler struct {
	links     ShareLinkStore
	designs   DesignStore
	platform  PlatformClient
	tmpl      TemplateRenderer
	host      DocumentHost
	sanitizer *design.ValueSanitizer // nil unless value hardening is enabled
}

// Option configures a Handler.
type Option func(*Handler)

// WithValueSanitizer enables the hardening policy on resolved values.
func WithValueSanitizer(s *design.ValueSanitizer) Option {
	return func(h *Handler) {
		h.sanitizer = s
	}
}

// New creates a new Handler with the given dependencies.
func New(links ShareLinkStore, designs DesignStore, platform PlatformClient, tmpl TemplateRenderer, host DocumentHost, opts ...Option) (*Handler, error) {
	if links == nil {
		return nil, errors.New("share link store is required")
	}
	if designs == nil {
		return nil, errors.New("design store is required")
	}
	if platform == nil {
		return nil, errors.New("platform client is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}
	if host == nil {
		return nil, errors.New("document host is required")
	}

	h := &Handler{
		links:    links,
		designs:  designs,
		platform: platform,
		tmpl:     tmpl,
		host:     host,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes registers all HTML routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /share/profile/{shareId}", h.ShareProfile)
	mux.HandleFunc("GET /share/campaign/{shareId}", h.ShareCampaign)
	mux.HandleFunc("GET /profiles/{type}/{id}", h.FallbackProfile)
	mux.HandleFunc("GET /editor/{shareId}", h.Editor)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /robots.txt", h.Robots)
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Robots asks crawlers to skip the editor and API.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nDisallow: /editor/\nDisallow: /api/\n"))
}

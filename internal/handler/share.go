package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/givebridge/sharepage/internal/sandbox"
	"github.com/givebridge/sharepage/internal/service"
	"github.com/givebridge/sharepage/internal/store"
)

// ShareProfile serves the public page for an NGO or company profile link.
func (h *Handler) ShareProfile(w http.ResponseWriter, r *http.Request) {
	h.sharePage(w, r, model.TargetNGOProfile, model.TargetCompanyProfile)
}

// ShareCampaign serves the public page for a campaign link.
func (h *Handler) ShareCampaign(w http.ResponseWriter, r *http.Request) {
	h.sharePage(w, r, model.TargetCampaign)
}

// sharePage runs the full render pipeline: resolve the link, load the design
// (custom or default), fetch live data, resolve tokens, merge, and host the
// result inline in the sandbox.
func (h *Handler) sharePage(w http.ResponseWriter, r *http.Request, accepted ...model.TargetType) {
	ctx := r.Context()
	shareID := r.PathValue("shareId")

	link, err := h.links.Resolve(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			h.renderNotFound(w)
			return
		}
		slog.Error("failed to resolve share link", "share_id", shareID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !matchesTarget(link.TargetType, accepted) {
		h.renderNotFound(w)
		return
	}

	d, err := h.designs.Load(ctx, shareID)
	if err != nil {
		slog.Error("failed to load design", "share_id", shareID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user, campaigns, err := h.platform.PageData(ctx, link)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		slog.Error("failed to fetch page data", "share_id", shareID, "target_id", link.TargetID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	values := placeholder.Resolve(*user, campaigns)
	if h.sanitizer != nil {
		values = h.sanitizer.Sanitize(values)
	}

	h.host.Host(w, sandbox.ModeInline, design.Merge(d, values))
}

func matchesTarget(t model.TargetType, accepted []model.TargetType) bool {
	for _, a := range accepted {
		if t == a {
			return true
		}
	}
	return false
}

// renderNotFound serves the "page not available" view with a 404 status.
func (h *Handler) renderNotFound(w http.ResponseWriter) {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, "notfound.html", nil); err != nil {
		slog.Error("failed to render not-found page", "error", err)
		http.Error(w, "Page not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/service"
)

// FallbackProfile serves the built-in structured layout for a profile,
// independent of any authored design. Linked from the not-found page and
// usable directly when an organization has no custom page.
func (h *Handler) FallbackProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var targetType model.TargetType
	switch r.PathValue("type") {
	case "ngo":
		targetType = model.TargetNGOProfile
	case "company":
		targetType = model.TargetCompanyProfile
	default:
		h.renderNotFound(w)
		return
	}

	link := &model.ShareLink{TargetType: targetType, TargetID: r.PathValue("id")}
	user, campaigns, err := h.platform.PageData(ctx, link)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.renderNotFound(w)
			return
		}
		slog.Error("failed to fetch fallback profile", "target_id", link.TargetID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := model.FallbackPageData{User: *user, Campaigns: campaigns}

	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, "profile.html", data); err != nil {
		slog.Error("failed to render fallback profile", "target_id", link.TargetID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/givebridge/sharepage/internal/store"
)

// Editor serves the authoring page for a share link. The page itself drives
// loading, preview, and save through the JSON API; here we only verify the
// link and seed the default design.
func (h *Handler) Editor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shareID := r.PathValue("shareId")

	link, err := h.links.Resolve(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			h.renderNotFound(w)
			return
		}
		slog.Error("failed to resolve share link for editor", "share_id", shareID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := model.EditorData{
		ShareID:      link.ShareID,
		TargetType:   link.TargetType,
		TargetID:     link.TargetID,
		Seed:         h.designs.DefaultDesign(),
		Placeholders: placeholder.Catalog(),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, "editor.html", data); err != nil {
		slog.Error("failed to render editor page", "share_id", shareID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
	"github.com/givebridge/sharepage/internal/sandbox"
	"github.com/givebridge/sharepage/internal/service"
	"github.com/givebridge/sharepage/internal/store"
)

// GetDesign handles GET /api/v1/designs/{shareId}. A link with no saved
// design returns the default design, not an error.
func (h *Handler) GetDesign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shareID := r.PathValue("shareId")

	d, err := h.designs.Load(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			h.writeError(w, http.StatusNotFound, "share link not found")
			return
		}
		slog.Error("failed to load design", "share_id", shareID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to load design")
		return
	}

	h.writeJSON(w, http.StatusOK, d)
}

// SaveDesign handles PUT /api/v1/designs/{shareId}: a whole-document
// overwrite of the stored design. AdditionalData is persisted verbatim.
func (h *Handler) SaveDesign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shareID := r.PathValue("shareId")

	var d model.TemplateDesign
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid design payload")
		return
	}

	if err := h.designs.Save(ctx, shareID, d); err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			h.writeError(w, http.StatusNotFound, "share link not found")
			return
		}
		slog.Error("failed to save design", "share_id", shareID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to save design")
		return
	}

	h.writeJSON(w, http.StatusOK, SaveResponse{Status: "ok"})
}

// Preview handles POST /api/v1/designs/{shareId}/preview: merge the
// submitted buffers with live data and host the result as a disposable
// sandboxed document. Nothing is persisted. Accepts JSON from scripts and a
// form post from the editor so the preview opens as a navigated page and
// keeps its sandbox headers.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shareID := r.PathValue("shareId")

	d, ok := h.decodePreviewDesign(w, r)
	if !ok {
		return
	}

	link, err := h.links.Resolve(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareLinkNotFound) {
			h.writeError(w, http.StatusNotFound, "share link not found")
			return
		}
		slog.Error("failed to resolve share link for preview", "share_id", shareID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to resolve share link")
		return
	}

	user, campaigns, err := h.platform.PageData(ctx, link)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "profile data not found")
			return
		}
		slog.Error("failed to fetch preview data", "share_id", shareID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch preview data")
		return
	}

	values := placeholder.Resolve(*user, campaigns)
	if h.sanitizer != nil {
		values = h.sanitizer.Sanitize(values)
	}

	h.host.Host(w, sandbox.ModePreview, design.Merge(d, values))
}

func (h *Handler) decodePreviewDesign(w http.ResponseWriter, r *http.Request) (model.TemplateDesign, bool) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "application/json" {
		var d model.TemplateDesign
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid design payload")
			return model.TemplateDesign{}, false
		}
		return d, true
	}

	if err := r.ParseForm(); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid form payload")
		return model.TemplateDesign{}, false
	}
	return model.TemplateDesign{
		HTML: r.PostFormValue("html"),
		CSS:  r.PostFormValue("css"),
	}, true
}

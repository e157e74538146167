package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/givebridge/sharepage/internal/placeholder"
)

// MintShareLink handles POST /api/v1/share-links. Minting is idempotent: the
// same target always yields the same link.
func (h *Handler) MintShareLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid mint payload")
		return
	}
	if !req.TargetType.Valid() {
		h.writeError(w, http.StatusBadRequest, "unknown target type")
		return
	}
	if req.TargetID == "" {
		h.writeError(w, http.StatusBadRequest, "target ID is required")
		return
	}

	link, err := h.links.Mint(ctx, req.TargetType, req.TargetID)
	if err != nil {
		slog.Error("failed to mint share link", "target_type", req.TargetType, "target_id", req.TargetID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to mint share link")
		return
	}

	publicPath := "/share/profile/" + link.ShareID
	if link.TargetType == model.TargetCampaign {
		publicPath = "/share/campaign/" + link.ShareID
	}

	h.writeJSON(w, http.StatusOK, ShareLinkResponse{
		ShareID:    link.ShareID,
		TargetType: link.TargetType,
		TargetID:   link.TargetID,
		PublicPath: publicPath,
		EditorPath: "/editor/" + link.ShareID,
	})
}

// ListPlaceholders handles GET /api/v1/placeholders: the documented token
// vocabulary for the editor help panel.
func (h *Handler) ListPlaceholders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, placeholder.Catalog())
}

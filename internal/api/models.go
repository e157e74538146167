package api

import "github.com/givebridge/sharepage/internal/model"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// SaveResponse acknowledges a persisted design.
type SaveResponse struct {
	Status string `json:"status"`
}

// MintRequest asks for a share link for a target.
type MintRequest struct {
	TargetType model.TargetType `json:"targetType"`
	TargetID   string           `json:"targetId"`
}

// ShareLinkResponse describes a minted or existing share link.
type ShareLinkResponse struct {
	ShareID    string           `json:"shareId"`
	TargetType model.TargetType `json:"targetType"`
	TargetID   string           `json:"targetId"`
	PublicPath string           `json:"publicPath"`
	EditorPath string           `json:"editorPath"`
}

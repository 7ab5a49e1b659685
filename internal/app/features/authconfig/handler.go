// internal/app/features/authconfig/handler.go
package authconfig

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// WebConfig is the identity provider's public browser configuration.
// All of these values ship to every visitor; nothing here is a secret.
type WebConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket,omitempty"`
	MessagingSenderID string `json:"messagingSenderId,omitempty"`
	AppID             string `json:"appId,omitempty"`
}

// Handler serves the public identity-provider config the browser
// client needs to initialize sign-in.
type Handler struct {
	Config WebConfig
	Log    *zap.Logger
}

func NewHandler(cfg WebConfig, logger *zap.Logger) *Handler {
	return &Handler{Config: cfg, Log: logger}
}

// ServeConfig handles GET /api/firebase-config.
func (h *Handler) ServeConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(h.Config)
}

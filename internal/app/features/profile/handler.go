// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	profilestore "github.com/bmitrev/campusfolio/internal/app/store/profiles"
	"github.com/bmitrev/campusfolio/internal/app/system/domains"
	"github.com/bmitrev/campusfolio/internal/app/system/identity"
	"github.com/bmitrev/campusfolio/internal/app/system/timeouts"
	"github.com/bmitrev/campusfolio/internal/domain/models"
	"go.uber.org/zap"
)

// ProfileStore is the slice of the profile store this feature needs.
type ProfileStore interface {
	ExistsBySubject(ctx context.Context, subjectID string) (bool, error)
	Create(ctx context.Context, p models.UserProfile) (models.UserProfile, error)
}

// Handler completes signup: it binds a verified identity-provider
// subject to the university whose email domain the subject's verified
// address carries.
type Handler struct {
	Store    ProfileStore
	Verifier identity.Verifier
	Log      *zap.Logger
}

func NewHandler(store ProfileStore, verifier identity.Verifier, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Verifier: verifier, Log: logger}
}

type completeRequest struct {
	University string `json:"university"`
}

// ServeComplete handles POST /api/user/profile.
func (h *Handler) ServeComplete(w http.ResponseWriter, r *http.Request) {
	raw := identity.FromAuthHeader(r.Header.Get("Authorization"))
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tok, err := h.Verifier.Verify(ctx, raw)
	if err != nil {
		h.Log.Info("token verification failed", zap.Error(err))
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var in completeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.University == "" {
		writeError(w, http.StatusBadRequest, "University is required")
		return
	}
	if domains.UniversityDomains(in.University) == nil {
		writeError(w, http.StatusBadRequest, "Unknown university")
		return
	}
	if !domains.EmailMatchesUniversity(tok.Email, in.University) {
		writeError(w, http.StatusBadRequest, "Email does not belong to the selected university")
		return
	}

	exists, err := h.Store.ExistsBySubject(ctx, tok.Subject)
	if err != nil {
		h.Log.Error("profile pre-check failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "Profile already exists")
		return
	}

	_, err = h.Store.Create(ctx, models.UserProfile{
		SubjectID:  tok.Subject,
		Email:      tok.Email,
		University: in.University,
	})
	if err != nil {
		if errors.Is(err, profilestore.ErrDuplicateProfile) {
			writeError(w, http.StatusConflict, "Profile already exists")
			return
		}
		h.Log.Error("create profile failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	h.Log.Info("profile created",
		zap.String("subject", tok.Subject),
		zap.String("university", in.University))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

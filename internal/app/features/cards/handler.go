// internal/app/features/cards/handler.go
package cards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	cardstore "github.com/bmitrev/campusfolio/internal/app/store/cards"
	"github.com/bmitrev/campusfolio/internal/app/system/domains"
	"github.com/bmitrev/campusfolio/internal/app/system/htmlsanitize"
	"github.com/bmitrev/campusfolio/internal/app/system/normalize"
	"github.com/bmitrev/campusfolio/internal/app/system/timeouts"
	"github.com/bmitrev/campusfolio/internal/domain/models"
	"go.uber.org/zap"
)

// CardStore is the slice of the card store the API needs.
type CardStore interface {
	List(ctx context.Context) ([]models.Card, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, card models.Card) (models.Card, error)
}

// Handler serves the public card API.
type Handler struct {
	Store CardStore
	Log   *zap.Logger
}

func NewHandler(store CardStore, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// createRequest is the raw submitted card. The client may send a
// timestamp in "id"; it is carried through as a display hint only.
type createRequest struct {
	ClientID           int64  `json:"id,omitempty"`
	Email              string `json:"email"`
	FullName           string `json:"fullName"`
	University         string `json:"university"`
	Program            string `json:"program"`
	Year               string `json:"year"`
	Bio                string `json:"bio"`
	Skills             string `json:"skills"`
	ProjectTitle       string `json:"projectTitle"`
	ProjectDescription string `json:"projectDescription"`
	LinkedIn           string `json:"linkedin"`
	GitHub             string `json:"github"`
	Instagram          string `json:"instagram"`
	Twitter            string `json:"twitter"`
}

// ServeList handles GET /api/cards: every card, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cards, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("list cards failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load cards")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// ServeCreate handles POST /api/cards.
//
// Check order matters: missing email (400), then domain allow-list
// (403), then duplicate (409); a rejected request must never touch
// storage. The unique index is the authoritative duplicate guard; the
// ExistsByEmail pre-check just gives the client a clean 409 without an
// insert attempt.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := normalize.Email(in.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !domains.IsAllowedEmail(email) {
		writeError(w, http.StatusForbidden, "Only university emails are allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	exists, err := h.Store.ExistsByEmail(ctx, email)
	if err != nil {
		h.Log.Error("duplicate pre-check failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save card")
		return
	}
	if exists {
		writeError(w, http.StatusConflict, "A card with this email already exists")
		return
	}

	fullName := htmlsanitize.Sanitize(in.FullName)
	if fullName == "" {
		writeError(w, http.StatusBadRequest, "Full name is required")
		return
	}

	card := models.Card{
		ClientID:           in.ClientID,
		Email:              email,
		FullName:           fullName,
		Initials:           normalize.Initials(fullName),
		University:         htmlsanitize.Sanitize(in.University),
		Program:            htmlsanitize.Sanitize(in.Program),
		Year:               htmlsanitize.Sanitize(in.Year),
		Bio:                htmlsanitize.Sanitize(in.Bio),
		Skills:             htmlsanitize.Sanitize(in.Skills),
		ProjectTitle:       htmlsanitize.Sanitize(in.ProjectTitle),
		ProjectDescription: htmlsanitize.Sanitize(in.ProjectDescription),
		LinkedIn:           htmlsanitize.Sanitize(in.LinkedIn),
		GitHub:             htmlsanitize.Sanitize(in.GitHub),
		Instagram:          htmlsanitize.Sanitize(in.Instagram),
		Twitter:            htmlsanitize.Sanitize(in.Twitter),
	}

	created, err := h.Store.Create(ctx, card)
	if err != nil {
		if errors.Is(err, cardstore.ErrDuplicateCard) {
			// Lost the race against a concurrent create for the
			// same email; same outcome as the pre-check.
			writeError(w, http.StatusConflict, "A card with this email already exists")
			return
		}
		h.Log.Error("create card failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save card")
		return
	}

	h.Log.Info("card created",
		zap.String("email", created.EmailCI),
		zap.String("university", created.University))
	writeJSON(w, http.StatusCreated, created)
}

const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

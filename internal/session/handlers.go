package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/archimart/quote-api/internal/common"
	"github.com/archimart/quote-api/internal/quote"
)

// Handler wires the session service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate

	// OnCreated is called once per session created.
	OnCreated func()
	// OnQuoteComputed is called after a successful quote or patch preview,
	// with the selected configuration id (empty when none).
	OnQuoteComputed func(productID string, roundingApplied bool)
}

// Create starts a new session.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return
	}
	sess, err := h.Svc.Create(r.Context())
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to create session", nil)
		return
	}
	if h.OnCreated != nil {
		h.OnCreated()
	}
	common.JSON(w, http.StatusCreated, map[string]any{"data": sess})
}

// Get returns the session, including its raw input snapshot.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.load(w, r)
	if !ok {
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": sess})
}

// Patch applies a partial snapshot update and returns the updated session
// together with the freshly priced quote.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var payload SnapshotPatch
	if err := common.DecodeJSON(r, &payload); err != nil {
		common.WriteError(w, err)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid patch payload", validationDetails(err))
			return
		}
	}
	sess, err := h.Svc.Patch(r.Context(), id, payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	q, err := quote.Compute(quote.Normalize(sess.Snapshot), sess.QuoteNumber)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_STATE", "session contains values that cannot be priced", nil)
		return
	}
	h.notifyQuote(q)
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"session": sess,
		"quote":   q,
	}})
}

// Reset restores the default snapshot while keeping the quote number.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	sess, err := h.Svc.Reset(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": sess})
}

// Delete discards the session.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Quote prices the current snapshot.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	q, err := h.Svc.Quote(r.Context(), id)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidNumericState) {
			common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_STATE", "session contains values that cannot be priced", nil)
			return
		}
		h.writeError(w, err)
		return
	}
	h.notifyQuote(q)
	common.JSON(w, http.StatusOK, map[string]any{"data": q})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (Session, bool) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session service not configured", nil)
		return Session{}, false
	}
	id, ok := h.sessionID(w, r)
	if !ok {
		return Session{}, false
	}
	sess, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return Session{}, false
	}
	return sess, true
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid session id", nil)
		return "", false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "session not found", nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session store failure", nil)
}

func (h *Handler) notifyQuote(q quote.Quote) {
	if h.OnQuoteComputed == nil {
		return
	}
	h.OnQuoteComputed(q.ProductID, q.RoundingApplied)
}

func validationDetails(err error) any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return details
}

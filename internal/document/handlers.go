package document

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/archimart/quote-api/internal/common"
	"github.com/archimart/quote-api/internal/quote"
	"github.com/archimart/quote-api/internal/session"
)

// Handler serves the rendered quote document for a session.
type Handler struct {
	Sessions *session.Service
	Renderer *Renderer

	// OnRendered is called once per successfully generated document.
	OnRendered func()
}

// Download renders the session's quote as a PDF attachment. A configuration
// must be selected; drafts without one cannot produce a document.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	if h.Sessions == nil || h.Renderer == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "document renderer not configured", nil)
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid session id", nil)
		return
	}
	sess, err := h.Sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "session not found", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "session store failure", nil)
		return
	}
	q, err := quote.Compute(quote.Normalize(sess.Snapshot), sess.QuoteNumber)
	if err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "INVALID_STATE", "session contains values that cannot be priced", nil)
		return
	}
	if q.ProductID == "" {
		common.JSONError(w, http.StatusConflict, "CONFIG_REQUIRED", "select a configuration before generating a document", nil)
		return
	}
	data, err := h.Renderer.Render(q)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to render document", nil)
		return
	}
	if h.OnRendered != nil {
		h.OnRendered()
	}
	filename := Filename(sess.Snapshot.ProjectName, sess.QuoteNumber)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

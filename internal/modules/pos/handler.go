package pos

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Handler exposes POS HTTP endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/pos", func(r chi.Router) {
		r.Get("/", h.list)            // GET    /api/pos
		r.Post("/", h.create)         // POST   /api/pos
		r.Get("/filter", h.getByName) // GET    /api/pos/filter?name=
		r.Get("/{id}", h.get)         // GET    /api/pos/{id}
		r.Put("/{id}", h.update)      // PUT    /api/pos/{id}
	})
}

// RegisterAdminRoutes mounts test-support routes. The caller is expected to
// guard r with admin authentication.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Delete("/pos", h.clear) // DELETE /api/admin/pos
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, items)
}

// create accepts either a single POS object or an array of them and answers
// in the same shape.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	body = bytes.TrimSpace(body)
	batch := len(body) > 0 && body[0] == '['

	var (
		reqs []PosRequest
		err  error
	)
	if batch {
		err = json.Unmarshal(body, &reqs)
	} else {
		var req PosRequest
		err = json.Unmarshal(body, &req)
		reqs = []PosRequest{req}
	}
	if err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: "invalid JSON: " + err.Error()})
		return
	}

	items, err := h.service.Create(r.Context(), reqs)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if batch {
		respond(w, http.StatusCreated, items)
		return
	}
	respond(w, http.StatusCreated, items[0])
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond(w, http.StatusBadRequest, errorBody{Error: "query parameter name is required"})
		return
	}
	p, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	var req PosRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: "invalid JSON: " + err.Error()})
		return
	}
	p, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// readBody reads the whole request body, answering 413 when it exceeds
// maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond(w, http.StatusRequestEntityTooLarge, errorBody{Error: "request body too large"})
			return nil, false
		}
		respond(w, http.StatusBadRequest, errorBody{Error: "could not read request body"})
		return nil, false
	}
	return body, true
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: "invalid pos id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, ErrIDMismatch), errors.Is(err, ErrIDOnCreate), errors.Is(err, ErrEmptyBatch):
		respond(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		respond(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, ErrDuplicateName):
		respond(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		h.logger.Error("pos request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		respond(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

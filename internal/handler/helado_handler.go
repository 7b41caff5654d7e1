package handler

import (
	"errors"
	"net/http"

	"heladeria/internal/model"
	"heladeria/internal/service"

	"github.com/rs/zerolog"
)

// HeladoHandler handles helado-related HTTP requests.
type HeladoHandler struct {
	service service.HeladoService
	logger  zerolog.Logger
}

// NewHeladoHandler creates a new helado handler.
func NewHeladoHandler(service service.HeladoService, logger zerolog.Logger) *HeladoHandler {
	return &HeladoHandler{
		service: service,
		logger:  logger.With().Str("handler", "helado").Logger(),
	}
}

// log prefers the request-scoped logger attached by the middleware chain.
func (h *HeladoHandler) log(r *http.Request) zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("handler", "helado").Logger()
	}
	return h.logger
}

// Create handles POST /helados requests.
func (h *HeladoHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)

	req, err := decodeHelado(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	if err := h.service.Create(r.Context(), *req.Sabor, *req.Precio); err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	writeOK(w, []byte(MsgCreated))
}

// GetByID handles GET /helados/{id} requests.
func (h *HeladoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)

	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	helado, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrHeladoNotFound) {
			writeError(w, http.StatusNotFound, MsgReadNotFound, err, logger)
			return
		}
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	writeJSON(w, helado, logger)
}

// GetAll handles GET /helados requests.
func (h *HeladoHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)

	helados, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	writeJSON(w, helados, logger)
}

// Update handles PUT /helados/{id} requests.
func (h *HeladoHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)

	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	req, err := decodeHelado(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	if err := h.service.Update(r.Context(), id, *req.Sabor, *req.Precio); err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	writeOK(w, []byte(MsgUpdated))
}

// Delete handles DELETE /helados/{id} requests.
func (h *HeladoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)

	id, err := parseID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrHeladoNotFound) {
			writeError(w, http.StatusNotFound, MsgDeleteNotFound, err, logger)
			return
		}
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}

	writeOK(w, []byte(MsgDeleted))
}

// NotFound handles every request no route matched.
func (h *HeladoHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	err := model.NewDomainError(model.ErrCodeRouteNotMatched, r.Method+" "+r.URL.Path)
	writeError(w, http.StatusNotFound, MsgRouteNotFound, err, h.log(r))
}

// Health handles GET /health requests.
func (h *HeladoHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)
	if err := h.service.Ready(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}
	writeJSON(w, map[string]string{"status": "healthy"}, logger)
}

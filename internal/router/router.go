package router

import (
	"net/http"

	"heladeria/internal/handler"
	"heladeria/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
//
// Helado routes are path-prefix matches tried in registration order, so the
// "/helados/" prefixes must be registered before the bare "/helados" one for
// the same method. Anything unmatched, including a known prefix with an
// unsupported method, is answered as not found.
func New(heladoHandler *handler.HeladoHandler, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter().SkipClean(true)

	r.HandleFunc("/health", heladoHandler.Health).Methods(http.MethodGet)

	r.PathPrefix("/helados").Methods(http.MethodPost).HandlerFunc(heladoHandler.Create)
	r.PathPrefix("/helados/").Methods(http.MethodGet).HandlerFunc(heladoHandler.GetByID)
	r.PathPrefix("/helados").Methods(http.MethodGet).HandlerFunc(heladoHandler.GetAll)
	r.PathPrefix("/helados/").Methods(http.MethodPut).HandlerFunc(heladoHandler.Update)
	r.PathPrefix("/helados/").Methods(http.MethodDelete).HandlerFunc(heladoHandler.Delete)

	r.NotFoundHandler = http.HandlerFunc(heladoHandler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(heladoHandler.NotFound)

	// Apply middleware in order: Recovery -> RequestID -> Logging
	var h http.Handler = r
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

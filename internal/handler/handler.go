package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"heladeria/internal/model"

	"github.com/rs/zerolog"
)

// MaxBodyBytes caps the request body read by the create and update handlers.
const MaxBodyBytes = 1 << 20

// Static response bodies.
const (
	MsgCreated        = "Helado created"
	MsgUpdated        = "Helado updated"
	MsgDeleted        = "Helado deleted"
	MsgReadNotFound   = "helado not found"
	MsgDeleteNotFound = "Helado not found"
	MsgRouteNotFound  = "404 Not Found"
	MsgInternalError  = "Error"
)

// writeOK writes a 200 response declared as JSON. body is either a static
// message or an already-encoded JSON document.
func writeOK(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeJSON encodes data and writes it as a 200 response.
func writeJSON(w http.ResponseWriter, data interface{}, logger zerolog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, MsgInternalError, err, logger)
		return
	}
	writeOK(w, body)
}

// writeError writes a 404 or 500 response. Error paths declare no content type.
func writeError(w http.ResponseWriter, status int, message string, cause error, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(cause).Int("status", status).Str("code", errorCode(cause)).Msg("handler error")

	// A nil entry stops net/http from sniffing a content type.
	w.Header()["Content-Type"] = nil
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// errorCode maps an error to a diagnostic code for logs only.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return model.ErrCodeStoreFailure
}

// pathID extracts the identifier segment from a request path: the third
// "/"-separated segment, cut at the first whitespace. A missing segment yields "".
func pathID(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return ""
	}
	fields := strings.Fields(segments[2])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseID parses the path identifier as a 32-bit integer.
func parseID(path string) (int32, error) {
	id, err := strconv.ParseInt(pathID(path), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidID, err)
	}
	return int32(id), nil
}

// decodeHelado reads a helado payload from the request body. The body must be
// exactly one JSON object. Keys match case-sensitively and unknown keys are
// ignored; sabor and precio must be present strings, id an integer if set.
func decodeHelado(w http.ResponseWriter, r *http.Request) (*model.HeladoRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidBody, err)
	}

	// Unmarshal rejects trailing data after the object.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidBody, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is null", model.ErrInvalidBody)
	}

	var req model.HeladoRequest
	if raw, ok := fields["id"]; ok {
		if err := json.Unmarshal(raw, &req.ID); err != nil {
			return nil, fmt.Errorf("%w: id: %v", model.ErrInvalidBody, err)
		}
	}
	if req.Sabor, err = stringField(fields, "sabor"); err != nil {
		return nil, err
	}
	if req.Precio, err = stringField(fields, "precio"); err != nil {
		return nil, err
	}
	return &req, nil
}

// stringField decodes a required string member of a JSON object.
func stringField(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, fmt.Errorf("%w: %s", model.ErrMissingField, key)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrInvalidBody, key, err)
	}
	return &value, nil
}

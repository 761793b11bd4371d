package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"vantage/internal/domain"
)

type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain taxonomy onto status codes. Upstream detail is
// logged, not leaked; permission failures keep their own status so the UI
// can say something more useful than "database error".
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	var uerr *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "record not found"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "permission denied by data store"})
	case errors.As(err, &uerr):
		log.Error("upstream failure", "op", uerr.Op, "error", uerr.Err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "data store unavailable"})
	default:
		log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/FBenja/fleet-api/internal/app/apperr"
)

// msgResponse is the single-message error body: {"msg": "..."}.
type msgResponse struct {
	Msg string `json:"msg"`
}

// fieldErrorsResponse is the field-level error body: {"errors":[{"msg","field"}]}.
type fieldErrorsResponse struct {
	Errors []fieldErrorBody `json:"errors"`
}

type fieldErrorBody struct {
	Msg   string `json:"msg"`
	Field string `json:"field"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, msgResponse{Msg: msg})
}

// writeError translates application errors to HTTP exactly once. Unexpected
// errors are logged with the request id and surface as a generic 500; internals
// never reach the caller.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if len(ae.Fields) > 0 {
			out := fieldErrorsResponse{Errors: make([]fieldErrorBody, 0, len(ae.Fields))}
			for _, f := range ae.Fields {
				out.Errors = append(out.Errors, fieldErrorBody{Msg: f.Message, Field: f.Field})
			}
			writeJSON(w, ae.Status, out)
			return
		}
		writeMsg(w, ae.Status, ae.Message)
		return
	}

	s.log.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	writeMsg(w, http.StatusInternalServerError, "internal server error")
}

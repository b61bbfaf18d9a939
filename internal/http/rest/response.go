package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
)

type ServerResponse struct {
	Err        error       `json:"-"`
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data"`
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	attrs := []any{"status", status, "error", err}
	if tc != nil {
		attrs = append(attrs, "request_id", tc.RequestID, "request_source", tc.RequestSource)
	}
	if util.StatusCode(status) >= http.StatusInternalServerError {
		slog.Error(message, attrs...)
	} else {
		slog.Info(message, attrs...)
	}

	return &ServerResponse{
		Err:        err,
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

// errorStatus picks the response status for a domain error.
func errorStatus(err error) string {
	switch {
	case errors.Is(err, model.ErrActivityNotFound),
		errors.Is(err, model.ErrRoomNotFound),
		errors.Is(err, model.ErrNotFound):
		return values.NotFound
	case errors.Is(err, model.ErrValidation):
		return values.BadRequestBody
	default:
		return values.Error
	}
}

func writeJSONResponse(w http.ResponseWriter, content []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(content); err != nil {
		slog.Error("unable to write json response", "error", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	resp := ServerResponse{
		Err:        err,
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	content, mErr := json.Marshal(resp)
	if mErr != nil {
		content = []byte(`{"message":"internal error","status":"error"}`)
	}
	slog.Warn(message, "status", status, "error", err)
	writeJSONResponse(w, content, resp.StatusCode)
}

package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-calculator/internal/api"
	"github.com/DanielPopoola/ficmart-calculator/internal/application"
)

const internalErrorMessage = "An internal error occurred"

// WriteError maps application errors to HTTP responses. Client errors carry
// their own message; server errors are logged and rendered generically.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	message := err.Error()

	if svcErr, ok := application.IsServiceError(err); ok {
		message = svcErr.Message
	}

	if statusCode >= http.StatusInternalServerError {
		if logger != nil {
			logger.Error("request failed",
				"status", statusCode,
				"code", application.ToErrorCode(err),
				"error", err,
			)
		}
		if _, ok := application.IsServiceError(err); !ok {
			message = internalErrorMessage
		}
	}

	WriteJSON(w, statusCode, api.ErrorResponse{Error: message})
}

// WriteJSON writes body as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

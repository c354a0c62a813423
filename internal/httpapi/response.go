package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mesh-intelligence/recipebox/internal/images"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// writeJSON writes data as a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes {"error": message}.
func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, map[string]string{"error": message}, logger)
}

// badRequestErrors are caller mistakes; everything else but a missing
// position or image is a server fault.
var badRequestErrors = []error{
	types.ErrInvalidTitle,
	types.ErrInvalidCategory,
	types.ErrImageRequired,
	types.ErrUnsupportedImage,
	types.ErrInvalidPageSize,
	types.ErrEmptySearch,
}

// statusFor maps a catalog error onto an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, types.ErrIndexOutOfRange) || errors.Is(err, images.ErrNoImage) {
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// writeCatalogError logs server faults and answers with the mapped status.
// Server faults hide their cause from the client.
func writeCatalogError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("catalog operation failed", "error", err)
		writeError(w, status, "Internal server error", logger)
		return
	}
	writeError(w, status, err.Error(), logger)
}

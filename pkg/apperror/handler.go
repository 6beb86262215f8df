package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// WriteJSON writes err as {"error":{"code","message"}} and returns the status.
// 5xx errors are logged at error level.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) int {
	code, body := ToHTTPError(err)

	if code >= 500 {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return code
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
	return code
}

// WantsJSON reports whether the client asked for a JSON error body.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

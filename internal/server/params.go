package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/desertthunder/contenthub/internal/models"
	"github.com/desertthunder/contenthub/internal/shared"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// intParam parses a non-negative integer parameter; absent is 0.
func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", shared.ErrInvalidArgument, name)
	}
	return n, nil
}

// boolParam parses an optional boolean parameter; absent is nil.
func boolParam(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", shared.ErrInvalidArgument, name)
	}
	return &b, nil
}

func audienceParam(q url.Values, name string) (models.AudienceLevel, error) {
	a, err := models.ParseAudience(q.Get(name))
	if err != nil {
		return "", fmt.Errorf("%w: %w", shared.ErrInvalidArgument, err)
	}
	return a, nil
}

func contentTypeParam(q url.Values, name string) (models.ContentType, error) {
	t := models.ContentType(q.Get(name))
	if t != "" && !t.Valid() {
		return "", fmt.Errorf("%w: unknown content type %q", shared.ErrInvalidArgument, t)
	}
	return t, nil
}

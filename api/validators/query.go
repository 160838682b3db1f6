package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/brewtrack/brewery-backend/pkg/errors"
)

// ParseOptionalInt returns nil when the parameter is absent or blank, so
// callers can tell "not supplied" apart from an explicit zero.
func ParseOptionalInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// ParseQueryBool treats anything other than a parseable boolean as the
// fallback rather than rejecting the request.
func ParseQueryBool(r *http.Request, key string, defaultVal bool) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return value
}

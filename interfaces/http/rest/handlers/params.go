// Package handlers translates HTTP requests into commands and queries
// and shapes bus results into API responses.
package handlers

import (
	"net/http"
	"strconv"
)

// queryInt reads an integer query parameter, returning 0 when absent
// or malformed. Range validation happens on the query struct.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// queryBoolPtr reads a tri-state boolean query parameter. Absence means
// "no filter"; any value other than a parseable bool is treated as absent.
func queryBoolPtr(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryBool reads a boolean query parameter defaulting to false.
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false
	}
	return v
}

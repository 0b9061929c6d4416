package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes a JSON request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON response with statusCode.
//
// Sync state changes between requests, so responses are marked
// "Cache-Control: no-store" for UI shells that sit behind a webview cache.
// When data cannot be encoded the response is a plain 500 and the encoding
// error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	_, err = w.Write(append(body, '\n'))
	return err
}

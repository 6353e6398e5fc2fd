package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.ProcessResponse{Status: "error", Message: "No file part"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAttachment writes content as a downloadable attachment named
// downloadName with status 200.
func WriteAttachment(w http.ResponseWriter, content []byte, contentType, downloadName string) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	w.WriteHeader(http.StatusOK)

	return w.Write(content)
}

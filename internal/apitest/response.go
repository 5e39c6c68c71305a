package apitest

import (
	"encoding/json"
	"net/http"

	"github.com/cinevo/cinevo-cli/pkg/model"
)

// respondOK writes a success envelope.
func respondOK(w http.ResponseWriter, results any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"results": results,
	})
}

// respondList writes a success envelope with pagination.
func respondList(w http.ResponseWriter, results any, pageInfo *model.PageInfo) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"results":  results,
		"pageInfo": pageInfo,
	})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

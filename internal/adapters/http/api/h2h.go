package api

import (
	"net/http"
	"strings"

	"github.com/okian/dugout/internal/domain/h2h"
)

type h2hResponse struct {
	Matrix map[string]map[string]h2h.Record `json:"matrix"`
}

// handleH2H handles GET /api/h2h. The optional manager query narrows
// the response to a single manager's row.
func (s *Server) handleH2H(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	matrix, err := s.store.H2H(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if manager := strings.TrimSpace(r.URL.Query().Get("manager")); manager != "" {
		row, ok := matrix[manager]
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", ErrUnknownManager)
			return
		}
		matrix = map[string]map[string]h2h.Record{manager: row}
	}

	writeJSON(w, http.StatusOK, h2hResponse{Matrix: matrix})
}

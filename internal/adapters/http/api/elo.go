package api

import (
	"net/http"

	"github.com/okian/dugout/internal/domain/model"
)

type eloResponse struct {
	Ratings []model.EloRating `json:"ratings"`
}

// handleElo handles GET /api/elo and returns the full week-by-week
// rating series for the season.
func (s *Server) handleElo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	ratings, err := s.store.Elo(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eloResponse{Ratings: ratings})
}

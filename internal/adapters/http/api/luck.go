package api

import (
	"net/http"

	"github.com/okian/dugout/internal/domain/model"
)

type luckResponse struct {
	Week int              `json:"week"`
	Rows []model.LuckLine `json:"rows"`
}

// handleLuck handles GET /api/luck. Same week selection rules as the
// power rankings endpoint.
func (s *Server) handleLuck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	ctx := r.Context()

	week, ok, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if !ok {
		week, err = s.store.LatestWeek(ctx)
		if err != nil {
			writeStoreError(w, err)
			return
		}
	}

	rows, err := s.store.Luck(ctx, week)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, luckResponse{Week: week, Rows: rows})
}

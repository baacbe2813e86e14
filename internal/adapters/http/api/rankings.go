package api

import (
	"net/http"
	"strconv"

	"github.com/okian/dugout/internal/domain/model"
)

// powerRankingsResponse mirrors the shape of GET /api/power-rankings.
type powerRankingsResponse struct {
	Week int                    `json:"week"`
	Rows []model.CompositeScore `json:"rows"`
}

// handlePowerRankings handles GET /api/power-rankings. The optional
// week query selects a specific week; the default is the latest
// computed one.
func (s *Server) handlePowerRankings(w http.ResponseWriter, r *http.Request) {
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

	rows, err := s.store.Composite(ctx, week)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, powerRankingsResponse{Week: week, Rows: rows})
}

// weekParam parses the optional week query parameter.
func weekParam(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return 0, false, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 {
		return 0, false, ErrBadWeek
	}
	return week, true, nil
}

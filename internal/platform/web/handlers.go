package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/omega-arcade/internal/registry"
	"github.com/vovakirdan/omega-arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// GameResponse describes a registered game and its aggregate stats.
type GameResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Runs       int     `json:"runs"`
	HighScore  int     `json:"high_score"`
	AvgScore   float64 `json:"avg_score"`
	LastPlayed string  `json:"last_played,omitempty"`
}

// RunResponse is the public view of a stored run.
type RunResponse struct {
	RunID      string `json:"run_id"`
	GameID     string `json:"game_id"`
	Player     string `json:"player"`
	Score      int    `json:"score"`
	HighScore  int    `json:"high_score"`
	Frames     int64  `json:"frames"`
	DurationMS int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

// HighScoreResponse is returned by GET /api/v1/games/{gameID}/highscore.
type HighScoreResponse struct {
	GameID    string `json:"game_id"`
	HighScore int    `json:"high_score"`
}

func newRunResponse(r storage.Run) RunResponse {
	return RunResponse{
		RunID:      r.RunID,
		GameID:     r.GameID,
		Player:     r.Player,
		Score:      r.Score,
		HighScore:  r.HighScore,
		Frames:     r.Frames,
		DurationMS: r.Duration.Milliseconds(),
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newRunResponses(runs []storage.Run) []RunResponse {
	out := make([]RunResponse, len(runs))
	for i, r := range runs {
		out[i] = newRunResponse(r)
	}
	return out
}

func newGameResponse(info registry.GameInfo, stats *storage.GameStats) GameResponse {
	g := GameResponse{
		ID:        info.ID,
		Title:     info.Title,
		Runs:      stats.RunsCount,
		HighScore: stats.HighScore,
		AvgScore:  stats.AvgScore,
	}
	if !stats.LastPlayed.IsZero() {
		g.LastPlayed = stats.LastPlayed.UTC().Format(time.RFC3339)
	}
	return g
}

// parseLimit reads ?limit=, defaulting to defaultLimit. ok is false when
// the value is present but not in [1, maxLimit].
func parseLimit(r *http.Request) (limit int, ok bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		return 0, false
	}
	return n, true
}

// requireGame rejects requests for games that are not registered.
func (s *Server) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !registry.Exists(chi.URLParam(r, "gameID")) {
			s.writeError(w, r, http.StatusNotFound, "unknown game")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]GameResponse, 0, len(games))
	for _, info := range games {
		stats, err := s.store.GetGameStats(info.ID)
		if err != nil {
			s.logger.Error("cannot load game stats", "game", info.ID, "error", err)
			s.writeError(w, r, http.StatusInternalServerError, "cannot load game stats")
			return
		}
		out = append(out, newGameResponse(info, stats))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTopRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	runs, err := s.store.TopRuns(chi.URLParam(r, "gameID"), limit)
	if err != nil {
		s.logger.Error("cannot load runs", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load runs")
		return
	}
	s.writeJSON(w, http.StatusOK, newRunResponses(runs))
}

func (s *Server) handleHighScore(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	score, err := s.store.HighScore(gameID)
	if err != nil {
		s.logger.Error("cannot load high score", "game", gameID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load high score")
		return
	}
	s.writeJSON(w, http.StatusOK, HighScoreResponse{GameID: gameID, HighScore: score})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.logger.Error("cannot load game stats", "game", gameID, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load game stats")
		return
	}

	info := registry.GameInfo{ID: gameID}
	for _, g := range registry.List() {
		if g.ID == gameID {
			info = g
		}
	}
	s.writeJSON(w, http.StatusOK, newGameResponse(info, stats))
}

func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		s.logger.Error("cannot load runs", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load runs")
		return
	}
	s.writeJSON(w, http.StatusOK, newRunResponses(runs))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.RunByID(chi.URLParam(r, "runID"))
	if err != nil {
		s.logger.Error("cannot load run", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "cannot load run")
		return
	}
	if run == nil {
		s.writeError(w, r, http.StatusNotFound, "run not found")
		return
	}
	s.writeJSON(w, http.StatusOK, newRunResponse(*run))
}

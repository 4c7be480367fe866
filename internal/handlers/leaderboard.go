package handlers

import (
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/tombcrawler/tombcrawler-server/internal/repository"
)

type LeaderboardHandler struct {
	logger *logrus.Logger
	repo   *repository.Queries
}

func NewLeaderboardHandler(logger *logrus.Logger, db *pgxpool.Pool) *LeaderboardHandler {
	return &LeaderboardHandler{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (l LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.LeaderboardFilter
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if idStr := query.Get("puzzle_id"); idStr != "" {
		puzzleId, err := strconv.Atoi(idStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.PuzzleId = &puzzleId
	}

	entries, err := l.repo.GetLeaderboard(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		l.logger.WithError(err).Error("unable to fetch leaderboard")
		return
	}

	sendJSONOrLog(w, l.logger, entries)
}

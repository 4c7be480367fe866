package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/tombcrawler/tombcrawler-server/internal/dungeon"
	"github.com/tombcrawler/tombcrawler-server/internal/repository"
)

type PuzzleHandler struct {
	logger *logrus.Logger
	repo   *repository.Queries
}

func NewPuzzleHandler(logger *logrus.Logger, db *pgxpool.Pool) *PuzzleHandler {
	return &PuzzleHandler{
		logger: logger,
		repo:   repository.New(db),
	}
}

// maxPuzzleSize caps uploaded level definitions.
const maxPuzzleSize = 64 * 1024

// Create accepts a level definition as the raw request body, validates it
// and stores it verbatim.
func (p PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPuzzleSize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	level, err := dungeon.ParseLevel(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, p.logger, wrapError(err))
		return
	}

	puzzle, err := p.repo.CreatePuzzle(r.Context(), repository.CreatePuzzleParams{
		Title:      level.Title,
		Width:      level.Puzzle.Width,
		Height:     level.Puzzle.Height,
		Definition: string(body),
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		p.logger.WithError(err).Error("unable to insert puzzle")
		return
	}

	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, p.logger, NewPuzzleDTO(puzzle))
}

func (p PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	puzzleId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	puzzle, err := p.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		p.logger.WithError(err).Error("unable to fetch puzzle from db")
		return
	}

	sendJSONOrLog(w, p.logger, NewPuzzleDTO(puzzle))
}

func (p PuzzleHandler) List(w http.ResponseWriter, r *http.Request) {
	puzzles, err := p.repo.ListPuzzles(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		p.logger.WithError(err).Error("unable to list puzzles")
		return
	}

	dtos := make([]*PuzzleDTO, 0, len(puzzles))
	for i := range puzzles {
		dtos = append(dtos, NewPuzzleDTO(&puzzles[i]))
	}
	sendJSONOrLog(w, p.logger, dtos)
}

type PuzzleDTO struct {
	PuzzleId   int    `json:"puzzle_id"`
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Definition string `json:"definition"`
}

func NewPuzzleDTO(puzzle *repository.Puzzle) *PuzzleDTO {
	return &PuzzleDTO{
		PuzzleId:   puzzle.PuzzleId,
		Title:      puzzle.Title,
		Width:      puzzle.Width,
		Height:     puzzle.Height,
		Definition: puzzle.Definition,
	}
}

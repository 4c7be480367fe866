package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/tombcrawler/tombcrawler-server/internal/config"
	"github.com/tombcrawler/tombcrawler-server/internal/dungeon"
	"github.com/tombcrawler/tombcrawler-server/internal/middleware"
	"github.com/tombcrawler/tombcrawler-server/internal/repository"
)

type GameHandler struct {
	logger  *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
}

func NewGameHandler(
	logger *logrus.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	puzzle, err := g.repo.FetchPuzzle(r.Context(), dto.PuzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to fetch puzzle from db")
		return
	}

	level, err := dungeon.ParseLevel(puzzle.Definition)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("db returned invalid puzzle.definition")
		return
	}

	game := dungeon.NewGameState(*level)

	params := repository.CreateGameSessionParams{PuzzleId: puzzle.PuzzleId}
	claims, loggedIn := middleware.PlayerClaims(r.Context())
	if loggedIn {
		g.logger.WithField("username", claims.Username).
			Debug("creating player session")
		playerId := int(claims.PlayerId)
		params.PlayerId = &playerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to create game session")
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.PuzzleId,
		session.StartedAt, session.EndedAt, game, nil,
	))
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *dungeon.GameState, bool) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to fetch session from db")
		return nil, nil, false
	}

	game, err := dungeon.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	return session, game, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.PuzzleId,
		session.StartedAt, session.EndedAt, game, nil,
	))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt.Valid {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(
			errors.New("game session has ended"),
		))
		return
	}

	switch move {
	case MarkWall:
		err = game.ToggleWall(pos.X, pos.Y)
	case MarkFloor:
		err = game.ToggleFloor(pos.X, pos.Y)
	case ClearCell:
		err = game.ClearCell(pos.X, pos.Y)
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	fail := game.Check()

	encoded, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to serialize game state")
		return
	}

	params := repository.UpdateGameSessionParams{
		Solved: &game.Solved,
		State:  &encoded,
	}
	if game.Solved {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	session, err = g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to update session in db")
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.PuzzleId,
		session.StartedAt, session.EndedAt, game, fail,
	))
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	params := repository.UpdateGameSessionParams{}
	if !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt

		session, ok = g.updateSession(w, r, session.GameSessionId, params)
		if !ok {
			return
		}
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionId, session.PuzzleId,
		session.StartedAt, session.EndedAt, game, nil,
	))
}

func (g GameHandler) updateSession(
	w http.ResponseWriter, r *http.Request,
	gameSessionId int, params repository.UpdateGameSessionParams,
) (*repository.GameSession, bool) {
	session, err := g.repo.UpdateGameSession(r.Context(), gameSessionId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to update session in db")
		return nil, false
	}
	return session, true
}

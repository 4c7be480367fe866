package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"

	"github.com/tombcrawler/tombcrawler-server/internal/dungeon"
	"github.com/tombcrawler/tombcrawler-server/internal/repository"
)

type wsCommand string

const (
	wsNoop  wsCommand = "g"
	wsWall  wsCommand = "w"
	wsFloor wsCommand = "e"
	wsClear wsCommand = "c"
)

type gameExecutor struct {
	*GameHandler
	*dungeon.GameState
	session *repository.GameSession
}

var errSessionEnded = errors.New("game session has ended")

func (game gameExecutor) markWall(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	return game.ToggleWall(x, y)
}

func (game gameExecutor) markFloor(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	return game.ToggleFloor(x, y)
}

func (game gameExecutor) clearCell(args []string) error {
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}
	return game.ClearCell(x, y)
}

func (game gameExecutor) execute(query string) error {
	tokens := strings.Split(query, " ")
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	if cmd != wsNoop && game.session.EndedAt.Valid {
		return errSessionEnded
	}
	switch cmd {
	case wsNoop:
		return nil
	case wsWall:
		return game.markWall(args)
	case wsFloor:
		return game.markFloor(args)
	case wsClear:
		return game.clearCell(args)
	default:
		return fmt.Errorf("unknown command")
	}
}

func (game *gameExecutor) wsRunGameLoop(
	ctx context.Context, conn *websocket.Conn,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		lines := strings.Split(message, "\n")
		var fail *dungeon.Failure
	LINES:
		for _, line := range lines {
			err := game.execute(strings.TrimSpace(line))
			if err != nil {
				return err
			}
			fail = game.Check()
			if game.Solved {
				game.session.EndedAt.Time = time.Now().UTC()
				game.session.EndedAt.Valid = true
				break LINES
			}
		}

		stateBuf, err := game.Bytes()
		if err != nil {
			return fmt.Errorf("unable to serialize game state: %w", err)
		}

		params := repository.UpdateGameSessionParams{
			State:  &stateBuf,
			Solved: &game.Solved,
		}
		if game.session.EndedAt.Valid {
			params.EndedAt = &game.session.EndedAt.Time
		}

		game.session, err = game.repo.UpdateGameSession(
			ctx, game.session.GameSessionId, params,
		)
		if err != nil {
			return fmt.Errorf("unable to update session in db: %w", err)
		}

		dto := NewGameSessionDTO(
			game.session.GameSessionId, game.session.PuzzleId,
			game.session.StartedAt, game.session.EndedAt, game.GameState, fail,
		)
		if err := conn.WriteJSON(dto); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("could not fetch session from db")
		return
	}

	state, err := dungeon.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("db returned invalid game_session.state")
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection")

	game := gameExecutor{&g, state, session}
	if err := game.wsRunGameLoop(r.Context(), conn); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			g.logger.WithError(err).Warn("error in ws loop")
		}
	}
}

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

package dungeon

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Marking is the player's annotation on one cell. Floor is a "known free"
// note for the player's own benefit; only Wall affects legality.
type Marking int8

const (
	Unmarked Marking = iota
	Wall
	Floor
)

func (m Marking) String() string {
	switch m {
	case Wall:
		return "#"
	case Floor:
		return "*"
	default:
		return " "
	}
}

// GameState is one play-through of a level: the puzzle plus the player's
// markings and the verdict after the latest move. It is gob-serializable
// for session storage.
type GameState struct {
	Level
	Markings []Marking
	Solved   bool
}

func NewGameState(level Level) *GameState {
	return &GameState{
		Level:    level,
		Markings: make([]Marking, level.Puzzle.Width*level.Puzzle.Height),
	}
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g *GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(g)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *GameState) ValidatePosition(x, y int) bool {
	return g.Puzzle.InBounds(Coord{x, y})
}

func (g *GameState) MarkingAt(c Coord) Marking {
	return g.Markings[c.Y*g.Puzzle.Width+c.X]
}

func (g *GameState) setMarking(c Coord, m Marking) {
	g.Markings[c.Y*g.Puzzle.Width+c.X] = m
}

// GameState implements [Solution] so the checker can read the markings
// in place.
func (g *GameState) IsWall(c Coord) bool {
	if !g.Puzzle.InBounds(c) {
		return false
	}
	return g.MarkingAt(c) == Wall
}

// ToggleWall flips a cell between wall and unmarked. Fixed-tile cells
// cannot be marked.
func (g *GameState) ToggleWall(x, y int) error {
	return g.toggle(x, y, Wall)
}

// ToggleFloor flips a cell between the known-floor note and unmarked.
func (g *GameState) ToggleFloor(x, y int) error {
	return g.toggle(x, y, Floor)
}

// ClearCell removes any marking from a cell.
func (g *GameState) ClearCell(x, y int) error {
	c := Coord{x, y}
	if !g.Puzzle.InBounds(c) {
		return fmt.Errorf("cell %s is out of bounds", c)
	}
	if _, fixed := g.Puzzle.TileAt(c); fixed {
		return fmt.Errorf("cell %s holds a fixed tile", c)
	}
	g.setMarking(c, Unmarked)
	return nil
}

func (g *GameState) toggle(x, y int, m Marking) error {
	c := Coord{x, y}
	if !g.Puzzle.InBounds(c) {
		return fmt.Errorf("cell %s is out of bounds", c)
	}
	if _, fixed := g.Puzzle.TileAt(c); fixed {
		return fmt.Errorf("cell %s holds a fixed tile", c)
	}
	if g.MarkingAt(c) == m {
		g.setMarking(c, Unmarked)
	} else {
		g.setMarking(c, m)
	}
	return nil
}

// Check re-validates the whole board from scratch, updates the solved flag,
// and returns the failure, if any. Called after every move; validation
// keeps no state between calls.
func (g *GameState) Check() *Failure {
	fail := CheckSolution(&g.Puzzle, g)
	g.Solved = fail == nil
	return fail
}

// WallCounts tallies placed walls per column and per row. The counts color
// the hint digits in a client; they are feedback, not a legality rule.
func (g *GameState) WallCounts() (cols []int, rows []int) {
	cols = make([]int, g.Puzzle.Width)
	rows = make([]int, g.Puzzle.Height)
	for y := 0; y < g.Puzzle.Height; y++ {
		for x := 0; x < g.Puzzle.Width; x++ {
			if g.MarkingAt(Coord{x, y}) == Wall {
				cols[x]++
				rows[y]++
			}
		}
	}
	return cols, rows
}

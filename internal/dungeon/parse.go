package dungeon

import (
	"fmt"
	"strings"
)

// ParseLevel reads a level in the .ttc text format:
//
//	Tomb of the First King
//	any number of comment lines
//	---
//	 52125
//	5.....
//	2.....
//	2..$..
//	2.....
//	4.....
//	0@...@
//
// The first line is the title. Everything before the "---" separator is
// ignored. The hint row starts with a space (the empty corner) followed by
// one digit per column; each board row starts with its side hint digit
// followed by one tile character per column: '@' monster, '$' treasure
// chest, '.' floor.
func ParseLevel(input string) (*Level, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty level definition")
	}

	title := strings.TrimSpace(lines[0])
	if title == "" {
		return nil, fmt.Errorf("line 1: missing title")
	}

	sep := -1
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "---") {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, fmt.Errorf("missing --- separator")
	}

	body := lines[sep+1:]
	lineno := func(i int) int { return sep + 2 + i }

	// Hint row: a space for the corner, then a digit per column.
	hintIdx := -1
	for i, line := range body {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, " ") {
			return nil, fmt.Errorf("line %d: top hint row must start with a space", lineno(i))
		}
		hintIdx = i
		break
	}
	if hintIdx < 0 {
		return nil, fmt.Errorf("missing top hint row")
	}

	var topHints []uint8
	for col, r := range strings.TrimRight(body[hintIdx][1:], " \t") {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("line %d: bad top hint %q in column %d", lineno(hintIdx), r, col)
		}
		topHints = append(topHints, uint8(r-'0'))
	}
	width := len(topHints)
	if width < 1 {
		return nil, fmt.Errorf("line %d: empty top hint row", lineno(hintIdx))
	}

	puzzle := Puzzle{
		Width:    width,
		Tiles:    make(map[Coord]Tile),
		TopHints: topHints,
	}

	for i := hintIdx + 1; i < len(body); i++ {
		line := strings.TrimRight(body[i], " \t")
		if line == "" {
			continue
		}
		y := len(puzzle.SideHints)
		hint := line[0]
		if hint < '0' || hint > '9' {
			return nil, fmt.Errorf("line %d: row must start with a hint digit", lineno(i))
		}
		cells := line[1:]
		if len(cells) != width {
			return nil, fmt.Errorf(
				"line %d: row has %d cells, want %d", lineno(i), len(cells), width,
			)
		}
		for x, r := range cells {
			switch r {
			case '@':
				puzzle.Tiles[Coord{x, y}] = Monster
			case '$':
				puzzle.Tiles[Coord{x, y}] = TreasureChest
			case '.':
			default:
				return nil, fmt.Errorf("line %d: bad tile %q at column %d", lineno(i), r, x)
			}
		}
		puzzle.SideHints = append(puzzle.SideHints, hint-'0')
	}

	puzzle.Height = len(puzzle.SideHints)
	if puzzle.Height < 1 {
		return nil, fmt.Errorf("level has no board rows")
	}

	return &Level{Title: title, Puzzle: puzzle}, nil
}

package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Maze owns its rectangular cell grid, the entrance coordinate, and the
// exit set. It is constructed once per puzzle and reused across solves;
// only hollow contents and visited markers change between calls.
type Maze struct {
	rows, cols int
	grid       [][]Cell
	entrance   Position
	exits      []Position
}

// Parse validates a layout and builds a Maze from it.
// Validation order: grid shape, then tile legality, then structural
// requirements (exactly one entrance, at least one exit, at least one
// hollow). All failures are construction-time and fatal.
// Every 'S' cell receives its own freshly generated spooky cache; all 'M'
// cells are linked to a single shared mystical pool stocked once.
// Complexity: O(R×C) plus O(h·n log n) hollow construction.
func Parse(lines []string, opts ...ParseOption) (*Maze, error) {
	cfg := DefaultParseOptions()
	var fn ParseOption
	for _, fn = range opts {
		fn(&cfg)
	}
	if cfg.Gen == nil {
		gen, err := treasure.NewGenerator()
		if err != nil {
			return nil, fmt.Errorf("maze: default generator: %w", err)
		}
		cfg.Gen = gen
	}

	// 1. Shape checks.
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(line), cols, ErrNonRectangular)
		}
	}

	// 2. Build cells, recording structure as we scan.
	m := &Maze{rows: rows, cols: cols, grid: make([][]Cell, rows)}
	var (
		entrances   int
		hollowTiles int
		mystical    *hollow.Mystical
	)
	for r, line := range lines {
		m.grid[r] = make([]Cell, cols)
		for c, tile := range []byte(line) {
			pos := Position{Row: r, Col: c}
			cell := Cell{Pos: pos, Kind: Open}
			switch rune(tile) {
			case TileOpen:
			case TileWall:
				cell.Kind = Wall
			case TileEntrance:
				cell.Kind = Entrance
				m.entrance = pos
				entrances++
			case TileExit:
				cell.Kind = Exit
				m.exits = append(m.exits, pos)
			case TileSpooky:
				sp, err := hollow.NewSpooky(cfg.Gen.GenerateN(cfg.TreasuresPerHollow))
				if err != nil {
					return nil, fmt.Errorf("maze: cell %v: %w", pos, err)
				}
				cell.Kind = HollowSite
				cell.Hollow = sp
				hollowTiles++
			case TileMystical:
				// One pool for the whole maze, stocked on first sight;
				// later cells share it by reference.
				if mystical == nil {
					mystical = hollow.NewMystical(cfg.Gen.GenerateN(cfg.TreasuresPerHollow))
				}
				cell.Kind = HollowSite
				cell.Hollow = mystical
				hollowTiles++
			default:
				return nil, fmt.Errorf("tile %q at %v: %w", tile, pos, ErrUnknownTile)
			}
			m.grid[r][c] = cell
		}
	}

	// 3. Structural requirements.
	switch {
	case entrances == 0:
		return nil, ErrNoEntrance
	case entrances > 1:
		return nil, ErrMultipleEntrances
	case len(m.exits) == 0:
		return nil, ErrNoExit
	case hollowTiles == 0:
		return nil, ErrNoHollow
	}

	return m, nil
}

// Load reads a layout from r, one row per line, and parses it.
// Trailing carriage returns are stripped; blank trailing lines are ignored.
func Load(r io.Reader, opts ...ParseOption) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read layout: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines, opts...)
}

// LoadFile reads and parses the layout file at path.
func LoadFile(path string, opts ...ParseOption) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open layout: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Rows reports the grid height. Complexity: O(1).
func (m *Maze) Rows() int { return m.rows }

// Cols reports the grid width. Complexity: O(1).
func (m *Maze) Cols() int { return m.cols }

// Entrance reports the unique start coordinate.
func (m *Maze) Entrance() Position { return m.entrance }

// Exits reports the exit coordinates in scan order.
func (m *Maze) Exits() []Position { return m.exits }

// InBounds reports whether p lies within the grid. Complexity: O(1).
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// At returns the cell at p, or ok=false when p is out of bounds.
func (m *Maze) At(p Position) (*Cell, bool) {
	if !m.InBounds(p) {
		return nil, false
	}

	return &m.grid[p.Row][p.Col], true
}

// String renders the grid with the layout symbol set, one row per line.
// Hollow cells keep their variant symbol even after depletion.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.cols + 1) * m.rows)
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < m.cols; c++ {
			b.WriteRune(m.grid[r][c].symbol())
		}
	}

	return b.String()
}

// symbol maps a cell back to its layout rune.
func (c *Cell) symbol() rune {
	switch c.Kind {
	case Wall:
		return TileWall
	case Entrance:
		return TileEntrance
	case Exit:
		return TileExit
	case HollowSite:
		if c.Hollow != nil && c.Hollow.Kind() == hollow.MysticalKind {
			return TileMystical
		}
		return TileSpooky
	default:
		return TileOpen
	}
}

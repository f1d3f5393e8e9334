package domain

import (
    "errors"
    "fmt"
)

// MinBoardSize is the smallest accepted width and height.
const MinBoardSize = 10

// stoneRows is how many rows each side starts with.
const stoneRows = 4

// ErrBoardTooSmall is matched by every ConfigError.
var ErrBoardTooSmall = errors.New("board too small")

// ConfigError reports a board dimension below MinBoardSize.
type ConfigError struct {
    Field string
    Value int
}

func (e *ConfigError) Error() string {
    return fmt.Sprintf("%s should at minimum be %d, got %d", e.Field, MinBoardSize, e.Value)
}

func (e *ConfigError) Is(target error) bool { return target == ErrBoardTooSmall }

// Board is a width x height grid stored row-major.
type Board struct {
    Width  int
    Height int
    cells  []Cell
}

// NewBoard returns a board with both sides in their starting rows.
func NewBoard(width, height int) (*Board, error) {
    if width < MinBoardSize {
        return nil, &ConfigError{Field: "width", Value: width}
    }
    if height < MinBoardSize {
        return nil, &ConfigError{Field: "height", Value: height}
    }
    b := &Board{Width: width, Height: height, cells: make([]Cell, width*height)}
    for y := 0; y < height; y++ {
        for x := 0; x < width; x++ {
            if !isDark(x, y) {
                b.Set(x, y, EmptyLight)
                continue
            }
            switch {
            case y < stoneRows:
                b.Set(x, y, FilledDarkBlack)
            case y >= height-stoneRows:
                b.Set(x, y, FilledDarkWhite)
            default:
                b.Set(x, y, EmptyDark)
            }
        }
    }
    return b, nil
}

// isDark: even rows are dark on odd columns, odd rows on even columns.
func isDark(x, y int) bool { return (x+y)%2 == 1 }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
    return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at column x, row y, or None when off the board.
func (b *Board) At(x, y int) Cell {
    if !b.InBounds(x, y) {
        return None
    }
    return b.cells[y*b.Width+x]
}

// Set writes the cell at column x, row y. Callers guarantee the bounds.
func (b *Board) Set(x, y int, c Cell) {
    b.cells[y*b.Width+x] = c
}

// Rows returns a copy of the grid, one slice per row.
func (b *Board) Rows() [][]Cell {
    rows := make([][]Cell, b.Height)
    for y := range rows {
        rows[y] = append([]Cell(nil), b.cells[y*b.Width:(y+1)*b.Width]...)
    }
    return rows
}

// Count returns how many stones p has on dark cells.
func (b *Board) Count(p Player) int {
    stone := p.Stone()
    n := 0
    for _, c := range b.cells {
        if c == stone {
            n++
        }
    }
    return n
}

// HasWinner reports whether stones of exactly one color remain.
func (b *Board) HasWinner() bool {
    _, ok := b.Winner()
    return ok
}

// Winner returns the only color left on the board.
func (b *Board) Winner() (Player, bool) {
    foundWhite, foundBlack := false, false
    for _, c := range b.cells {
        switch c {
        case FilledDarkWhite:
            foundWhite = true
        case FilledDarkBlack:
            foundBlack = true
        }
    }
    switch {
    case foundWhite && !foundBlack:
        return White, true
    case foundBlack && !foundWhite:
        return Black, true
    default:
        return White, false
    }
}

func (b *Board) clone() *Board {
    cp := *b
    cp.cells = append([]Cell(nil), b.cells...)
    return &cp
}

package domain

// Cell represents a board cell state.
type Cell uint8

const (
    // None is returned for lookups outside the board. It never sits in the grid.
    None Cell = iota
    EmptyLight
    EmptyDark
    FilledLightWhite
    FilledLightBlack
    FilledDarkWhite
    FilledDarkBlack
)

func (c Cell) String() string {
    switch c {
    case EmptyLight:
        return "empty-light"
    case EmptyDark:
        return "empty-dark"
    case FilledLightWhite:
        return "light-white"
    case FilledLightBlack:
        return "light-black"
    case FilledDarkWhite:
        return "dark-white"
    case FilledDarkBlack:
        return "dark-black"
    default:
        return "none"
    }
}

// Empty reports whether the cell is on the board and holds no stone.
func (c Cell) Empty() bool { return c == EmptyLight || c == EmptyDark }

// Player is one of the two sides.
type Player uint8

const (
    White Player = iota
    Black
)

func (p Player) String() string {
    if p == Black {
        return "black"
    }
    return "white"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
    if p == White {
        return Black
    }
    return White
}

// Stone returns the dark cell occupied by one of p's stones.
func (p Player) Stone() Cell {
    if p == Black {
        return FilledDarkBlack
    }
    return FilledDarkWhite
}

// Point addresses a cell: X is the column, Y the row.
type Point struct {
    X int
    Y int
}

// NoPoint marks the absence of a forced destination.
var NoPoint = Point{X: -1, Y: -1}

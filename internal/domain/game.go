package domain

// Game holds the current state of a checkers match.
type Game struct {
    Board         *Board
    Turn          Player
    HitRequired   bool
    HitRequiredAt Point
    Moves         int
}

// New returns a new game on a width x height board with White to move.
func New(width, height int) (*Game, error) {
    b, err := NewBoard(width, height)
    if err != nil {
        return nil, err
    }
    return &Game{Board: b, Turn: White, HitRequiredAt: NoPoint}, nil
}

// FlipTurn hands the move to the other side.
func (g *Game) FlipTurn() {
    g.Turn = g.Turn.Opponent()
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
    cp := *g
    cp.Board = g.Board.clone()
    return &cp
}

// diagonals are the four neighbours probed after a move.
var diagonals = [4]Point{{1, -1}, {-1, -1}, {1, 1}, {-1, 1}}

// updateHitRequired runs with Turn still set to the side that just moved to p.
func (g *Game) updateHitRequired(p Point) {
    opposite := g.Turn.Opponent().Stone()
    for _, d := range diagonals {
        if g.Board.At(p.X+d.X, p.Y+d.Y) == opposite {
            g.HitRequired = true
            g.HitRequiredAt = p
            return
        }
    }
    g.HitRequired = false
    g.HitRequiredAt = NoPoint
}

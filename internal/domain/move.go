package domain

// Violation names the rule a rejected move broke.
type Violation uint8

const (
    OutOfBounds Violation = iota + 1
    IllegalDestination
    ForcedMove
    IllegalSource
    NotYourStone
    Backwards
    NotDiagonal
    Sideways
    AlreadyOccupied
    TooFar
    SameStone
)

func (v Violation) String() string {
    switch v {
    case OutOfBounds:
        return "out of bounds"
    case IllegalDestination:
        return "illegal destination"
    case ForcedMove:
        return "forced move"
    case IllegalSource:
        return "illegal source"
    case NotYourStone:
        return "not your stone"
    case Backwards:
        return "backwards"
    case NotDiagonal:
        return "not diagonal"
    case Sideways:
        return "sideways"
    case AlreadyOccupied:
        return "already occupied"
    case TooFar:
        return "too far"
    case SameStone:
        return "same stone"
    default:
        return "unknown"
    }
}

// RuleViolation is returned by Move when a rule rejects the move.
type RuleViolation struct {
    Kind    Violation
    Message string
}

func (e *RuleViolation) Error() string { return e.Message }

// Is matches any RuleViolation of the same kind.
func (e *RuleViolation) Is(target error) bool {
    t, ok := target.(*RuleViolation)
    return ok && t.Kind == e.Kind
}

// Errors returned by Move, one per rule. Compare with errors.Is.
var (
    ErrOutOfBounds        = &RuleViolation{OutOfBounds, "out of bounds"}
    ErrIllegalDestination = &RuleViolation{IllegalDestination, "You can't move to a light tile."}
    ErrForcedMove         = &RuleViolation{ForcedMove, "A hit is required, input correct values"}
    ErrIllegalSource      = &RuleViolation{IllegalSource, "You can't move with an empty tile."}
    ErrNotYourStone       = &RuleViolation{NotYourStone, "You can't move with a stone that isn't yours."}
    ErrBackwards          = &RuleViolation{Backwards, "You can't go backwards."}
    ErrNotDiagonal        = &RuleViolation{NotDiagonal, "You can't move in a straight line, keep to the dark checkers"}
    ErrSideways           = &RuleViolation{Sideways, "You can't move sideways on the same axis."}
    ErrAlreadyOccupied    = &RuleViolation{AlreadyOccupied, "You can't move to that location, you already occupy it with another stone."}
    ErrTooFar             = &RuleViolation{TooFar, "You can't move more than one row at a time."}
    ErrSameStone          = &RuleViolation{SameStone, "You can't move to a tile that is already occupied by yourself."}
)

var (
    errFromOutOfBounds = &RuleViolation{OutOfBounds, "Selected tile is out of bounds."}
    errToOutOfBounds   = &RuleViolation{OutOfBounds, "The tile you wanted to move to is out of bounds."}
)

// Move validates moving the stone at from to to for the side whose turn it is.
// On success the board is updated, the forced-hit state recomputed and the
// turn flipped. On failure the game is left untouched.
func (g *Game) Move(from, to Point) error {
    if !g.Board.InBounds(from.X, from.Y) {
        return errFromOutOfBounds
    }
    if !g.Board.InBounds(to.X, to.Y) {
        return errToOutOfBounds
    }
    if err := g.check(from, to); err != nil {
        return err
    }

    g.Board.Set(to.X, to.Y, g.Board.At(from.X, from.Y))
    // Stones only stand on dark cells.
    g.Board.Set(from.X, from.Y, EmptyDark)
    g.updateHitRequired(to)
    g.Moves++
    g.FlipTurn()
    return nil
}

// check runs the rules in order; the first broken one is reported.
func (g *Game) check(from, to Point) error {
    src := g.Board.At(from.X, from.Y)
    dst := g.Board.At(to.X, to.Y)

    if dst == EmptyLight {
        return ErrIllegalDestination
    }
    if g.HitRequired && to != g.HitRequiredAt {
        return ErrForcedMove
    }
    if src.Empty() {
        return ErrIllegalSource
    }
    if src == g.Turn.Opponent().Stone() {
        return ErrNotYourStone
    }
    if g.Turn == Black && to.Y < from.Y || g.Turn == White && to.Y > from.Y {
        return ErrBackwards
    }
    if from.X == to.X {
        return ErrNotDiagonal
    }
    if from.Y == to.Y {
        return ErrSideways
    }
    if dst == g.Turn.Stone() {
        return ErrAlreadyOccupied
    }
    if abs(from.Y-to.Y) > 1 {
        return ErrTooFar
    }
    if src == dst {
        return ErrSameStone
    }
    return nil
}

func abs(n int) int {
    if n < 0 {
        return -n
    }
    return n
}

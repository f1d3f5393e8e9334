// Package input turns board coordinates typed by a player, such as "j4",
// into zero-based points.
package input

import (
    "errors"
    "fmt"
    "strconv"
    "strings"
    "unicode"

    "github.com/Thomas-X/Checkers/internal/domain"
)

// Errors returned by Parse. Compare with errors.Is.
var (
    ErrTooShort   = errors.New("input too short")
    ErrNotNumeric = errors.New("row is not a number")
)

// InputError carries the message shown to the player.
type InputError struct {
    Message string
    err     error
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return e.err }

// Parse reads a column letter followed by a 1-based row number.
// "j4" becomes {X: 9, Y: 3}. Range checks are left to the board.
func Parse(text string) (domain.Point, error) {
    r := []rune(strings.TrimSpace(text))
    if len(r) < 2 {
        return domain.Point{}, &InputError{
            Message: "Input too short. Input should be (letter)(number). Example: j2.",
            err:     ErrTooShort,
        }
    }
    row, err := strconv.Atoi(string(r[1:]))
    if err != nil {
        return domain.Point{}, &InputError{
            Message: fmt.Sprintf("Input second character should be a number. Example: j2. Actual: %c", r[1]),
            err:     ErrNotNumeric,
        }
    }
    col := int(unicode.ToUpper(r[0]) - 'A')
    return domain.Point{X: col, Y: row - 1}, nil
}

// Format is the inverse of Parse.
func Format(p domain.Point) string {
    return fmt.Sprintf("%c%d", 'a'+rune(p.X), p.Y+1)
}

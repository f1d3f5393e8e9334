package tui

import (
    "bufio"
    "context"
    "errors"
    "fmt"
    "io"
    "time"

    "go.uber.org/zap"

    "github.com/Thomas-X/Checkers/internal/domain"
    "github.com/Thomas-X/Checkers/internal/input"
)

// Loop plays one game on a terminal: render, ask for two cells, move,
// and on a bad input or move show the message and retry after RetryDelay.
type Loop struct {
    Game       *domain.Game
    In         io.Reader
    Out        io.Writer
    RetryDelay time.Duration
    Log        *zap.SugaredLogger
}

// Run returns nil when the game has a winner or input ends, and ctx.Err()
// as soon as ctx is done, including while waiting at a prompt.
func (l *Loop) Run(ctx context.Context) error {
    log := l.Log
    if log == nil {
        log = zap.NewNop().Sugar()
    }
    ctx, cancel := context.WithCancel(ctx)
    defer cancel()
    lines := readLines(ctx, l.In)
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        if p, ok := l.Game.Board.Winner(); ok {
            log.Infow("game over", "winner", p.String(), "moves", l.Game.Moves)
            fmt.Fprintln(l.Out, Winner(p))
            return nil
        }

        fmt.Fprint(l.Out, ClearScreen)
        fmt.Fprintln(l.Out, Render(l.Game))
        err := l.turn(ctx, lines, log)
        if errors.Is(err, io.EOF) {
            return nil
        }
        if err == nil {
            continue
        }

        var ie *input.InputError
        var rv *domain.RuleViolation
        if !errors.As(err, &ie) && !errors.As(err, &rv) {
            return err
        }
        fmt.Fprintln(l.Out, Failure(err.Error(), l.RetryDelay.String()))
        if err := wait(ctx, l.RetryDelay); err != nil {
            return err
        }
    }
}

func (l *Loop) turn(ctx context.Context, lines <-chan line, log *zap.SugaredLogger) error {
    from, err := l.ask(ctx, lines, "Select your stone (example: j4) :")
    if err != nil {
        return err
    }
    to, err := l.ask(ctx, lines, "Select your move (example: i5) :")
    if err != nil {
        return err
    }
    side := l.Game.Turn
    if err := l.Game.Move(from, to); err != nil {
        log.Debugw("move rejected", "player", side.String(), "from", input.Format(from), "to", input.Format(to), zap.Error(err))
        return err
    }
    log.Debugw("move", "player", side.String(), "from", input.Format(from), "to", input.Format(to), "hit_required", l.Game.HitRequired)
    return nil
}

func (l *Loop) ask(ctx context.Context, lines <-chan line, prompt string) (domain.Point, error) {
    fmt.Fprint(l.Out, prompt+" ")
    select {
    case <-ctx.Done():
        return domain.Point{}, ctx.Err()
    case ln, ok := <-lines:
        if !ok {
            return domain.Point{}, io.EOF
        }
        if ln.err != nil {
            return domain.Point{}, ln.err
        }
        return input.Parse(ln.text)
    }
}

type line struct {
    text string
    err  error
}

// readLines scans r on its own goroutine so a prompt can be abandoned when
// ctx is done. The channel is closed at end of input. A goroutine blocked in
// Read stays there until r returns.
func readLines(ctx context.Context, r io.Reader) <-chan line {
    out := make(chan line)
    go func() {
        defer close(out)
        sc := bufio.NewScanner(r)
        for sc.Scan() {
            select {
            case out <- line{text: sc.Text()}:
            case <-ctx.Done():
                return
            }
        }
        if err := sc.Err(); err != nil {
            select {
            case out <- line{err: err}:
            case <-ctx.Done():
            }
        }
    }()
    return out
}

func wait(ctx context.Context, d time.Duration) error {
    if d <= 0 {
        return nil
    }
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return ctx.Err()
    case <-t.C:
        return nil
    }
}

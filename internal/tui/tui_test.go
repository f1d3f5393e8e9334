package tui

import (
    "bytes"
    "context"
    "io"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/Thomas-X/Checkers/internal/domain"
)

func newGame(t *testing.T) *domain.Game {
    t.Helper()
    g, err := domain.New(10, 10)
    require.NoError(t, err)
    return g
}

func run(t *testing.T, g *domain.Game, script string) (string, error) {
    t.Helper()
    var out bytes.Buffer
    l := &Loop{Game: g, In: strings.NewReader(script), Out: &out, RetryDelay: time.Millisecond}
    err := l.Run(context.Background())
    return out.String(), err
}

func TestGlyphCoversEveryCell(t *testing.T) {
    cells := []domain.Cell{
        domain.EmptyLight, domain.EmptyDark,
        domain.FilledLightWhite, domain.FilledLightBlack,
        domain.FilledDarkWhite, domain.FilledDarkBlack,
    }
    seen := map[string]bool{}
    for _, c := range cells {
        g := Glyph(c)
        assert.NotEqual(t, "?", g, c.String())
        assert.False(t, seen[g], "duplicate glyph for %v", c)
        seen[g] = true
    }
}

func TestRenderInitialBoard(t *testing.T) {
    g := newGame(t)
    out := Render(g)

    assert.Equal(t, 20, strings.Count(out, Glyph(domain.FilledDarkWhite)))
    assert.Equal(t, 20, strings.Count(out, Glyph(domain.FilledDarkBlack)))
    assert.Contains(t, out, " j ")
    assert.Contains(t, out, "10 ")
    assert.Contains(t, out, "Welcome to RETRO Checkers!")
    assert.Contains(t, out, "It is white's turn.")
    assert.NotContains(t, out, "A hit is required!")
}

func TestBannerShowsHitAndTurn(t *testing.T) {
    g := newGame(t)
    g.FlipTurn()
    g.HitRequired = true
    g.HitRequiredAt = domain.Point{X: 0, Y: 5}
    out := Banner(g)
    assert.Contains(t, out, "It is black's turn.")
    assert.Contains(t, out, "A hit is required!")
}

func TestLoopAppliesMove(t *testing.T) {
    g := newGame(t)
    out, err := run(t, g, "b7\na6\n")
    require.NoError(t, err)

    assert.Equal(t, domain.Black, g.Turn)
    assert.Equal(t, domain.EmptyDark, g.Board.At(1, 6))
    assert.Equal(t, domain.FilledDarkWhite, g.Board.At(0, 5))
    assert.Contains(t, out, "Select your stone (example: j4) :")
    assert.Contains(t, out, "Select your move (example: i5) :")
    assert.Contains(t, out, "It is black's turn.")
    assert.Equal(t, 2, strings.Count(out, ClearScreen))
    assert.True(t, strings.HasPrefix(out, ClearScreen))
}

func TestLoopReportsInputErrorAndRetries(t *testing.T) {
    g := newGame(t)
    out, err := run(t, g, "4\nb7\na6\n")
    require.NoError(t, err)

    assert.Contains(t, out, "Input too short")
    assert.Contains(t, out, "Please try again in 1ms.")
    assert.Equal(t, domain.Black, g.Turn)
}

func TestLoopReportsRuleViolation(t *testing.T) {
    g := newGame(t)
    before := g.Clone()
    out, err := run(t, g, "b7\nb6\n")
    require.NoError(t, err)

    assert.Contains(t, out, "You can't move to a light tile.")
    assert.Equal(t, before, g)
}

func TestLoopStopsOnWinner(t *testing.T) {
    g := newGame(t)
    for y := 0; y < 4; y++ {
        for x := 0; x < g.Board.Width; x++ {
            if g.Board.At(x, y) == domain.FilledDarkBlack {
                g.Board.Set(x, y, domain.EmptyDark)
            }
        }
    }
    out, err := run(t, g, "b7\na6\n")
    require.NoError(t, err)

    assert.Contains(t, out, "White wins!")
    assert.NotContains(t, out, "Select your stone")
}

func TestLoopHonoursCancelledContext(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    l := &Loop{Game: newGame(t), In: strings.NewReader(""), Out: &bytes.Buffer{}}
    assert.ErrorIs(t, l.Run(ctx), context.Canceled)
}

func TestLoopCancelledDuringRetryDelay(t *testing.T) {
    ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
    defer cancel()
    l := &Loop{Game: newGame(t), In: strings.NewReader("4\n"), Out: &bytes.Buffer{}, RetryDelay: time.Minute}
    assert.ErrorIs(t, l.Run(ctx), context.DeadlineExceeded)
}

func TestLoopCancelledWhileWaitingForInput(t *testing.T) {
    pr, pw := io.Pipe()
    defer pw.Close()

    ctx, cancel := context.WithCancel(context.Background())
    var out bytes.Buffer
    l := &Loop{Game: newGame(t), In: pr, Out: &out}
    done := make(chan error, 1)
    go func() { done <- l.Run(ctx) }()

    time.Sleep(50 * time.Millisecond)
    cancel()
    select {
    case err := <-done:
        assert.ErrorIs(t, err, context.Canceled)
    case <-time.After(time.Second):
        t.Fatal("Run still blocked after cancel")
    }
    assert.Contains(t, out.String(), "Select your stone")
}

func TestLoopCancelledBetweenPrompts(t *testing.T) {
    pr, pw := io.Pipe()
    defer pw.Close()

    ctx, cancel := context.WithCancel(context.Background())
    g := newGame(t)
    before := g.Clone()
    l := &Loop{Game: g, In: pr, Out: &bytes.Buffer{}}
    done := make(chan error, 1)
    go func() { done <- l.Run(ctx) }()

    _, err := io.WriteString(pw, "b7\n")
    require.NoError(t, err)
    cancel()
    select {
    case err := <-done:
        assert.ErrorIs(t, err, context.Canceled)
    case <-time.After(time.Second):
        t.Fatal("Run still blocked after cancel")
    }
    assert.Equal(t, before, g)
}

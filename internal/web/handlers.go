package web

import (
    "errors"
    "fmt"
    "html/template"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/go-chi/chi/v5"
    "go.uber.org/zap"

    "github.com/Thomas-X/Checkers/internal/app"
    "github.com/Thomas-X/Checkers/internal/domain"
    "github.com/Thomas-X/Checkers/internal/input"
)

type handlers struct {
    svc *app.Service
    tpl *templates
    log *zap.SugaredLogger
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) []byte {
    g := gs.Game
    data := boardData{
        ID:          gs.ID,
        Rows:        g.Board.Rows(),
        Turn:        g.Turn.String(),
        HitRequired: g.HitRequired,
        Error:       errMsg,
    }
    if g.HitRequired {
        data.HitAt = input.Format(g.HitRequiredAt)
    }
    if p, ok := g.Board.Winner(); ok {
        name := p.String()
        data.Winner = strings.ToUpper(name[:1]) + name[1:]
    }
    return renderTemplate(h.tpl.board, "", data)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.index, "base", nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    gs, err := h.svc.CreateGame()
    if err != nil {
        h.log.Errorw("create game", zap.Error(err))
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    // ensure cookie and auto-claim seat
    pid := ensurePlayerCookie(w, r)
    _, _, _ = h.svc.Join(id, pid)

    gs, ok := h.svc.Get(id)
    if !ok {
        http.NotFound(w, r)
        return
    }
    data := struct {
        ID        string
        BoardHTML template.HTML
    }{ID: gs.ID, BoardHTML: template.HTML(h.renderBoard(*gs, ""))}

    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write(renderTemplate(h.tpl.game, "base", data))
}

func (h *handlers) join(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    pid := ensurePlayerCookie(w, r)
    _, gs, err := h.svc.Join(id, pid)
    if err != nil || gs == nil {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    _, _ = w.Write(h.renderBoard(*gs, ""))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    pid := ensurePlayerCookie(w, r)
    _ = r.ParseForm()

    var gs *app.GameState
    from, err := input.Parse(r.Form.Get("from"))
    if err == nil {
        var to domain.Point
        to, err = input.Parse(r.Form.Get("to"))
        if err == nil {
            gs, err = h.svc.Play(id, pid, from, to)
        }
    }
    var errMsg string
    if err != nil {
        if g, ok := h.svc.Get(id); ok {
            gs = g
        }
        errMsg = playErrorMessage(err)
    }
    if gs == nil {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    _, _ = w.Write(h.renderBoard(*gs, errMsg))
}

func playErrorMessage(err error) string {
    var ie *input.InputError
    var rv *domain.RuleViolation
    switch {
    case errors.As(err, &ie):
        return ie.Message
    case errors.As(err, &rv):
        return rv.Message
    case errors.Is(err, app.ErrNotYourTurn):
        return "Not your turn"
    case errors.Is(err, app.ErrNotAPlayer):
        return "You are a spectator"
    case errors.Is(err, app.ErrGameOver):
        return "Game is over"
    default:
        return "Invalid move"
    }
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, ok := h.svc.Get(id); !ok {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/event-stream")
    w.Header().Set("Cache-Control", "no-cache")
    w.Header().Set("X-Accel-Buffering", "no")
    // In tests or non-EventSource requests, just acknowledge headers and return
    if r.Header.Get("Accept") != "text/event-stream" {
        w.WriteHeader(http.StatusOK)
        return
    }
    flusher, ok := w.(http.Flusher)
    if !ok {
        w.WriteHeader(http.StatusOK)
        return
    }
    ctx := r.Context()
    ch, unsub, err := h.svc.Subscribe(ctx, id)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    defer unsub()
    ticker := time.NewTicker(heartbeatInterval)
    defer ticker.Stop()
    flusher.Flush()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            _, _ = io.WriteString(w, ": ping\n\n")
            flusher.Flush()
        case b, ok := <-ch:
            if !ok {
                return
            }
            // SSE data lines may not contain raw newlines
            _, _ = fmt.Fprintf(w, "event: board\n")
            for _, line := range strings.Split(string(b), "\n") {
                _, _ = fmt.Fprintf(w, "data: %s\n", line)
            }
            _, _ = io.WriteString(w, "\n")
            flusher.Flush()
        }
    }
}

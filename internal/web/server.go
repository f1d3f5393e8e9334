package web

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"

    "github.com/Thomas-X/Checkers/internal/app"
)

// NewServer wires routes and returns an http.Handler. It also makes the
// service broadcast rendered board fragments to event subscribers.
func NewServer(s *app.Service, log *zap.SugaredLogger) http.Handler {
    if log == nil {
        log = zap.NewNop().Sugar()
    }
    h := &handlers{svc: s, tpl: loadTemplates(), log: log}
    s.SetRenderer(func(gs app.GameState) []byte { return h.renderBoard(gs, "") })

    r := chi.NewRouter()
    r.Use(middleware.Recoverer)
    r.Get("/", h.index)
    r.Post("/game", h.create)
    r.Route("/game/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Post("/join", h.join)
        r.Post("/play", h.play)
        r.Get("/events", h.events)
    })
    return r
}

// ListenAndServe serves h on addr until ctx is done, then shuts down.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, log *zap.SugaredLogger) error {
    srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
    errCh := make(chan error, 1)
    go func() {
        log.Infof("Server is running on %s", addr)
        errCh <- srv.ListenAndServe()
    }()

    select {
    case err := <-errCh:
        return err
    case <-ctx.Done():
        log.Info("Received shutdown signal")
    }
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        return err
    }
    if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
        return err
    }
    return nil
}

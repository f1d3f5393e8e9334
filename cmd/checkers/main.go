package main

import (
    "context"
    "fmt"
    "os"
    "os/signal"
    "syscall"

    "github.com/urfave/cli/v2"
    "go.uber.org/zap"

    "github.com/Thomas-X/Checkers/internal/app"
    "github.com/Thomas-X/Checkers/internal/bootstrap"
    "github.com/Thomas-X/Checkers/internal/domain"
    "github.com/Thomas-X/Checkers/internal/tui"
    "github.com/Thomas-X/Checkers/internal/web"
)

func main() {
    if err := newApp().Run(os.Args); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

func newApp() *cli.App {
    return &cli.App{
        Name:  "checkers",
        Usage: "Two-player checkers on the terminal or in a browser",
        Flags: []cli.Flag{
            &cli.StringFlag{
                Name:    "config",
                Aliases: []string{"c"},
                Usage:   "config file (.env, yaml, toml, json)",
                Value:   ".env",
            },
        },
        Action: play,
        Commands: []*cli.Command{
            {
                Name:   "play",
                Usage:  "Play on this terminal",
                Flags:  playFlags(),
                Action: play,
            },
            {
                Name:  "serve",
                Usage: "Serve games over http",
                Flags: []cli.Flag{
                    &cli.StringFlag{Name: "addr", Usage: "listen address"},
                    &cli.IntFlag{Name: "width", Usage: "board width"},
                    &cli.IntFlag{Name: "height", Usage: "board height"},
                },
                Action: serve,
            },
        },
    }
}

func playFlags() []cli.Flag {
    return []cli.Flag{
        &cli.IntFlag{Name: "width", Usage: "board width"},
        &cli.IntFlag{Name: "height", Usage: "board height"},
        &cli.DurationFlag{Name: "retry-delay", Usage: "pause after a rejected move"},
    }
}

// setup loads config, applies flag overrides and builds the logger.
func setup(cCtx *cli.Context) (*bootstrap.Config, *zap.SugaredLogger, error) {
    cfg, err := bootstrap.Setup(cCtx.String("config"))
    if err != nil {
        return nil, nil, err
    }
    if cCtx.IsSet("width") {
        cfg.BoardWidth = cCtx.Int("width")
    }
    if cCtx.IsSet("height") {
        cfg.BoardHeight = cCtx.Int("height")
    }
    if cCtx.IsSet("retry-delay") {
        cfg.RetryDelay = cCtx.Duration("retry-delay")
    }
    if cCtx.IsSet("addr") {
        cfg.HTTPAddr = cCtx.String("addr")
    }
    if err := cfg.Validate(); err != nil {
        return nil, nil, err
    }
    log, err := bootstrap.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
    if err != nil {
        return nil, nil, err
    }
    return cfg, log, nil
}

func play(cCtx *cli.Context) error {
    cfg, log, err := setup(cCtx)
    if err != nil {
        return err
    }
    defer log.Sync()

    g, err := domain.New(cfg.BoardWidth, cfg.BoardHeight)
    if err != nil {
        return err
    }
    ctx, cancel := signalContext(cCtx.Context)
    defer cancel()

    loop := &tui.Loop{
        Game:       g,
        In:         os.Stdin,
        Out:        os.Stdout,
        RetryDelay: cfg.RetryDelay,
        Log:        log,
    }
    if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
        return err
    }
    return nil
}

func serve(cCtx *cli.Context) error {
    cfg, log, err := setup(cCtx)
    if err != nil {
        return err
    }
    defer log.Sync()

    ctx, cancel := signalContext(cCtx.Context)
    defer cancel()

    svc := app.NewService(
        app.WithLogger(log),
        app.WithBoardSize(cfg.BoardWidth, cfg.BoardHeight),
    )
    if err := web.ListenAndServe(ctx, cfg.HTTPAddr, web.NewServer(svc, log), log); err != nil {
        log.Errorw("Failed to start server", zap.Error(err))
        return err
    }
    return nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
    return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

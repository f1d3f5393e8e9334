package bootstrap

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON production logger, or a console one when
// development is set. level is a zap level name such as "debug" or "warn".
func NewLogger(level string, development bool) (*zap.SugaredLogger, error) {
    lvl, err := zapcore.ParseLevel(level)
    if err != nil {
        return nil, err
    }
    cfg := zap.NewProductionConfig()
    if development {
        cfg = zap.NewDevelopmentConfig()
    }
    cfg.Level = zap.NewAtomicLevelAt(lvl)
    logger, err := cfg.Build()
    if err != nil {
        return nil, err
    }
    return logger.Sugar(), nil
}

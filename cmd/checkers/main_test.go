package main

import (
    "errors"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/Thomas-X/Checkers/internal/domain"
)

func TestCommands(t *testing.T) {
    a := newApp()
    names := map[string]bool{}
    for _, c := range a.Commands {
        names[c.Name] = true
    }
    assert.True(t, names["play"])
    assert.True(t, names["serve"])
}

func TestFlagsOverrideConfigAndAreValidated(t *testing.T) {
    cfg := filepath.Join(t.TempDir(), "none.env")
    for _, args := range [][]string{
        {"checkers", "--config", cfg, "play", "--width", "8"},
        {"checkers", "--config", cfg, "serve", "--height", "9"},
    } {
        err := newApp().Run(args)
        require.Error(t, err, args)
        assert.True(t, errors.Is(err, domain.ErrBoardTooSmall), args)
    }
}

func TestRetryDelayMustBePositive(t *testing.T) {
    cfg := filepath.Join(t.TempDir(), "none.env")
    err := newApp().Run([]string{"checkers", "--config", cfg, "play", "--retry-delay", "0s"})
    assert.Error(t, err)
}

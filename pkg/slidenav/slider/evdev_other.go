//go:build !linux

package slider

import (
	"context"
	"errors"
	"log/slog"
)

// BackKeyListener is only available on Linux.
type BackKeyListener struct {
	Path   string
	Logger *slog.Logger
}

// NewBackKeyListener returns a listener whose Listen always fails.
func NewBackKeyListener(path string) *BackKeyListener {
	return &BackKeyListener{Path: path}
}

func (l *BackKeyListener) Listen(ctx context.Context, onBack func()) error {
	return errors.ErrUnsupported
}

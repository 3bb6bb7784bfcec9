//go:build linux

package slider

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/internal"
	"github.com/holoplot/go-evdev"
)

// DefaultBackKeys are the key codes treated as a back press.
var DefaultBackKeys = []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC}

// BackKeyListener reads an input device and reports back key presses, so a
// hardware back button can drive swipe-back.
type BackKeyListener struct {
	Path   string
	Keys   []evdev.EvCode
	Logger *slog.Logger
}

// NewBackKeyListener listens on the device at path for keys, or DefaultBackKeys.
func NewBackKeyListener(path string, keys ...evdev.EvCode) *BackKeyListener {
	if len(keys) == 0 {
		keys = DefaultBackKeys
	}
	return &BackKeyListener{Path: path, Keys: keys}
}

// Listen calls onBack for every back key press until ctx is done or the
// device fails. Returns nil when stopped through ctx.
func (l *BackKeyListener) Listen(ctx context.Context, onBack func()) error {
	logger := internal.LoggerOr(l.Logger)

	dev, err := evdev.Open(l.Path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", l.Path, err)
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			dev.Close()
		case <-stopped:
			dev.Close()
		}
	}()

	logger.Debug("Listening for back key", "device", l.Path)

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input device %s: %w", l.Path, err)
		}
		if isBackPress(ev, l.Keys) {
			onBack()
		}
	}
}

// isBackPress ignores releases and autorepeat (value 2).
func isBackPress(ev *evdev.InputEvent, keys []evdev.EvCode) bool {
	return ev != nil && ev.Type == evdev.EV_KEY && ev.Value == 1 && slices.Contains(keys, ev.Code)
}

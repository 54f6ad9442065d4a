//go:build !cgo

package present

import (
	"context"
	"errors"
)

// RunWindow is unavailable without cgo.
func RunWindow(_ context.Context, _ string, _ *RGB565, _, _ int, _ func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

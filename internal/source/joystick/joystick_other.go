//go:build !linux

package joystick

import (
	"errors"

	"github.com/dshills/actionflow/internal/input/device"
)

// Reader is unavailable on platforms without /dev/input joysticks.
type Reader struct{}

// Open always fails; Scan reports no devices, so callers never reach
// here in practice.
func Open(path string) (*Reader, error) {
	return nil, errors.New("joystick devices are not supported on this platform")
}

// ID returns an empty pad identity.
func (r *Reader) ID() device.ID {
	return ""
}

// Apply reports the reader as disconnected.
func (r *Reader) Apply(*device.Snapshot) bool {
	return false
}

// Close is a no-op.
func (r *Reader) Close() error {
	return nil
}

// Scan reports no joystick devices.
func Scan() ([]string, error) {
	return nil, nil
}

//go:build linux

package joystick

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/dshills/actionflow/internal/input/device"
)

// queueSize bounds the per-reader event backlog between frames.
const queueSize = 256

// Reader streams events from one joystick device.
type Reader struct {
	id     device.ID
	fd     int
	events chan event
	done   chan struct{}
	log    *slog.Logger
}

// Open starts reading a joystick device, e.g. "/dev/input/js0". The
// pad ID is the device file base name.
func Open(path string) (*Reader, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening joystick %s: %w", path, err)
	}

	r := &Reader{
		id:     device.ID(filepath.Base(path)),
		fd:     fd,
		events: make(chan event, queueSize),
		done:   make(chan struct{}),
		log:    slog.Default(),
	}
	go r.read()
	return r, nil
}

// ID returns the pad identity used in the snapshot.
func (r *Reader) ID() device.ID {
	return r.id
}

// read pumps raw records into the queue until the device goes away.
func (r *Reader) read() {
	var buf [8]byte
	for {
		n, err := unix.Read(r.fd, buf[:])
		if err != nil || n != len(buf) {
			select {
			case <-r.done:
			default:
				r.log.Info("joystick disconnected", "pad", r.id)
				close(r.events)
			}
			return
		}
		select {
		case r.events <- decodeEvent(buf):
		case <-r.done:
			return
		default:
			// Queue full; drop the oldest pending event instead of
			// blocking the device read.
			select {
			case <-r.events:
			default:
			}
			r.events <- decodeEvent(buf)
		}
	}
}

// Apply drains queued events into the snapshot. It reports false once
// the device has disconnected, after removing the pad.
func (r *Reader) Apply(snap *device.Snapshot) bool {
	snap.Connect(r.id)
	for {
		select {
		case e, ok := <-r.events:
			if !ok {
				snap.Disconnect(r.id)
				return false
			}
			apply(snap, r.id, e)
		default:
			return true
		}
	}
}

// Close stops the reader and closes the device.
func (r *Reader) Close() error {
	close(r.done)
	return unix.Close(r.fd)
}

// Scan lists the joystick device paths present on the system.
func Scan() ([]string, error) {
	return filepath.Glob("/dev/input/js*")
}

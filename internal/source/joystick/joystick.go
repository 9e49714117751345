// Package joystick reads Linux joystick devices (/dev/input/js*) and
// feeds their buttons and axes into a device snapshot.
//
// Events are read on a background goroutine and queued; Apply drains
// the queue into the snapshot between frames so evaluation stays
// single-threaded.
package joystick

import (
	"encoding/binary"

	"github.com/dshills/actionflow/internal/input/device"
)

// Joystick event types from linux/joystick.h.
const (
	eventButton = 0x01
	eventAxis   = 0x02
	eventInit   = 0x80
)

// axisMax is the raw range limit of a joystick axis.
const axisMax = 32767.0

// event is one 8-byte joystick event record.
type event struct {
	time   uint32
	value  int16
	etype  uint8
	number uint8
}

// decodeEvent parses one raw event record (little-endian, kernel ABI).
func decodeEvent(b [8]byte) event {
	return event{
		time:   binary.LittleEndian.Uint32(b[0:4]),
		value:  int16(binary.LittleEndian.Uint16(b[4:6])),
		etype:  b[6],
		number: b[7],
	}
}

// buttonMap translates joystick button numbers to pad buttons using
// the common Xbox-style layout.
var buttonMap = map[uint8]device.PadButton{
	0:  device.PadSouth,
	1:  device.PadEast,
	2:  device.PadWest,
	3:  device.PadNorth,
	4:  device.PadLeftBumper,
	5:  device.PadRightBumper,
	6:  device.PadSelect,
	7:  device.PadStart,
	9:  device.PadLeftThumb,
	10: device.PadRightThumb,
}

// axisMap translates joystick axis numbers to pad axes.
var axisMap = map[uint8]device.PadAxis{
	0: device.AxisLeftStickX,
	1: device.AxisLeftStickY,
	2: device.AxisLeftTrigger,
	3: device.AxisRightStickX,
	4: device.AxisRightStickY,
	5: device.AxisRightTrigger,
}

// apply records one decoded event into the snapshot for the given pad.
func apply(snap *device.Snapshot, id device.ID, e event) {
	switch e.etype &^ eventInit {
	case eventButton:
		btn, ok := buttonMap[e.number]
		if !ok {
			return
		}
		var v float64
		if e.value != 0 {
			v = 1
		}
		snap.SetPadButton(id, btn, v)
	case eventAxis:
		axis, ok := axisMap[e.number]
		if !ok {
			return
		}
		snap.SetPadAxis(id, axis, float64(e.value)/axisMax)
	}
}

package binding

import (
	"github.com/dshills/actionflow/internal/input/modifier"
	"github.com/dshills/actionflow/internal/input/value"
)

// Composite presets map each source onto a unit-vector contribution.
// Contributions sum per axis before the binding's modifier chain runs,
// so opposite directions held together cancel to zero.

// DirectionEntry routes a scalar source onto a direction vector.
func DirectionEntry(s Source, dir value.Vec3) Entry {
	return Entry{Source: s, Modifiers: []modifier.Modifier{modifier.Heading{Direction: dir}}}
}

// Cardinal maps four sources to +Y, +X, -Y, -X for WASD-style movement
// on an Axis2D action.
func Cardinal(north, east, south, west Source) []Entry {
	return []Entry{
		DirectionEntry(north, value.Vec3{Y: 1}),
		DirectionEntry(east, value.Vec3{X: 1}),
		DirectionEntry(south, value.Vec3{Y: -1}),
		DirectionEntry(west, value.Vec3{X: -1}),
	}
}

// Bidirectional maps two sources to +X and -X on an Axis1D action.
func Bidirectional(positive, negative Source) []Entry {
	return []Entry{
		DirectionEntry(positive, value.Vec3{X: 1}),
		DirectionEntry(negative, value.Vec3{X: -1}),
	}
}

// Axial maps two axis sources onto X and Y, for binding a pair of
// stick axes to one Axis2D action.
func Axial(x, y Source) []Entry {
	return []Entry{
		{Source: x},
		{Source: y, Modifiers: []modifier.Modifier{modifier.SwizzleAxis{Order: modifier.OrderYXZ}}},
	}
}

// Ordinal maps eight sources to the four cardinal and four diagonal
// directions. Diagonals contribute unnormalized corner vectors; apply
// Normalized on the binding when a unit direction is required.
func Ordinal(north, northEast, east, southEast, south, southWest, west, northWest Source) []Entry {
	return []Entry{
		DirectionEntry(north, value.Vec3{Y: 1}),
		DirectionEntry(northEast, value.Vec3{X: 1, Y: 1}),
		DirectionEntry(east, value.Vec3{X: 1}),
		DirectionEntry(southEast, value.Vec3{X: 1, Y: -1}),
		DirectionEntry(south, value.Vec3{Y: -1}),
		DirectionEntry(southWest, value.Vec3{X: -1, Y: -1}),
		DirectionEntry(west, value.Vec3{X: -1}),
		DirectionEntry(northWest, value.Vec3{X: -1, Y: 1}),
	}
}

// Spatial maps six sources to the ±X, ±Y and ±Z directions for an
// Axis3D action (forward/backward along -Z/+Z by convention).
func Spatial(right, left, up, down, backward, forward Source) []Entry {
	return []Entry{
		DirectionEntry(right, value.Vec3{X: 1}),
		DirectionEntry(left, value.Vec3{X: -1}),
		DirectionEntry(up, value.Vec3{Y: 1}),
		DirectionEntry(down, value.Vec3{Y: -1}),
		DirectionEntry(backward, value.Vec3{Z: 1}),
		DirectionEntry(forward, value.Vec3{Z: -1}),
	}
}

package modifier

import (
	"time"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/value"
)

// Negate flips the sign of the selected axes. A Bool input is first
// widened to Axis1D.
type Negate struct {
	X, Y, Z bool
}

// NegateAll returns a Negate covering every axis.
func NegateAll() Negate {
	return Negate{X: true, Y: true, Z: true}
}

// Apply implements Modifier.
func (n Negate) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	xyz := v.AsAxis3D()
	if n.X {
		xyz.X = -xyz.X
	}
	if n.Y {
		xyz.Y = -xyz.Y
	}
	if n.Z {
		xyz.Z = -xyz.Z
	}
	dim := v.Dim()
	if dim == value.DimBool {
		dim = value.DimAxis1D
	}
	return value.Axis3D(xyz.X, xyz.Y, xyz.Z).Convert(dim)
}

// DeadZone discards input magnitude below Lower and rescales the
// Lower..Upper band back to the full 0..1 range, preserving direction.
type DeadZone struct {
	// Lower is the radius below which input reads as zero.
	Lower float64

	// Upper is the radius at which input saturates.
	Upper float64
}

// DefaultDeadZone returns the conventional 0.2/1.0 radial dead zone.
func DefaultDeadZone() DeadZone {
	return DeadZone{Lower: 0.2, Upper: 1.0}
}

// Apply implements Modifier.
func (d DeadZone) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	lower, upper := d.Lower, d.Upper
	if upper <= lower {
		return v
	}
	mag := v.Magnitude()
	if mag <= lower {
		return value.Zero(v.Dim()).Convert(axisDim(v.Dim()))
	}
	scaled := (mag - lower) / (upper - lower)
	if scaled > 1 {
		scaled = 1
	}
	factor := scaled / mag
	xyz := v.AsAxis3D()
	return value.Axis3D(xyz.X*factor, xyz.Y*factor, xyz.Z*factor).Convert(axisDim(v.Dim()))
}

// SwizzleOrder names a component reordering.
type SwizzleOrder uint8

const (
	// OrderYXZ swaps the first two components.
	OrderYXZ SwizzleOrder = iota

	// OrderZYX swaps the first and third components.
	OrderZYX

	// OrderXZY swaps the last two components.
	OrderXZY

	// OrderYZX rotates components left.
	OrderYZX

	// OrderZXY rotates components right.
	OrderZXY
)

// SwizzleAxis reorders value components; presets use it to route a
// one-dimensional source onto another axis.
type SwizzleAxis struct {
	Order SwizzleOrder
}

// Apply implements Modifier.
func (s SwizzleAxis) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	xyz := v.AsAxis3D()
	var out value.Vec3
	switch s.Order {
	case OrderYXZ:
		out = value.Vec3{X: xyz.Y, Y: xyz.X, Z: xyz.Z}
	case OrderZYX:
		out = value.Vec3{X: xyz.Z, Y: xyz.Y, Z: xyz.X}
	case OrderXZY:
		out = value.Vec3{X: xyz.X, Y: xyz.Z, Z: xyz.Y}
	case OrderYZX:
		out = value.Vec3{X: xyz.Y, Y: xyz.Z, Z: xyz.X}
	default:
		out = value.Vec3{X: xyz.Z, Y: xyz.X, Z: xyz.Y}
	}
	dim := v.Dim()
	if dim < value.DimAxis2D {
		dim = value.DimAxis2D
	}
	return value.Axis3D(out.X, out.Y, out.Z).Convert(dim)
}

// Clamp limits each component to a per-axis min/max range.
type Clamp struct {
	Min, Max value.Vec3
}

// ClampSymmetric returns a Clamp holding every axis within ±limit.
func ClampSymmetric(limit float64) Clamp {
	return Clamp{Min: value.Splat(-limit), Max: value.Splat(limit)}
}

// Apply implements Modifier.
func (c Clamp) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	xyz := v.AsAxis3D()
	xyz.X = clamp(xyz.X, c.Min.X, c.Max.X)
	xyz.Y = clamp(xyz.Y, c.Min.Y, c.Max.Y)
	xyz.Z = clamp(xyz.Z, c.Min.Z, c.Max.Z)
	return value.Axis3D(xyz.X, xyz.Y, xyz.Z).Convert(axisDim(v.Dim()))
}

// Heading maps a scalar source onto a direction vector: the widened
// Axis1D magnitude multiplies each component of Direction. Composite
// binding presets are built from Heading entries.
type Heading struct {
	Direction value.Vec3
}

// Apply implements Modifier.
func (h Heading) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	mag := v.AsAxis1D()
	return value.Axis3D(h.Direction.X*mag, h.Direction.Y*mag, h.Direction.Z*mag)
}

// axisDim widens Bool to Axis1D and leaves axis dimensions alone.
func axisDim(d value.Dim) value.Dim {
	if d == value.DimBool {
		return value.DimAxis1D
	}
	return d
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

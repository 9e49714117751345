// Package modifier provides the time-aware value transforms applied to
// a binding's raw value before condition evaluation.
//
// Modifiers run strictly in declared order; each sees only the output
// of the previous one. The reference modifiers here are stateless and
// safe to share across bindings; anything stateful must be declared
// per-binding.
package modifier

import (
	"time"

	"github.com/dshills/actionflow/internal/input/action"
	"github.com/dshills/actionflow/internal/input/value"
)

// Modifier transforms an action value. Implementations receive the
// current pass's action map and the frame's elapsed time.
type Modifier interface {
	Apply(actions *action.Map, delta time.Duration, v value.Value) value.Value
}

// Scale multiplies each present component by a per-axis factor. A Bool
// input is first widened to Axis1D, turning a press into a continuous
// magnitude.
type Scale struct {
	// Factor holds the per-axis multipliers.
	Factor value.Vec3
}

// ScaleSplat returns a Scale with all axes set to the same factor.
func ScaleSplat(factor float64) Scale {
	return Scale{Factor: value.Splat(factor)}
}

// Apply implements Modifier.
func (s Scale) Apply(_ *action.Map, _ time.Duration, v value.Value) value.Value {
	switch v.Dim() {
	case value.DimBool, value.DimAxis1D:
		return value.Axis1D(v.AsAxis1D() * s.Factor.X)
	case value.DimAxis2D:
		xy := v.AsAxis2D()
		return value.Axis2D(xy.X*s.Factor.X, xy.Y*s.Factor.Y)
	default:
		xyz := v.AsAxis3D()
		return value.Axis3D(xyz.X*s.Factor.X, xyz.Y*s.Factor.Y, xyz.Z*s.Factor.Z)
	}
}

// DeltaScale multiplies every component by the frame's elapsed time in
// seconds, converting a per-frame impulse into a per-second rate. A
// Bool input is first widened to Axis1D.
type DeltaScale struct{}

// Apply implements Modifier.
func (DeltaScale) Apply(_ *action.Map, delta time.Duration, v value.Value) value.Value {
	secs := delta.Seconds()
	switch v.Dim() {
	case value.DimBool, value.DimAxis1D:
		return value.Axis1D(v.AsAxis1D() * secs)
	case value.DimAxis2D:
		xy := v.AsAxis2D()
		return value.Axis2D(xy.X*secs, xy.Y*secs)
	default:
		xyz := v.AsAxis3D()
		return value.Axis3D(xyz.X*secs, xyz.Y*secs, xyz.Z*secs)
	}
}

// Package value defines the dimensional action value type and its
// conversion rules.
//
// A Value is a closed tagged union over Bool, Axis1D, Axis2D and Axis3D.
// Widening places the scalar in the first component and zeroes the rest;
// narrowing keeps leading components and discards the rest. Bool converts
// to 1.0/0.0 and back via "any component nonzero".
package value

import (
	"fmt"
	"math"
)

// Dim identifies the dimension of a Value.
type Dim uint8

const (
	// DimBool is a digital on/off value.
	DimBool Dim = iota

	// DimAxis1D is a single continuous axis.
	DimAxis1D

	// DimAxis2D is a pair of continuous axes.
	DimAxis2D

	// DimAxis3D is a triple of continuous axes.
	DimAxis3D
)

// String returns the dimension name.
func (d Dim) String() string {
	switch d {
	case DimBool:
		return "bool"
	case DimAxis1D:
		return "axis1d"
	case DimAxis2D:
		return "axis2d"
	case DimAxis3D:
		return "axis3d"
	default:
		return fmt.Sprintf("dim(%d)", d)
	}
}

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a three-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Splat returns a Vec3 with all components set to v.
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Value is a dimensioned input value. The zero Value is Bool(false).
type Value struct {
	dim     Dim
	x, y, z float64
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	var x float64
	if b {
		x = 1
	}
	return Value{dim: DimBool, x: x}
}

// Axis1D returns a one-dimensional Value.
func Axis1D(x float64) Value {
	return Value{dim: DimAxis1D, x: x}
}

// Axis2D returns a two-dimensional Value.
func Axis2D(x, y float64) Value {
	return Value{dim: DimAxis2D, x: x, y: y}
}

// Axis3D returns a three-dimensional Value.
func Axis3D(x, y, z float64) Value {
	return Value{dim: DimAxis3D, x: x, y: y, z: z}
}

// Zero returns the zero Value of the given dimension.
func Zero(dim Dim) Value {
	return Value{dim: dim}
}

// Dim returns the dimension tag.
func (v Value) Dim() Dim {
	return v.dim
}

// AsBool reports whether any component is nonzero.
func (v Value) AsBool() bool {
	return v.x != 0 || v.y != 0 || v.z != 0
}

// AsAxis1D returns the first component. Bool converts to 1.0/0.0.
func (v Value) AsAxis1D() float64 {
	return v.x
}

// AsAxis2D returns the first two components.
func (v Value) AsAxis2D() Vec2 {
	return Vec2{X: v.x, Y: v.y}
}

// AsAxis3D returns all three components.
func (v Value) AsAxis3D() Vec3 {
	return Vec3{X: v.x, Y: v.y, Z: v.z}
}

// Convert returns v converted to the given dimension, applying the
// widening/narrowing rules. Converting to the same dimension is the
// identity.
func (v Value) Convert(dim Dim) Value {
	if v.dim == dim {
		return v
	}
	switch dim {
	case DimBool:
		return Bool(v.AsBool())
	case DimAxis1D:
		return Axis1D(v.x)
	case DimAxis2D:
		return Axis2D(v.x, v.y)
	default:
		return Axis3D(v.x, v.y, v.z)
	}
}

// Add sums v and other per component. The result takes the wider of the
// two dimensions; Bool operands contribute 1.0/0.0. A Bool result stays
// Bool only when both operands are Bool.
func (v Value) Add(other Value) Value {
	dim := v.dim
	if other.dim > dim {
		dim = other.dim
	}
	return Value{
		dim: dim,
		x:   v.x + other.x,
		y:   v.y + other.y,
		z:   v.z + other.z,
	}
}

// Magnitude returns the Euclidean length across all components.
func (v Value) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// Actuated reports whether the magnitude exceeds the threshold.
func (v Value) Actuated(threshold float64) bool {
	return v.Magnitude() > threshold
}

// ClampLength returns v scaled down so its magnitude does not exceed max.
// Values at or under the limit are returned unchanged.
func (v Value) ClampLength(max float64) Value {
	mag := v.Magnitude()
	if mag <= max || mag == 0 {
		return v
	}
	scale := max / mag
	return Value{dim: v.dim, x: v.x * scale, y: v.y * scale, z: v.z * scale}
}

// String renders the value with its dimension tag.
func (v Value) String() string {
	switch v.dim {
	case DimBool:
		return fmt.Sprintf("Bool(%v)", v.AsBool())
	case DimAxis1D:
		return fmt.Sprintf("Axis1D(%.3f)", v.x)
	case DimAxis2D:
		return fmt.Sprintf("Axis2D(%.3f, %.3f)", v.x, v.y)
	default:
		return fmt.Sprintf("Axis3D(%.3f, %.3f, %.3f)", v.x, v.y, v.z)
	}
}

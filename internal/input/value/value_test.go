package value

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBoolConversion(t *testing.T) {
	if got := Bool(true).Convert(DimAxis1D); !approx(got.AsAxis1D(), 1.0) {
		t.Errorf("Bool(true) to Axis1D = %v, want 1.0", got)
	}
	if got := Bool(false).Convert(DimAxis1D); !approx(got.AsAxis1D(), 0.0) {
		t.Errorf("Bool(false) to Axis1D = %v, want 0.0", got)
	}
	if !Axis1D(0.25).Convert(DimBool).AsBool() {
		t.Error("nonzero Axis1D should convert to true")
	}
	if Axis1D(0).Convert(DimBool).AsBool() {
		t.Error("zero Axis1D should convert to false")
	}
}

func TestWidening(t *testing.T) {
	v := Axis1D(3).Convert(DimAxis2D)
	if xy := v.AsAxis2D(); !approx(xy.X, 3) || !approx(xy.Y, 0) {
		t.Errorf("Axis1D(3) to Axis2D = %v, want (3, 0)", xy)
	}

	v = Axis1D(3).Convert(DimAxis3D)
	if xyz := v.AsAxis3D(); !approx(xyz.X, 3) || !approx(xyz.Y, 0) || !approx(xyz.Z, 0) {
		t.Errorf("Axis1D(3) to Axis3D = %v, want (3, 0, 0)", xyz)
	}

	v = Bool(true).Convert(DimAxis3D)
	if xyz := v.AsAxis3D(); !approx(xyz.X, 1) || !approx(xyz.Y, 0) {
		t.Errorf("Bool(true) to Axis3D = %v, want (1, 0, 0)", xyz)
	}
}

func TestNarrowing(t *testing.T) {
	if got := Axis3D(4, 5, 6).Convert(DimAxis1D); !approx(got.AsAxis1D(), 4) {
		t.Errorf("Axis3D(4,5,6) to Axis1D = %v, want 4", got)
	}
	if got := Axis2D(7, 8).Convert(DimAxis1D); !approx(got.AsAxis1D(), 7) {
		t.Errorf("Axis2D(7,8) to Axis1D = %v, want 7", got)
	}
	xy := Axis3D(1, 2, 3).Convert(DimAxis2D).AsAxis2D()
	if !approx(xy.X, 1) || !approx(xy.Y, 2) {
		t.Errorf("Axis3D(1,2,3) to Axis2D = %v, want (1, 2)", xy)
	}

	// A zero-x vector still counts as actuated for Bool.
	if !Axis2D(0, 1).Convert(DimBool).AsBool() {
		t.Error("Axis2D(0,1) should convert to true")
	}
}

func TestConvertIdentity(t *testing.T) {
	v := Axis2D(1, 2)
	if got := v.Convert(DimAxis2D); got != v {
		t.Errorf("identity conversion changed value: %v", got)
	}
}

func TestAdd(t *testing.T) {
	sum := Axis2D(1, 0).Add(Axis2D(-1, 0))
	if xy := sum.AsAxis2D(); !approx(xy.X, 0) || !approx(xy.Y, 0) {
		t.Errorf("opposite values should cancel, got %v", xy)
	}

	sum = Axis1D(1).Add(Axis2D(0, 2))
	if sum.Dim() != DimAxis2D {
		t.Errorf("Add should take wider dimension, got %v", sum.Dim())
	}
	if xy := sum.AsAxis2D(); !approx(xy.X, 1) || !approx(xy.Y, 2) {
		t.Errorf("Axis1D(1) + Axis2D(0,2) = %v, want (1, 2)", xy)
	}
}

func TestMagnitudeActuated(t *testing.T) {
	if !approx(Axis2D(3, 4).Magnitude(), 5) {
		t.Errorf("Magnitude(3,4) = %v, want 5", Axis2D(3, 4).Magnitude())
	}
	if !Bool(true).Actuated(0.5) {
		t.Error("Bool(true) should be actuated at 0.5")
	}
	if Axis1D(0.5).Actuated(0.5) {
		t.Error("threshold is exclusive")
	}
}

func TestClampLength(t *testing.T) {
	v := Axis2D(3, 4).ClampLength(1)
	if !approx(v.Magnitude(), 1) {
		t.Errorf("clamped magnitude = %v, want 1", v.Magnitude())
	}
	xy := v.AsAxis2D()
	if !approx(xy.X, 0.6) || !approx(xy.Y, 0.8) {
		t.Errorf("clamp should preserve direction, got %v", xy)
	}

	v = Axis2D(0.3, 0.4)
	if got := v.ClampLength(1); got != v {
		t.Errorf("under-limit value should be unchanged, got %v", got)
	}
}

func TestZero(t *testing.T) {
	for _, dim := range []Dim{DimBool, DimAxis1D, DimAxis2D, DimAxis3D} {
		z := Zero(dim)
		if z.Dim() != dim {
			t.Errorf("Zero(%v).Dim() = %v", dim, z.Dim())
		}
		if z.AsBool() {
			t.Errorf("Zero(%v) should not be actuated", dim)
		}
	}
}

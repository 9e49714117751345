package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/actionflow/internal/input/value"
)

// toLua converts an action value to a Lua table.
func toLua(L *lua.LState, v value.Value) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("dim", lua.LString(v.Dim().String()))
	xyz := v.AsAxis3D()
	tbl.RawSetString("x", lua.LNumber(xyz.X))
	tbl.RawSetString("y", lua.LNumber(xyz.Y))
	tbl.RawSetString("z", lua.LNumber(xyz.Z))
	tbl.RawSetString("actuated", lua.LBool(v.AsBool()))
	return tbl
}

// fromLua converts a Lua return into an action value. Numbers become
// Axis1D, booleans become Bool, and tables are read component-wise
// with an optional dim field.
func fromLua(lv lua.LValue, fallback value.Value) value.Value {
	switch v := lv.(type) {
	case lua.LBool:
		return value.Bool(bool(v))
	case lua.LNumber:
		return value.Axis1D(float64(v))
	case *lua.LTable:
		x := tableNum(v, "x")
		y := tableNum(v, "y")
		z := tableNum(v, "z")
		dim := value.DimAxis3D
		if d, ok := v.RawGetString("dim").(lua.LString); ok {
			dim = dimFromName(string(d))
		}
		return value.Axis3D(x, y, z).Convert(dim)
	default:
		return fallback
	}
}

func tableNum(tbl *lua.LTable, field string) float64 {
	if n, ok := tbl.RawGetString(field).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func dimFromName(name string) value.Dim {
	switch name {
	case "bool":
		return value.DimBool
	case "axis1d":
		return value.DimAxis1D
	case "axis2d":
		return value.DimAxis2D
	default:
		return value.DimAxis3D
	}
}

package modifier

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/actionflow/internal/input/value"
)

// Factory builds a modifier from configuration arguments.
type Factory func(args map[string]any) (Modifier, error)

// registry maps modifier kind names to factories. Host applications
// (and the Lua plugin) register custom kinds here.
var registry = struct {
	mu    sync.RWMutex
	kinds map[string]Factory
}{kinds: make(map[string]Factory)}

// Register adds a modifier kind. Registering an existing kind replaces
// its factory.
func Register(kind string, f Factory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.kinds[kind] = f
}

// New builds a modifier of the given kind.
func New(kind string, args map[string]any) (Modifier, error) {
	registry.mu.RLock()
	f, ok := registry.kinds[kind]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown modifier kind %q", kind)
	}
	return f(args)
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.kinds))
	for name := range registry.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("scale", func(args map[string]any) (Modifier, error) {
		return Scale{Factor: value.Vec3{
			X: floatArg(args, "x", 1),
			Y: floatArg(args, "y", 1),
			Z: floatArg(args, "z", 1),
		}}, nil
	})
	Register("delta_scale", func(map[string]any) (Modifier, error) {
		return DeltaScale{}, nil
	})
	Register("negate", func(args map[string]any) (Modifier, error) {
		return Negate{
			X: boolArg(args, "x", true),
			Y: boolArg(args, "y", true),
			Z: boolArg(args, "z", true),
		}, nil
	})
	Register("dead_zone", func(args map[string]any) (Modifier, error) {
		return DeadZone{
			Lower: floatArg(args, "lower", 0.2),
			Upper: floatArg(args, "upper", 1.0),
		}, nil
	})
	Register("clamp", func(args map[string]any) (Modifier, error) {
		limit := floatArg(args, "limit", 1.0)
		return ClampSymmetric(limit), nil
	})
}

// floatArg reads a numeric argument, accepting the types TOML and Lua
// bridges produce.
func floatArg(args map[string]any, name string, def float64) float64 {
	switch v := args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

func boolArg(args map[string]any, name string, def bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

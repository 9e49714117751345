package condition

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Factory builds a condition from configuration arguments.
type Factory func(args map[string]any) (Condition, error)

// registry maps condition kind names to factories. Host applications
// (and the Lua plugin) register custom kinds here.
var registry = struct {
	mu    sync.RWMutex
	kinds map[string]Factory
}{kinds: make(map[string]Factory)}

// Register adds a condition kind. Registering an existing kind replaces
// its factory.
func Register(kind string, f Factory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.kinds[kind] = f
}

// New builds a condition of the given kind. Stateful conditions are
// built fresh on every call, so instances are never shared.
func New(kind string, args map[string]any) (Condition, error) {
	registry.mu.RLock()
	f, ok := registry.kinds[kind]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown condition kind %q", kind)
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
	Register("down", func(args map[string]any) (Condition, error) {
		return &Down{Actuation: floatArg(args, "actuation", 0)}, nil
	})
	Register("press", func(args map[string]any) (Condition, error) {
		return &Press{Actuation: floatArg(args, "actuation", 0)}, nil
	})
	Register("release", func(args map[string]any) (Condition, error) {
		return &Release{Actuation: floatArg(args, "actuation", 0)}, nil
	})
	Register("hold", func(args map[string]any) (Condition, error) {
		return &Hold{
			HoldTime:  durationArg(args, "hold_secs", time.Second),
			OneShot:   boolArg(args, "one_shot", false),
			Actuation: floatArg(args, "actuation", 0),
		}, nil
	})
	Register("tap", func(args map[string]any) (Condition, error) {
		return &Tap{
			TapTime:   durationArg(args, "tap_secs", 200*time.Millisecond),
			Actuation: floatArg(args, "actuation", 0),
		}, nil
	})
	Register("chord", func(args map[string]any) (Condition, error) {
		name, ok := args["action"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("chord requires an %q argument", "action")
		}
		return &Chord{Action: name}, nil
	})
	Register("block_by", func(args map[string]any) (Condition, error) {
		name, ok := args["action"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("block_by requires an %q argument", "action")
		}
		return &BlockBy{Action: name}, nil
	})
}

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

// durationArg reads a seconds argument into a duration.
func durationArg(args map[string]any, name string, def time.Duration) time.Duration {
	switch v := args[name].(type) {
	case float64:
		return time.Duration(v * float64(time.Second))
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	default:
		return def
	}
}

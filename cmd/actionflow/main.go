// Package main is a terminal demo of the action evaluation pipeline:
// it binds a few actions to keyboard, mouse, and gamepad sources,
// evaluates them every tick, and prints their values and states.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionflow/internal/config"
	"github.com/dshills/actionflow/internal/input/binding"
	"github.com/dshills/actionflow/internal/input/condition"
	"github.com/dshills/actionflow/internal/input/context"
	"github.com/dshills/actionflow/internal/input/device"
	"github.com/dshills/actionflow/internal/input/key"
	"github.com/dshills/actionflow/internal/input/modifier"
	"github.com/dshills/actionflow/internal/input/value"
	"github.com/dshills/actionflow/internal/source/joystick"
	"github.com/dshills/actionflow/internal/source/term"
)

// padFeed drains one gamepad's queued events into the snapshot and
// reports whether the device is still connected.
type padFeed interface {
	Apply(*device.Snapshot) bool
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "actionflow.toml", "settings file path")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Settings swaps apply at the next frame boundary.
	var current atomic.Pointer[config.Settings]
	current.Store(&settings)
	if w, err := config.Watch(*configPath, func(s config.Settings) {
		current.Store(&s)
	}); err == nil {
		defer func() { _ = w.Close() }()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Diagnostics go to the void while the screen owns the terminal.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	snap := device.NewSnapshot()
	adapter := term.New(snap, settings.KeyDecay())
	ctx := demoContext(settings)
	pads := openPads()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(settings.Tick())
	defer ticker.Stop()
	last := time.Now()

	// Terminal events buffer until the next tick: Advance begins the
	// frame by zeroing motion and wheel accumulators, so applying
	// events any earlier would lose their deltas before evaluation.
	var pending []tcell.Event
	for {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyEscape {
				close(quit)
				return 0
			}
			pending = append(pending, ev)
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			adapter.SetDecay(current.Load().KeyDecay())
			pads = step(snap, adapter, ctx, pads, pending, delta)
			pending = pending[:0]
			draw(screen, ctx)
		}
	}
}

// step runs one frame: begin it on the snapshot, apply buffered
// terminal events, decay held keys, drain gamepads, then evaluate.
// Disconnected pads are dropped from the returned slice.
func step(snap *device.Snapshot, adapter *term.Adapter, ctx *context.Context, pads []padFeed, pending []tcell.Event, delta time.Duration) []padFeed {
	snap.Advance(delta)
	for _, ev := range pending {
		adapter.HandleEvent(ev)
	}
	adapter.Tick(delta)
	live := pads[:0]
	for _, p := range pads {
		if p.Apply(snap) {
			live = append(live, p)
		}
	}
	ctx.Evaluate(snap)
	return live
}

// openPads starts a reader for every joystick present at startup.
func openPads() []padFeed {
	paths, err := joystick.Scan()
	if err != nil {
		slog.Warn("scanning joysticks", "error", err)
		return nil
	}
	var pads []padFeed
	for _, path := range paths {
		r, err := joystick.Open(path)
		if err != nil {
			slog.Warn("opening joystick", "path", path, "error", err)
			continue
		}
		pads = append(pads, r)
	}
	return pads
}

// demoContext builds a small showcase context: WASD movement, a tap
// jump, a hold-to-charge, a chorded dash, wheel zoom, and stick aim.
func demoContext(s config.Settings) *context.Context {
	ctx := context.New("demo")

	ctx.Bind(binding.New("move", value.DimAxis2D).
		ToEntries(binding.Cardinal(
			binding.Keyboard(key.KeyW),
			binding.Keyboard(key.KeyD),
			binding.Keyboard(key.KeyS),
			binding.Keyboard(key.KeyA),
		)...).
		Normalized().
		When(&condition.Down{Actuation: s.Actuation}))

	ctx.Bind(binding.New("jump", value.DimBool).
		To(binding.Keyboard(key.KeySpace)).
		When(&condition.Tap{TapTime: s.TapTime(), Actuation: s.Actuation}))

	ctx.Bind(binding.New("charge", value.DimBool).
		To(binding.MouseButton(device.MouseLeft)).
		When(&condition.Hold{HoldTime: s.HoldTime(), Actuation: s.Actuation}))

	// Dash fires only while move does, via chord inheritance.
	ctx.Bind(binding.New("dash", value.DimBool).
		To(binding.Keyboard(key.KeyE)).
		When(&condition.Down{Actuation: s.Actuation}, &condition.Chord{Action: "move"}))

	ctx.Bind(binding.New("zoom", value.DimAxis1D).
		To(binding.MouseWheel()).
		With(modifier.SwizzleAxis{Order: modifier.OrderYXZ}, modifier.ScaleSplat(0.1)))

	ctx.Bind(binding.New("aim", value.DimAxis2D).
		ToEntries(binding.Axial(
			binding.PadAxis(device.AxisLeftStickX),
			binding.PadAxis(device.AxisLeftStickY),
		)...).
		With(modifier.DeadZone{Lower: s.DeadZoneLower, Upper: s.DeadZoneUpper}))

	return ctx
}

func draw(screen tcell.Screen, ctx *context.Context) {
	screen.Clear()
	style := tcell.StyleDefault
	puts(screen, 0, 0, "actionflow demo - WASD move, Space tap, LMB hold, E+move dash, wheel zoom, stick aim, Esc quits", style)

	row := 2
	for _, name := range ctx.Actions().Names() {
		a, ok := ctx.Action(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-8s %-8s %-28s held %5.2fs", name, a.State(), a.Value(), a.HeldFor().Seconds())
		puts(screen, 0, row, line, style)
		row++
	}
	screen.Show()
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

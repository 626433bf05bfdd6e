package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"mad-fire/internal/core"

	"github.com/gdamore/tcell/v2"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type tickProvider interface {
	Tick() int
}

// StatusRows is the number of terminal rows the loop reserves for its
// status line.
const StatusRows = 1

// minPoll bounds the ticker period for very high tick rates.
const minPoll = time.Millisecond

// Loop runs a simulation on a tcell screen. Key bindings follow the GUI:
// q/Esc quit, space pauses, Enter resumes, n steps once, r resets with the
// current seed and s reseeds from the clock.
type Loop struct {
	screen   tcell.Screen
	sim      core.Sim
	renderer *Renderer
	step     *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64
}

// NewLoop prepares a loop drawing sim on screen at tps ticks per second.
func NewLoop(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Loop {
	var pal []color.RGBA
	if p, ok := sim.(paletteProvider); ok {
		pal = p.Palette()
	}
	return &Loop{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(pal),
		step:     core.NewFixedStep(tps),
		seed:     seed,
	}
}

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// HandleKey applies a key press and reports whether the loop should exit.
func (l *Loop) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		l.paused = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			l.paused = !l.paused
		case 'n':
			l.tickOnce = true
		case 'r':
			l.reset(l.seed)
		case 's':
			l.reset(time.Now().UnixNano())
		}
	}
	return false
}

func (l *Loop) reset(seed int64) {
	l.seed = seed
	l.sim.Reset(seed)
	l.tickOnce = false
}

// Frame draws the current generation and then advances the sim if it is
// running or a single step was requested.
func (l *Loop) Frame() {
	l.screen.Clear()
	size := l.sim.Size()
	l.renderer.Draw(l.screen, l.sim.Cells(), size)
	l.drawStatus(Rows(size.H))
	l.screen.Show()

	if !l.paused || l.tickOnce {
		l.sim.Step()
		l.tickOnce = false
	}
}

func (l *Loop) drawStatus(row int) {
	_, sh := l.screen.Size()
	if row >= sh {
		return
	}
	state := "running"
	if l.paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s %s", l.sim.Name(), state)
	if tp, ok := l.sim.(tickProvider); ok {
		line += fmt.Sprintf(" tick %d", tp.Tick())
	}
	line += "  [space] pause  [n] step  [r] reset  [s] reseed  [q] quit"
	DrawText(l.screen, 0, row, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// Run drives the loop until ctx is done or a quit key is pressed. Events are
// read on a separate goroutine; the sim is only touched here.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	// Poll faster than the tick rate so FixedStep absorbs ticker jitter.
	ticker := time.NewTicker(max(l.step.Interval()/2, minPoll))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if l.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				l.screen.Sync()
			}
		case <-ticker.C:
			if l.step.ShouldStep() {
				l.Frame()
			}
		}
	}
}

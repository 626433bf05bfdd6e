// Package ui draws the parameter panel next to the simulation view.
package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"mad-fire/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 28
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 2*infoSpacing
)

// controlState tracks one HUD control and its clickable buttons.
type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the platform-independent half of the HUD: values,
// layout and adjustments.
type controlPanel struct {
	width    int
	title    string
	controls []controlState
	setter   core.IntParameterSetter
}

func newControlPanel(sim core.Sim, width int) *controlPanel {
	p := &controlPanel{width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.setter = setter
	}
	p.layout()
	return p
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// refresh copies current values out of snap.
func (p *controlPanel) refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		param, ok := snap.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value = parsed
		state.hasValue = true
	}
}

func (p *controlPanel) layout() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// target returns the value one step in direction, and whether it differs
// from the current value once clamped.
func (s *controlState) target(direction int) (int, bool) {
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	t := s.value + direction*step
	t = max(s.control.Min, min(s.control.Max, t))
	return t, t != s.value
}

func (p *controlPanel) canAdjust(s *controlState, direction int) bool {
	if p.setter == nil || !s.hasValue {
		return false
	}
	_, changed := s.target(direction)
	return changed
}

func (p *controlPanel) adjust(s *controlState, direction int) bool {
	if !p.canAdjust(s, direction) {
		return false
	}
	t, _ := s.target(direction)
	if !p.setter.SetIntParameter(s.control.Key, t) {
		return false
	}
	s.value = t
	return true
}

// click applies a button press at panel-relative (x, y).
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (s *controlState) label() string {
	if !s.hasValue {
		return "--"
	}
	return strconv.Itoa(s.value)
}

func statusLine(paused bool, snap core.ParameterSnapshot) string {
	state := "running"
	if paused {
		state = "paused"
	}
	if tick, ok := snap.Lookup("tick"); ok {
		return fmt.Sprintf("%s  tick %s", state, tick.Value)
	}
	return state
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

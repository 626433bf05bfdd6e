package ui

import (
	"testing"

	"mad-fire/internal/sims/fire"
)

func newPanel(t *testing.T) (*controlPanel, *fire.Fire) {
	t.Helper()
	sim, err := fire.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	p := newControlPanel(sim, 220)
	p.refresh(sim.Parameters())
	return p, sim
}

func findControl(t *testing.T, p *controlPanel, key string) *controlState {
	t.Helper()
	for i := range p.controls {
		if p.controls[i].control.Key == key {
			return &p.controls[i]
		}
	}
	t.Fatalf("no control %q", key)
	return nil
}

func TestPanelReadsSnapshot(t *testing.T) {
	p, _ := newPanel(t)
	if p.title != "Fire Controls" {
		t.Fatalf("title = %q", p.title)
	}
	odds := findControl(t, p, "spark_odds")
	if !odds.hasValue || odds.value != 32 || odds.label() != "32" {
		t.Fatalf("spark_odds state = %+v", odds)
	}
}

func TestPanelClickAdjusts(t *testing.T) {
	p, sim := newPanel(t)
	pilot := findControl(t, p, "pilot")

	plus := pilot.plusRect.Min
	if !p.click(plus.X+1, plus.Y+1) {
		t.Fatal("click on + did not adjust")
	}
	if got := sim.Config().Params.Pilot; got != 15 {
		t.Fatalf("pilot = %d, expected 15", got)
	}

	minus := pilot.minusRect.Min
	p.click(minus.X+1, minus.Y+1)
	p.click(minus.X+1, minus.Y+1)
	if got := sim.Config().Params.Pilot; got != 13 {
		t.Fatalf("pilot = %d, expected 13", got)
	}

	if p.click(0, 0) {
		t.Fatal("click outside buttons should do nothing")
	}
}

func TestPanelStopsAtBounds(t *testing.T) {
	p, sim := newPanel(t)
	workers := findControl(t, p, "workers")
	if p.canAdjust(workers, -1) {
		t.Fatal("workers already at minimum")
	}
	if p.adjust(workers, -1) {
		t.Fatal("adjust past minimum should fail")
	}
	if sim.Config().Params.Workers != 1 {
		t.Fatalf("workers = %d", sim.Config().Params.Workers)
	}
}

func TestStatusLine(t *testing.T) {
	_, sim := newPanel(t)
	sim.Step()
	if got := statusLine(true, sim.Parameters()); got != "paused  tick 1" {
		t.Fatalf("statusLine = %q", got)
	}
}

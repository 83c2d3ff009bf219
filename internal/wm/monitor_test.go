package wm

import "testing"

func TestDiscoverySyntheticMonitor(t *testing.T) {
	w, r, _ := newTestWM(t)

	if w.monitors == nil || w.monitors.next != nil {
		t.Fatalf("no outputs must yield exactly one monitor")
	}
	m := w.monitors
	if m.width != r.rootW || m.height != r.rootH || !m.primary {
		t.Fatalf("synthetic monitor = %+v", m)
	}
	if w.selected != m {
		t.Fatalf("the synthetic monitor must be selected")
	}
}

func TestDiscoveryFirstOutputIsPrimary(t *testing.T) {
	r := newRecorder()
	r.outputs = []Output{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	w := New(r, &spawnRecorder{}, testOptions())
	if err := w.Startup(); err != nil {
		t.Fatalf("startup: %v", err)
	}

	if !w.monitors.primary || w.monitors.next.primary {
		t.Fatalf("only the first output may be primary")
	}
	if w.selected != w.monitors {
		t.Fatalf("the first output must be selected")
	}
	if len(r.bars) != 2 {
		t.Fatalf("every monitor gets its own bar, got %d", len(r.bars))
	}
}

func TestMonitorFor(t *testing.T) {
	r := newRecorder()
	r.outputs = []Output{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	r.origins[10] = [2]int{100, 100}
	r.origins[11] = [2]int{2000, 50}
	w := New(r, &spawnRecorder{}, testOptions())
	if err := w.Startup(); err != nil {
		t.Fatalf("startup: %v", err)
	}

	if got := w.monitorFor(r.root); got != w.selected {
		t.Fatalf("the root window must resolve to the selected monitor")
	}
	if got := w.monitorFor(10); got != w.monitors {
		t.Fatalf("window 10 must resolve to the first monitor")
	}
	if got := w.monitorFor(11); got != w.monitors.next {
		t.Fatalf("window 11 must resolve to the second monitor")
	}
	// Unknown geometry falls back to the selected monitor.
	if got := w.monitorFor(99); got != w.selected {
		t.Fatalf("unknown windows must resolve to the selected monitor")
	}
}

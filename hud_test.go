package orbital

import (
	"strings"
	"testing"
)

func TestHUDText(t *testing.T) {
	s := newTestScene(t, Config{})
	s.AddOrbital(at(Quantum3d, false))
	text := hudText(s)
	if !strings.Contains(text, "0: 3d m=0 -") {
		t.Errorf("orbital line missing: %q", text)
	}
	if strings.Contains(text, "next:") {
		t.Errorf("unexpected staged note: %q", text)
	}

	if err := s.SetResolution(7); err != nil {
		t.Fatal(err)
	}
	if text := hudText(s); !strings.Contains(text, "(next: res 7") {
		t.Errorf("staged note missing: %q", text)
	}
}

func TestHUDGraphFollowsFirstOrbital(t *testing.T) {
	s := newTestScene(t, Config{})
	var h hud
	h.update(s, 0)
	if h.quantum != QuantumNone || h.lines == 0 {
		t.Errorf("empty scene hud = %+v", h)
	}

	s.AddOrbital(at(Quantum2s, true))
	h.update(s, hudRefresh)
	if h.quantum != Quantum2s || len(h.samples) != graphSamples+1 || h.peak <= 0 {
		t.Errorf("hud quantum %v, %d samples, peak %v", h.quantum, len(h.samples), h.peak)
	}

	// Text refreshes are throttled.
	s.AddOrbital(at(Quantum1s, true))
	before := h.text
	h.update(s, hudRefresh/10)
	if h.text != before {
		t.Error("hud text refreshed before the interval")
	}
}

package orbital

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD layout.
const (
	hudRefresh    = 0.5 // seconds between text refreshes
	graphW        = 160
	graphH        = 60
	graphSamples  = 64
	graphMaxX     = 20.0
	hudLineHeight = 16
)

// hud holds the overlay text and the radial graph samples. Text is
// rebuilt about twice a second.
type hud struct {
	since   float64
	text    string
	lines   int
	quantum Quantum
	samples [][2]float64
	peak    float64
}

func (h *hud) update(s *Scene, dt float64) {
	h.since += dt
	if h.text != "" && h.since < hudRefresh {
		return
	}
	h.since = 0
	h.text = hudText(s)
	h.lines = strings.Count(h.text, "\n") + 1

	q := QuantumNone
	if len(s.orbitals) > 0 {
		q = s.orbitals[0].Quantum
	}
	if q != h.quantum || h.samples == nil {
		h.quantum = q
		h.samples = RadialSamples(q, graphSamples, graphMaxX)
		h.peak = 0
		for _, p := range h.samples {
			h.peak = max(h.peak, p[1])
		}
	}
}

// hudText formats the status lines shown in the overlay.
func hudText(s *Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "pass %d  %3.0f%%  quads %d\n", s.Passes()+1, s.Progress()*100, len(s.committed))
	fmt.Fprintf(&b, "res %d  size %.0f", s.Resolution(), s.Size())
	if s.resolution != s.Resolution() || s.size != s.Size() {
		fmt.Fprintf(&b, "  (next: res %d  size %.0f)", s.resolution, s.size)
	}
	for i, o := range s.orbitals {
		phase := "+"
		if !o.Phase {
			phase = "-"
		}
		fmt.Fprintf(&b, "\n%d: %s m=%d %s", i, o.Quantum.Name(), o.Magnetic, phase)
	}
	return b.String()
}

func (h *hud) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, h.text)
	if h.quantum == QuantumNone || h.peak <= 0 || len(h.samples) < 2 {
		return
	}

	x0 := float32(4)
	y0 := float32(h.lines*hudLineHeight + 8)
	vector.DrawFilledRect(screen, x0, y0, graphW, graphH, color.RGBA{0, 0, 0, 128}, false)
	line := color.RGBA{R: 0x7a, G: 0xc8, B: 0xff, A: 0xff}
	for i := 1; i < len(h.samples); i++ {
		a, b := h.samples[i-1], h.samples[i]
		vector.StrokeLine(screen,
			x0+float32(a[0]/graphMaxX)*graphW, y0+graphH-float32(a[1]/h.peak)*graphH,
			x0+float32(b[0]/graphMaxX)*graphW, y0+graphH-float32(b[1]/h.peak)*graphH,
			1, line, true)
	}
}

package orbital

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// View animation settings for the axis shortcuts.
const (
	viewDuration = 0.6 // seconds
	zoomStep     = 0.5 // world units per wheel notch
)

// inputState tracks the cursor between frames for drag deltas.
type inputState struct {
	lastX, lastY int
	tracking     bool
}

// frameInput is one frame of user input, decoupled from ebiten so the
// mapping onto the scene can be driven directly.
type frameInput struct {
	dx, dy         float32
	orbit, pan     bool
	wheel          float32
	viewX, viewY   bool
	viewZ          bool
	restart        bool
	resUp, resDn   bool
	sizeUp, sizeDn bool
	screenshot     bool
}

// pollInput reads the ebiten input state for this frame.
func (s *Scene) pollInput() frameInput {
	var in frameInput
	mx, my := ebiten.CursorPosition()
	if s.input.tracking {
		in.dx = float32(mx - s.input.lastX)
		in.dy = float32(my - s.input.lastY)
	}
	s.input.lastX, s.input.lastY = mx, my
	s.input.tracking = true

	in.orbit = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.pan = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if s.camera.Viewport.Contains(float64(mx), float64(my)) {
		_, wy := ebiten.Wheel()
		in.wheel = float32(wy)
	}

	in.viewX = inpututil.IsKeyJustPressed(ebiten.Key1)
	in.viewY = inpututil.IsKeyJustPressed(ebiten.Key2)
	in.viewZ = inpututil.IsKeyJustPressed(ebiten.Key3)
	in.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.resUp = inpututil.IsKeyJustPressed(ebiten.KeyEqual)
	in.resDn = inpututil.IsKeyJustPressed(ebiten.KeyMinus)
	in.sizeUp = inpututil.IsKeyJustPressed(ebiten.KeyBracketRight)
	in.sizeDn = inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft)
	in.screenshot = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	return in
}

// applyInput maps one frame of input onto the camera and staged settings.
// Right drag orbits, middle drag pans, the wheel zooms. Keys 1, 2 and 3
// swing the view onto the x, y and z axes.
func (s *Scene) applyInput(in frameInput) {
	cam := s.camera
	if in.orbit && (in.dx != 0 || in.dy != 0) {
		cam.Orbit(in.dx, in.dy)
	}
	if in.pan && (in.dx != 0 || in.dy != 0) {
		cam.Pan(-in.dx, in.dy)
	}
	if in.wheel != 0 {
		cam.Zoom(-in.wheel * zoomStep)
	}

	switch {
	case in.viewX:
		cam.OrbitTo(90, 90, viewDuration, ease.InOutCubic)
	case in.viewY:
		cam.OrbitTo(0, 5, viewDuration, ease.InOutCubic)
	case in.viewZ:
		cam.OrbitTo(0, 90, viewDuration, ease.InOutCubic)
	}

	// Steps clamp to the allowed ranges.
	if in.resUp {
		s.resolution = min(s.resolution+1, MaxResolution)
	}
	if in.resDn {
		s.resolution = max(s.resolution-1, MinResolution)
	}
	if in.sizeUp {
		s.size = min(s.size+1, MaxSize)
	}
	if in.sizeDn {
		s.size = max(s.size-1, MinSize)
	}
	if in.restart {
		s.Restart()
	}
	if in.screenshot {
		s.Screenshot("capture")
	}
}

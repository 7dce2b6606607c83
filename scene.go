package orbital

import (
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional pass notifications. When set on
// a Scene, every committed pass is reported to it.
type EventSink interface {
	EmitPass(event PassEvent)
}

// PassEvent describes a pass that has just been committed.
type PassEvent struct {
	// Pass counts committed passes, starting at 1.
	Pass       uint64
	Instances  int
	Accepted   int
	Steps      int
	ScanTime   time.Duration
	Resolution int
	Size       float32
	// Phase is the animation parameter in effect for the pass.
	Phase float32
}

// Scene drives the incremental compiler once per frame. It owns the
// editable orbital list, the frozen snapshot of the pass in progress, the
// quads accumulated so far and the committed set that is drawn.
//
// Edits to orbitals, resolution and size are staged and take effect at
// the next pass boundary, so a pass never sees mid-pass changes.
type Scene struct {
	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg    Config
	camera *Camera
	sink   EventSink
	debug  bool

	// Staged values, applied when a pass starts.
	orbitals   []Orbital
	resolution int
	size       float32

	// Pass in progress.
	pass     Pass
	cursor   Cursor
	pending  []Instance
	steps    int
	scanTime time.Duration
	maxStep  time.Duration

	// Last committed pass.
	committed    []InstanceRaw
	committedRes int
	passes       uint64
	phase        float32

	updateFunc func() error

	// Render buffers, reused across frames.
	batchVerts []ebiten.Vertex
	batchInds  []uint32

	input       inputState
	injectQueue []frameInput
	testRunner  *TestRunner

	screenshotQueue []string
}

// NewScene creates a scene with the given configuration and starts the
// first pass with no orbitals.
func NewScene(cfg Config) (*Scene, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	s := &Scene{
		ClearColor:    Color{0.01, 0.01, 0.01, 1},
		ScreenshotDir: "screenshots",
		cfg:           cfg,
		camera:        NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		resolution:    cfg.Resolution,
		size:          cfg.Size,
	}
	s.beginPass()
	return s, nil
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Orbitals returns a copy of the staged orbital list.
func (s *Scene) Orbitals() []Orbital {
	return slices.Clone(s.orbitals)
}

// SetOrbitals replaces the staged orbital list. The pass in progress keeps
// scanning its snapshot; the next pass uses the new list.
func (s *Scene) SetOrbitals(orbitals []Orbital) {
	s.orbitals = slices.Clone(orbitals)
}

// AddOrbital appends an orbital to the staged list.
func (s *Scene) AddOrbital(o Orbital) {
	s.orbitals = append(s.orbitals, o)
}

// SetOrbital replaces the staged orbital at index i.
func (s *Scene) SetOrbital(i int, o Orbital) error {
	if i < 0 || i >= len(s.orbitals) {
		return fmt.Errorf("set orbital %d of %d: index out of range", i, len(s.orbitals))
	}
	s.orbitals[i] = o
	return nil
}

// RemoveOrbital deletes the staged orbital at index i.
func (s *Scene) RemoveOrbital(i int) error {
	if i < 0 || i >= len(s.orbitals) {
		return fmt.Errorf("remove orbital %d of %d: index out of range", i, len(s.orbitals))
	}
	s.orbitals = slices.Delete(s.orbitals, i, i+1)
	return nil
}

// Resolution returns the resolution of the pass in progress.
func (s *Scene) Resolution() int {
	return s.pass.Resolution
}

// Size returns the size control of the pass in progress.
func (s *Scene) Size() float32 {
	return s.pass.LengthScale * sizePerLength
}

// StagedResolution returns the resolution the next pass will use.
func (s *Scene) StagedResolution() int {
	return s.resolution
}

// StagedSize returns the size the next pass will use.
func (s *Scene) StagedSize() float32 {
	return s.size
}

// SetResolution stages a new resolution for the next pass.
func (s *Scene) SetResolution(res int) error {
	if err := validateResolution(res); err != nil {
		return err
	}
	s.resolution = res
	return nil
}

// SetSize stages a new size for the next pass.
func (s *Scene) SetSize(size float32) error {
	if err := validateSize(size); err != nil {
		return err
	}
	s.size = size
	return nil
}

// SetEventSink sets the optional pass notification target.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a callback invoked once per Update before the scan
// step. A returned error stops the update and is passed on.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-pass
// timing stats and budget overruns are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Restart abandons the pass in progress. Its accumulated quads are dropped
// and a new pass starts from the current staged values. The committed set
// stays on screen.
func (s *Scene) Restart() {
	s.beginPass()
}

// Instances returns the committed quads. The returned slice MUST NOT be
// mutated.
func (s *Scene) Instances() []InstanceRaw {
	return s.committed
}

// Passes returns the number of committed passes.
func (s *Scene) Passes() uint64 {
	return s.passes
}

// Phase returns the pass-to-pass animation parameter.
func (s *Scene) Phase() float32 {
	return s.phase
}

// Progress returns the fraction of the current pass scanned so far.
func (s *Scene) Progress() float64 {
	res := s.pass.Resolution
	span := EndIndex(res) - StartIndex(res)
	return float64(s.cursor.Next-StartIndex(res)) / float64(span)
}

// Update advances camera animation and scans the next part of the pass
// within the configured budget. When the pass completes its quads are
// committed and the next pass starts.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.camera.update(dt)

	if s.testRunner != nil {
		if err := s.testRunner.step(s); err != nil {
			return err
		}
	}
	s.processInjectedInput()

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	t0 := time.Now()
	quads, cur, err := Step(s.cursor, s.pass, s.cfg.Budget, s.cfg.Clock)
	if err != nil {
		return fmt.Errorf("scan step: %w", err)
	}
	elapsed := time.Since(t0)

	s.pending = append(s.pending, quads...)
	s.cursor = cur
	s.steps++
	s.scanTime += elapsed
	s.maxStep = max(s.maxStep, elapsed)
	if s.debug {
		debugCheckStep(elapsed, s.cfg.Budget)
	}

	if cur.Done(s.pass.Resolution) {
		s.commit()
	}
	return nil
}

// commit publishes the finished pass and starts the next one.
func (s *Scene) commit() {
	raw := make([]InstanceRaw, len(s.pending))
	for i := range s.pending {
		raw[i] = s.pending[i].Raw()
	}
	s.committed = raw
	s.committedRes = s.pass.Resolution
	s.passes++

	event := PassEvent{
		Pass:       s.passes,
		Instances:  len(raw),
		Accepted:   s.cursor.Accepted(),
		Steps:      s.steps,
		ScanTime:   s.scanTime,
		Resolution: s.pass.Resolution,
		Size:       s.Size(),
		Phase:      s.phase,
	}
	if s.debug {
		s.debugLog(passStats{event: event, maxStep: s.maxStep})
	}
	if s.sink != nil {
		s.sink.EmitPass(event)
	}

	if s.cfg.Spin != 0 {
		s.phase += s.cfg.Spin
		for i := range s.orbitals {
			s.orbitals[i].Rotate(Euler{Yaw: s.cfg.Spin})
		}
	}
	s.beginPass()
}

// beginPass freezes the staged values and the viewer into a new pass.
func (s *Scene) beginPass() {
	s.pass = Pass{
		Orbitals:    slices.Clone(s.orbitals),
		Viewer:      s.camera.Snapshot(),
		Resolution:  s.resolution,
		LengthScale: LengthScale(s.size),
	}
	s.cursor = NewCursor(s.resolution)
	s.pending = s.pending[:0]
	s.steps = 0
	s.scanTime = 0
	s.maxStep = 0
}

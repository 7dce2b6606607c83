package orbital

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// newTestScene builds a scene whose scan clock never advances unless cfg
// supplies one, so every Update finishes the pass in progress.
func newTestScene(t *testing.T, cfg Config) *Scene {
	t.Helper()
	if cfg.Clock == nil {
		cfg.Clock = frozenClock()
	}
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// runPass updates until one more pass has been committed.
func runPass(t *testing.T, s *Scene) {
	t.Helper()
	want := s.Passes() + 1
	for i := 0; s.Passes() < want; i++ {
		if i > 1000 {
			t.Fatal("pass did not complete")
		}
		if err := s.Update(); err != nil {
			t.Fatal(err)
		}
	}
}

type recordingSink struct {
	events []PassEvent
}

func (r *recordingSink) EmitPass(e PassEvent) {
	r.events = append(r.events, e)
}

func TestNewSceneDefaults(t *testing.T) {
	s, err := NewScene(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Resolution() != DefaultResolution {
		t.Errorf("Resolution() = %d, want %d", s.Resolution(), DefaultResolution)
	}
	if s.Size() != DefaultSize {
		t.Errorf("Size() = %v, want %v", s.Size(), DefaultSize)
	}
	if s.cfg.Budget != DefaultBudget {
		t.Errorf("Budget = %v, want %v", s.cfg.Budget, DefaultBudget)
	}
	if s.Camera() == nil || s.Camera().Viewport.Width != 1280 {
		t.Errorf("camera viewport = %+v", s.Camera().Viewport)
	}
	if s.Passes() != 0 || len(s.Instances()) != 0 {
		t.Error("fresh scene has committed geometry")
	}
}

func TestNewSceneInvalid(t *testing.T) {
	if _, err := NewScene(Config{Resolution: 12}); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("err = %v, want ErrInvalidResolution", err)
	}
	if _, err := NewScene(Config{Size: 21}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestSceneBudgetClamped(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{time.Millisecond, MinBudget},
		{10 * time.Millisecond, 10 * time.Millisecond},
		{time.Second, MaxBudget},
	}
	for _, tt := range tests {
		s := newTestScene(t, Config{Budget: tt.in})
		if s.cfg.Budget != tt.want {
			t.Errorf("Budget(%v) = %v, want %v", tt.in, s.cfg.Budget, tt.want)
		}
	}
}

func TestSceneCommitsPass(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 3})
	s.AddOrbital(at(Quantum2p, true))
	s.Restart()
	pass := s.pass

	runPass(t, s)

	want, _, _ := scanAll(t, pass, DefaultBudget, frozenClock())
	got := s.Instances()
	if len(got) != len(want) {
		t.Fatalf("committed %d quads, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i].Raw() {
			t.Fatalf("quad %d = %+v, want %+v", i, got[i], want[i].Raw())
		}
	}
	if s.Progress() != 0 {
		t.Errorf("Progress() after commit = %v, want 0", s.Progress())
	}
}

func TestSceneSpreadsPassOverFrames(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2, Clock: tickingClock(time.Millisecond)})
	s.AddOrbital(at(Quantum1s, true))
	s.Restart()

	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if s.Passes() != 0 {
		t.Fatal("pass committed in one frame")
	}
	if p := s.Progress(); p <= 0 || p >= 1 {
		t.Errorf("Progress() = %v, want in (0, 1)", p)
	}
	if len(s.Instances()) != 0 {
		t.Error("partial pass visible before commit")
	}
	runPass(t, s)
	if len(s.Instances()) == 0 {
		t.Error("no quads committed")
	}
}

func TestSceneStagedOrbitals(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2, Clock: tickingClock(time.Millisecond)})
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	// Edits mid-pass wait for the next pass.
	s.SetOrbitals([]Orbital{at(Quantum1s, true)})
	if len(s.pass.Orbitals) != 0 {
		t.Fatal("mid-pass edit reached the pass in progress")
	}
	runPass(t, s)
	if len(s.Instances()) != 0 {
		t.Errorf("first pass committed %d quads, want 0", len(s.Instances()))
	}
	runPass(t, s)
	if len(s.Instances()) == 0 {
		t.Error("second pass did not pick up the staged orbital")
	}
}

func TestSceneStagedResolutionAndSize(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 3, Size: 6})
	if err := s.SetResolution(4); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSize(8); err != nil {
		t.Fatal(err)
	}
	if s.Resolution() != 3 || s.Size() != 6 {
		t.Errorf("pass in progress changed: res %d size %v", s.Resolution(), s.Size())
	}
	if s.StagedResolution() != 4 || s.StagedSize() != 8 {
		t.Errorf("staged = res %d size %v", s.StagedResolution(), s.StagedSize())
	}
	runPass(t, s)
	if s.Resolution() != 4 || s.Size() != 8 {
		t.Errorf("next pass = res %d size %v, want 4, 8", s.Resolution(), s.Size())
	}
}

func TestSceneRejectsBadSettings(t *testing.T) {
	s := newTestScene(t, Config{})
	if err := s.SetResolution(MaxResolution + 1); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("SetResolution err = %v", err)
	}
	if err := s.SetSize(MinSize - 0.5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetSize err = %v", err)
	}
	if s.StagedResolution() != DefaultResolution || s.StagedSize() != DefaultSize {
		t.Error("rejected setting was staged")
	}
}

func TestSceneOrbitalEdits(t *testing.T) {
	s := newTestScene(t, Config{})
	s.AddOrbital(at(Quantum1s, true))
	s.AddOrbital(at(Quantum2p, true))

	if err := s.SetOrbital(1, at(Quantum3d, false)); err != nil {
		t.Fatal(err)
	}
	if got := s.Orbitals()[1].Quantum; got != Quantum3d {
		t.Errorf("orbital 1 = %s, want 3d", got.Name())
	}
	if err := s.SetOrbital(2, at(Quantum1s, true)); err == nil {
		t.Error("SetOrbital(2) succeeded on two orbitals")
	}
	if err := s.RemoveOrbital(0); err != nil {
		t.Fatal(err)
	}
	if len(s.Orbitals()) != 1 {
		t.Errorf("len = %d after remove, want 1", len(s.Orbitals()))
	}
	if err := s.RemoveOrbital(-1); err == nil {
		t.Error("RemoveOrbital(-1) succeeded")
	}

	// Orbitals returns a copy.
	orbs := s.Orbitals()
	orbs[0].Phase = true
	if s.Orbitals()[0].Phase {
		t.Error("Orbitals() exposed internal storage")
	}
}

func TestSceneRestart(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2, Clock: tickingClock(time.Millisecond)})
	s.AddOrbital(at(Quantum1s, true))
	s.Restart()
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if s.Progress() == 0 {
		t.Fatal("no progress after update")
	}
	s.Restart()
	if s.Progress() != 0 || len(s.pending) != 0 {
		t.Errorf("Restart kept progress %v, %d pending quads", s.Progress(), len(s.pending))
	}
	if s.Passes() != 0 {
		t.Error("Restart committed a pass")
	}
}

func TestSceneEventSink(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2})
	s.AddOrbital(at(Quantum1s, true))
	s.Restart()
	sink := &recordingSink{}
	s.SetEventSink(sink)

	runPass(t, s)
	runPass(t, s)

	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want 2", len(sink.events))
	}
	e := sink.events[1]
	if e.Pass != 2 || e.Instances != len(s.Instances()) || e.Resolution != 2 || e.Size != DefaultSize {
		t.Errorf("event = %+v", e)
	}
	if e.Accepted == 0 || e.Steps != 1 {
		t.Errorf("event accepted %d steps %d", e.Accepted, e.Steps)
	}
}

func TestSceneSpin(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2, Spin: 30})
	s.AddOrbital(NewOrbital(mgl32.Vec3{}, Euler{Yaw: 350}, Quantum2p, 0, true))
	s.Restart()

	runPass(t, s)
	if got := s.Phase(); got != 30 {
		t.Errorf("Phase() = %v, want 30", got)
	}
	if got := s.Orbitals()[0].Euler().Yaw; !approxEqual(float64(got), 20, 1e-4) {
		t.Errorf("yaw = %v, want 20", got)
	}
	if got := s.pass.Orbitals[0].Euler().Yaw; !approxEqual(float64(got), 20, 1e-4) {
		t.Errorf("next pass yaw = %v, want 20", got)
	}
}

func TestSceneUpdateFunc(t *testing.T) {
	s := newTestScene(t, Config{})
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	boom := errors.New("boom")
	s.SetUpdateFunc(func() error { return boom })
	if err := s.Update(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene(t, Config{})
	s.SetDebugMode(true)
	if !s.debug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug {
		t.Error("debug should be false")
	}
}

func TestSceneViewerFrozenPerPass(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2, Clock: tickingClock(time.Millisecond)})
	before := s.pass.Viewer
	s.Camera().Orbit(200, 0)
	if s.pass.Viewer != before {
		t.Fatal("camera move changed the pass in progress")
	}
	runPass(t, s)
	if s.pass.Viewer != s.Camera().Snapshot() {
		t.Error("next pass did not snapshot the moved camera")
	}
}

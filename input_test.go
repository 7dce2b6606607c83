package orbital

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyInputOrbitOnlyWhileHeld(t *testing.T) {
	s := newTestScene(t, Config{})
	start := s.Camera().Position

	s.applyInput(frameInput{dx: 50, dy: 10})
	if s.Camera().Position != start {
		t.Error("cursor motion without a button moved the camera")
	}
	s.applyInput(frameInput{dx: 50, dy: 10, orbit: true})
	if s.Camera().Position == start {
		t.Error("right drag did not orbit")
	}
}

func TestApplyInputPan(t *testing.T) {
	s := newTestScene(t, Config{})
	s.applyInput(frameInput{dx: 30, pan: true})
	if s.Camera().Target == (mgl32.Vec3{}) {
		t.Error("middle drag did not pan")
	}
}

func TestApplyInputWheel(t *testing.T) {
	s := newTestScene(t, Config{})
	s.applyInput(frameInput{wheel: 2})
	if !approxEqual(float64(s.Camera().Distance()), 20-2*zoomStep, 1e-4) {
		t.Errorf("Distance() = %v, want %v", s.Camera().Distance(), 20-2*zoomStep)
	}
}

func TestApplyInputViewKeys(t *testing.T) {
	tests := []struct {
		name string
		in   frameInput
	}{
		{"x", frameInput{viewX: true}},
		{"y", frameInput{viewY: true}},
		{"z", frameInput{viewZ: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, Config{})
			s.applyInput(tt.in)
			if !s.Camera().Animating() {
				t.Error("view key did not start a camera animation")
			}
		})
	}
}

func TestApplyInputStagedSettings(t *testing.T) {
	s := newTestScene(t, Config{Resolution: MaxResolution, Size: MinSize})
	s.applyInput(frameInput{resUp: true, sizeDn: true})
	if s.StagedResolution() != MaxResolution || s.StagedSize() != MinSize {
		t.Errorf("out-of-range steps staged: res %d size %v", s.StagedResolution(), s.StagedSize())
	}
	s.applyInput(frameInput{resDn: true, sizeUp: true})
	if s.StagedResolution() != MaxResolution-1 || s.StagedSize() != MinSize+1 {
		t.Errorf("staged res %d size %v", s.StagedResolution(), s.StagedSize())
	}
}

func TestApplyInputStagedSizeClamps(t *testing.T) {
	tests := []struct {
		name string
		size float32
		in   frameInput
		want float32
	}{
		{"down to min", 1.5, frameInput{sizeDn: true}, MinSize},
		{"up to max", 19.5, frameInput{sizeUp: true}, MaxSize},
		{"inside range", 6, frameInput{sizeUp: true}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, Config{Size: tt.size})
			s.applyInput(tt.in)
			if s.StagedSize() != tt.want {
				t.Errorf("StagedSize() = %v, want %v", s.StagedSize(), tt.want)
			}
		})
	}
}

func TestApplyInputRestart(t *testing.T) {
	s := newTestScene(t, Config{Resolution: 2})
	s.cursor.Next += 3
	s.applyInput(frameInput{restart: true})
	if s.Progress() != 0 {
		t.Errorf("Progress() = %v after restart, want 0", s.Progress())
	}
}

package orbital

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// benchOrbitals returns a mix of every shape, spread around the origin.
func benchOrbitals() []Orbital {
	return []Orbital{
		NewOrbital(mgl32.Vec3{}, Euler{}, Quantum1s, 0, true),
		NewOrbital(mgl32.Vec3{1, 0, 0}, Euler{0, 90, 0}, Quantum2p, 0, false),
		NewOrbital(mgl32.Vec3{0, 1, 0}, Euler{90, 0, 90}, Quantum3d, 1, true),
		NewOrbital(mgl32.Vec3{0, 0, 1}, Euler{}, Quantum3s, 0, true),
	}
}

// setupBenchScene creates a Scene with a committed pass at res.
func setupBenchScene(b *testing.B, res int) *Scene {
	s, err := NewScene(Config{Resolution: res, Clock: frozenClock()})
	if err != nil {
		b.Fatal(err)
	}
	s.SetOrbitals(benchOrbitals())
	s.Restart()
	for s.Passes() == 0 {
		if err := s.Update(); err != nil {
			b.Fatal(err)
		}
	}
	return s
}

// --- Evaluator Benchmarks ---

func BenchmarkEvaluate_4Orbitals(b *testing.B) {
	orbs := benchOrbitals()
	p := mgl32.Vec3{0.3, -0.2, 0.4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Evaluate(p, orbs, 0.75, 5)
	}
}

// --- Scanner Benchmarks ---

func BenchmarkStep_FullPass_Res5(b *testing.B) {
	pass := Pass{
		Orbitals:    benchOrbitals(),
		Viewer:      Viewer{Position: mgl32.Vec3{3, 2, 20}},
		Resolution:  5,
		LengthScale: 0.75,
	}
	clock := frozenClock()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := Step(NewCursor(5), pass, DefaultBudget, clock); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Render Benchmarks ---

func BenchmarkBuildBatch_Res5(b *testing.B) {
	s := setupBenchScene(b, 5)

	// Warm up: first build grows the vertex buffers.
	s.buildBatch()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.buildBatch()
	}
}

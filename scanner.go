package orbital

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// HalfWidth is the half-width of the scanned volume in length units.
	HalfWidth = 7
	// Threshold is the density a voxel must exceed to emit faces.
	Threshold = 0.0001
	// AlphaCeiling caps density so it can be used as alpha directly.
	AlphaCeiling = 1.0

	MinResolution = 2
	MaxResolution = 11
)

// Per-step time budgets. The budget is checked only between major slices,
// so a step can overrun it by up to one slice.
const (
	DefaultBudget = 8 * time.Millisecond
	MinBudget     = 6 * time.Millisecond
	MaxBudget     = 14 * time.Millisecond
)

// Bound returns the largest lattice index scanned on each axis.
func Bound(resolution int) int {
	return (HalfWidth + 1) * resolution
}

// StartIndex is the cursor value of a fresh pass.
func StartIndex(resolution int) int {
	return -Bound(resolution)
}

// EndIndex is the cursor value of a completed pass.
func EndIndex(resolution int) int {
	return Bound(resolution) + 1
}

// VoxelCenter returns the world-space center of the voxel at the given
// lattice indices.
func VoxelCenter(resolution int, idx [3]int) mgl32.Vec3 {
	res := float32(resolution)
	half := float32(resolution-1) / 2
	return mgl32.Vec3{
		(float32(idx[0]) - half) / res,
		(float32(idx[1]) - half) / res,
		(float32(idx[2]) - half) / res,
	}
}

// Viewer is a frozen camera snapshot.
type Viewer struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Pass is the read-only input of one full scan, captured when the pass
// starts and held fixed until it completes.
type Pass struct {
	Orbitals    []Orbital
	Viewer      Viewer
	Resolution  int
	LengthScale float32

	// threshold replaces Threshold when positive.
	threshold float32
}

func (p Pass) acceptThreshold() float32 {
	if p.threshold > 0 {
		return p.threshold
	}
	return Threshold
}

// accepted reports whether a voxel of the given density emits faces.
func accepted(density, threshold float32) bool {
	return density > threshold
}

// Validate checks the pass scalars against their allowed ranges.
func (p Pass) Validate() error {
	if p.Resolution < MinResolution || p.Resolution > MaxResolution {
		return fmt.Errorf("pass resolution %d: %w", p.Resolution, ErrInvalidResolution)
	}
	lo, hi := LengthScale(MinSize), LengthScale(MaxSize)
	if !(p.LengthScale >= lo && p.LengthScale <= hi) {
		return fmt.Errorf("pass length scale %v: %w", p.LengthScale, ErrInvalidLengthScale)
	}
	return nil
}

// Clock reports the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Cursor is the resumable state of a pass: the next unscanned major index
// plus the voxels accepted so far. The caller owns it and hands it back to
// Step each frame.
type Cursor struct {
	Next int

	adj adjacency
}

// NewCursor returns the cursor of a fresh pass.
func NewCursor(resolution int) Cursor {
	return Cursor{Next: StartIndex(resolution)}
}

// Done reports whether the pass has been scanned completely.
func (c Cursor) Done(resolution int) bool {
	return c.Next == EndIndex(resolution)
}

// Accepted returns the number of voxels accepted so far this pass.
func (c Cursor) Accepted() int {
	return len(c.adj.points)
}

// Solid reports whether the voxel at scan-loop coordinates (m, u, v) was
// accepted this pass.
func (c Cursor) Solid(m, u, v int) bool {
	return c.adj.solid(m, u, v)
}

// SolidInSlice reports whether (u, v) was accepted in the most recently
// scanned major slice.
func (c Cursor) SolidInSlice(u, v int) bool {
	return c.adj.solidInSlice(u, v)
}

// axisMap decides which world axis each scan loop walks and in which
// direction, so every loop starts on the camera's side.
type axisMap struct {
	major, horizontal int
	// flip[a] turns a loop index into a world index on axis a.
	flip [3]int
}

func newAxisMap(v Viewer) axisMap {
	d := v.Position.Sub(v.Target)
	am := axisMap{major: 0, horizontal: 2}
	if abs32(d[2]) > abs32(d[0]) {
		am.major, am.horizontal = 2, 0
	}
	for a := 0; a < 3; a++ {
		am.flip[a] = -int(signOrOne(d[a]))
	}
	return am
}

// world maps scan-loop coordinates to lattice indices. u walks the
// vertical axis, v the horizontal minor axis.
func (am axisMap) world(m, u, v int) [3]int {
	var idx [3]int
	idx[am.major] = am.flip[am.major] * m
	idx[1] = am.flip[1] * u
	idx[am.horizontal] = am.flip[am.horizontal] * v
	return idx
}

// Step scans whole major slices starting at cur.Next until the pass is
// complete or budget has elapsed, and returns the quads emitted on the way
// together with the advanced cursor. The budget is checked after each slice.
//
// Step is pure apart from reading clock: the same cursor and pass give the
// same quads in the same order. The returned cursor shares its accepted
// voxel storage with cur, so once it has been stepped, cur must not be
// stepped again.
func Step(cur Cursor, pass Pass, budget time.Duration, clock Clock) ([]Instance, Cursor, error) {
	if err := pass.Validate(); err != nil {
		return nil, cur, err
	}
	res := pass.Resolution
	bound := Bound(res)
	if cur.Next < StartIndex(res) || cur.Next > EndIndex(res) {
		return nil, cur, fmt.Errorf("step from %d with bound %d: %w", cur.Next, bound, ErrCursorRange)
	}
	if cur.Done(res) {
		return nil, cur, nil
	}

	start := clock.now()
	am := newAxisMap(pass.Viewer)
	eye := pass.Viewer.Position
	halfVoxel := 0.5 / float32(res)
	threshold := pass.acceptThreshold()

	cur.adj = cur.adj.detach()
	var quads []Instance

	for m := cur.Next; m <= bound; m++ {
		cur.adj.beginSlice(m)
		for u := -bound; u <= bound; u++ {
			for v := -bound; v <= bound; v++ {
				idx := am.world(m, u, v)
				c := VoxelCenter(res, idx)

				density, sign := Evaluate(c, pass.Orbitals, pass.LengthScale, res)
				density = min(density, AlphaCeiling)
				if !accepted(density, threshold) {
					continue
				}
				cur.adj.add(m, u, v)

				var bias [3]float32
				var ignore [3]bool
				for a := 0; a < 3; a++ {
					d := eye[a] - c[a]
					bias[a] = signOrOne(d)
					ignore[a] = abs32(d) < halfVoxel
				}
				quads = append(quads, Instantiate(res, idx, density, sign, bias, ignore)...)
			}
		}

		if clock.now().Sub(start) >= budget {
			cur.Next = m + 1
			return quads, cur, nil
		}
	}

	cur.Next = EndIndex(res)
	return quads, cur, nil
}

func signOrOne(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

package orbital

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

// Orbit limits. The polar angle stays away from the poles where the
// look-at basis degenerates.
const (
	MinDistance = 1.0
	MaxDistance = 20.0

	minPolar = 5 * math.Pi / 180
	maxPolar = 175 * math.Pi / 180
)

// Camera orbits a target point. It supplies the viewer snapshot for each
// pass and the view-projection used to draw committed quads.
type Camera struct {
	// Position and Target are the eye and look-at points in world space.
	Position, Target mgl32.Vec3
	// FovY is the vertical field of view in degrees.
	FovY float32
	// Near and Far are the clip plane distances.
	Near, Far float32
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// Sensitivity scales orbit input (radians per pixel), PanSpeed scales
	// pan input relative to the orbit distance.
	Sensitivity float32
	PanSpeed    float32

	viewProj mgl32.Mat4
	dirty    bool

	anim *TweenGroup
}

// NewCamera creates a camera 20 units down +z looking at the origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 0, 20},
		FovY:        45,
		Near:        0.1,
		Far:         100,
		Viewport:    viewport,
		Sensitivity: 0.006,
		PanSpeed:    0.0007,
		dirty:       true,
	}
}

// Snapshot returns the current viewer for freezing into a pass.
func (c *Camera) Snapshot() Viewer {
	return Viewer{Position: c.Position, Target: c.Target}
}

// spherical returns the eye offset from the target as yaw (around +y,
// zero on +z), polar angle from +y and distance.
func (c *Camera) spherical() (yaw, polar, dist float64) {
	d := c.Position.Sub(c.Target)
	dist = float64(d.Len())
	if dist == 0 {
		return 0, math.Pi / 2, 0
	}
	yaw = math.Atan2(float64(d[0]), float64(d[2]))
	polar = math.Acos(clampUnit(float64(d[1]) / dist))
	return yaw, polar, dist
}

// setSpherical moves the eye to the given orbit coordinates.
func (c *Camera) setSpherical(yaw, polar, dist float64) {
	polar = math.Max(minPolar, math.Min(polar, maxPolar))
	dist = math.Max(MinDistance, math.Min(dist, MaxDistance))
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(polar)
	c.Position = c.Target.Add(mgl32.Vec3{
		float32(dist * sp * sy),
		float32(dist * cp),
		float32(dist * sp * cy),
	})
	c.dirty = true
}

// Orbit rotates the eye around the target by pixel deltas. Horizontal
// motion turns around +y, vertical motion tilts toward the poles.
func (c *Camera) Orbit(dx, dy float32) {
	yaw, polar, dist := c.spherical()
	yaw -= float64(dx * c.Sensitivity)
	polar -= float64(dy * c.Sensitivity)
	c.setSpherical(yaw, polar, dist)
}

// Pan moves eye and target together, sideways for dx and vertically for
// dy, scaled by the orbit distance.
func (c *Camera) Pan(dx, dy float32) {
	fwd := c.Position.Sub(c.Target)
	dist := fwd.Len()
	if dist == 0 {
		return
	}
	right := fwd.Normalize().Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() == 0 {
		return
	}
	move := right.Normalize().Mul(dx * c.PanSpeed * dist)
	move[1] += dy * c.PanSpeed * dist
	c.Position = c.Position.Add(move)
	c.Target = c.Target.Add(move)
	c.dirty = true
}

// Zoom changes the orbit distance by delta, keeping it in
// [MinDistance, MaxDistance].
func (c *Camera) Zoom(delta float32) {
	yaw, polar, dist := c.spherical()
	c.setSpherical(yaw, polar, dist+float64(delta))
}

// Distance returns the distance from eye to target.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// OrbitTo animates the eye to the given yaw and polar angle (degrees)
// at the current distance over duration seconds.
func (c *Camera) OrbitTo(yawDeg, polarDeg float32, duration float32, easeFn ease.TweenFunc) {
	yaw, polar, dist := c.spherical()
	toYaw := float64(mgl32.DegToRad(yawDeg))
	// Turn the short way round.
	for toYaw-yaw > math.Pi {
		toYaw -= 2 * math.Pi
	}
	for toYaw-yaw < -math.Pi {
		toYaw += 2 * math.Pi
	}
	c.animateTo(yaw, polar, dist,
		[3]float32{float32(toYaw), mgl32.DegToRad(polarDeg), float32(dist)}, duration, easeFn)
}

// ZoomTo animates the orbit distance over duration seconds.
func (c *Camera) ZoomTo(dist float32, duration float32, easeFn ease.TweenFunc) {
	yaw, polar, cur := c.spherical()
	c.animateTo(yaw, polar, cur, [3]float32{float32(yaw), float32(polar), dist}, duration, easeFn)
}

func (c *Camera) animateTo(yaw, polar, dist float64, to [3]float32, duration float32, easeFn ease.TweenFunc) {
	from := [3]float32{float32(yaw), float32(polar), float32(dist)}
	c.anim = newTweenGroup(from, to, 3, duration, easeFn, func(v [3]float32) {
		c.setSpherical(float64(v[0]), float64(v[1]), float64(v[2]))
	})
}

// Animating reports whether an OrbitTo or ZoomTo is in progress.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// update advances any view animation. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.anim == nil {
		return
	}
	c.anim.Update(dt)
	if c.anim.Done {
		c.anim = nil
	}
}

// Resize updates the viewport after a window size change.
func (c *Camera) Resize(width, height int) {
	c.Viewport.Width = float64(width)
	c.Viewport.Height = float64(height)
	c.dirty = true
}

// MarkDirty forces a recomputation of the view-projection matrix. Call it
// after setting Position or Target directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// ViewProjection returns projection * view, recomputing it if dirty.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if !c.dirty {
		return c.viewProj
	}
	c.dirty = false

	aspect := float32(1)
	if c.Viewport.Height > 0 {
		aspect = float32(c.Viewport.Width / c.Viewport.Height)
	}
	view := mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
	c.viewProj = proj.Mul4(view)
	return c.viewProj
}

// WorldToScreen projects a world point into viewport pixels. ok is false
// for points behind the near plane.
func (c *Camera) WorldToScreen(p mgl32.Vec3) (sx, sy float32, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	return c.clipToScreen(clip)
}

func (c *Camera) clipToScreen(clip mgl32.Vec4) (sx, sy float32, ok bool) {
	w := clip[3]
	if w < c.Near {
		return 0, 0, false
	}
	nx := clip[0] / w
	ny := clip[1] / w
	sx = float32(c.Viewport.X) + (nx+1)/2*float32(c.Viewport.Width)
	sy = float32(c.Viewport.Y) + (1-ny)/2*float32(c.Viewport.Height)
	return sx, sy, true
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(v, 1))
}

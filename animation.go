package orbital

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float32 values simultaneously and hands the
// current values to an apply function after every Update. Create one via
// TweenEuler, or let Camera.OrbitTo and Camera.ZoomTo manage theirs.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	values [3]float32
	apply  func(values [3]float32)
	Done   bool
}

func newTweenGroup(from, to [3]float32, count int, duration float32, fn ease.TweenFunc, apply func([3]float32)) *TweenGroup {
	g := &TweenGroup{count: count, values: from, apply: apply}
	for i := 0; i < count; i++ {
		g.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	return g
}

// Update advances all tweens by dt seconds and applies the new values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.apply != nil {
		g.apply(g.values)
	}
}

// TweenEuler creates a TweenGroup that turns o to the given orientation,
// taking the short way round on each component. Every update goes through
// SetEuler, so the derived quaternion stays in step.
//
// The orbital is updated in place; pass it to Scene.SetOrbital to have the
// next pass pick it up.
func TweenEuler(o *Orbital, to Euler, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := o.Euler()
	target := [3]float32{
		from.Roll + shortestDegrees(from.Roll, to.Roll),
		from.Pitch + shortestDegrees(from.Pitch, to.Pitch),
		from.Yaw + shortestDegrees(from.Yaw, to.Yaw),
	}
	return newTweenGroup(
		[3]float32{from.Roll, from.Pitch, from.Yaw}, target, 3, duration, fn,
		func(v [3]float32) { o.SetEuler(Euler{v[0], v[1], v[2]}) },
	)
}

// shortestDegrees returns the signed turn in (-180, 180] from a to b.
func shortestDegrees(a, b float32) float32 {
	d := WrapDegrees(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

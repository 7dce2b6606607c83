// Package orbital renders hydrogen-like orbitals for [Ebitengine] by
// compiling their probability density into camera-facing voxel faces,
// a little at a time, every frame.
//
// Each frame the [Scene] scans part of a cubic lattice around the origin,
// evaluates the combined density of all orbitals at each voxel center
// with [Evaluate], and turns voxels above [Threshold] into up to three
// colored quads with [Instantiate]. The scan is resumable: [Step] takes a
// [Cursor] and a time budget and returns a new cursor, so a pass spreads
// over as many frames as it needs. When a pass completes, its quads
// replace the ones on screen and the next pass begins.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, _ := orbital.NewScene(orbital.Config{})
//	scene.AddOrbital(orbital.NewOrbital(mgl32.Vec3{}, orbital.Euler{}, orbital.Quantum2p, 0, true))
//	orbital.Run(scene, orbital.RunConfig{
//		Title: "Orbitals", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Passes
//
// A pass freezes the orbital list, resolution, size and camera position
// when it starts. Edits made with [Scene.SetOrbitals], [Scene.SetResolution]
// or [Scene.SetSize] are staged and picked up by the next pass, so the
// committed geometry always comes from one consistent snapshot.
// [Scene.Restart] abandons the pass in progress.
//
// The scan walks the lattice from the slice nearest the camera to the
// farthest and emits only the faces of each voxel that point toward the
// camera, so each voxel costs one density evaluation and at most three
// quads. Accepted voxels are recorded on the [Cursor] for the rest of the
// pass and can be queried with [Cursor.Solid].
//
// # Camera
//
// The [Camera] orbits its target. Right drag orbits, middle drag pans and
// the wheel zooms; keys 1, 2 and 3 swing to the x, y and z axes with a
// tween (via [gween]). Use [Camera.OrbitTo] and [Camera.ZoomTo] to animate
// the view from code.
//
// # ECS integration
//
// Pass notifications can be forwarded into a [Donburi] world with the
// adapter in orbital/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package orbital

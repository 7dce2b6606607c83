package orbital

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the HUD: frame rate, pass progress and the radial
	// distribution of the first orbital.
	ShowFPS bool
	// Debug enables per-pass timing logs on stderr.
	Debug bool
	// TestRunner, when set, drives the scene from a script and closes the
	// window once the script is done and its screenshots are written.
	TestRunner *TestRunner
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	hud   hud
}

// Run opens a window and drives scene until the window closes or Escape is
// pressed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(scene.camera.Viewport.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.camera.Viewport.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.SetDebugMode(cfg.Debug)
	if cfg.TestRunner != nil {
		scene.SetTestRunner(cfg.TestRunner)
	}
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if r := g.cfg.TestRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	if !g.scene.injecting() {
		g.scene.applyInput(g.scene.pollInput())
	}
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.cfg.ShowFPS {
		g.hud.update(g.scene, 1.0/float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		g.hud.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.scene.camera.Viewport
	if int(vp.Width) != outsideWidth || int(vp.Height) != outsideHeight {
		g.scene.camera.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

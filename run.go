package coordconv

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// game adapts an App to ebiten.Game.
type game struct {
	app     *App
	showFPS bool
	// exitOnScript ends the run once the attached script has finished.
	exitOnScript bool
}

func (g *game) Update() error {
	g.app.Update(1.0 / float64(ebiten.TPS()))
	if g.exitOnScript && g.app.runner != nil && g.app.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), g.app.scene.Camera()))
	}
}

// Layout sizes the scene to the window, so the scene always fills the view.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.app.scene.Size()
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(size.X), int(size.Y)
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != size.X || h != size.Y {
		g.app.scene.Resize(w, h)
		log := g.app.scene.Logger()
		log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("scene resized")
	}
	return outsideWidth, outsideHeight
}

// overlayText is the debug readout drawn when ShowFPS is set.
func overlayText(fps, tps float64, cam *Camera) string {
	b := cam.VisibleBounds()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nView: (%.0f, %.0f) %.0fx%.0f",
		fps, tps, b.X, b.Y, b.Width, b.Height)
}

// Run opens a window sized to cfg and drives app until the window closes.
// If app has a test runner attached, the run ends when its script is done.
func Run(app *App, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{
		app:          app,
		showFPS:      cfg.ShowFPS,
		exitOnScript: app.runner != nil,
	}

	log := app.scene.Logger()
	log.Info().Str("title", cfg.Title).Int("width", cfg.Width).Int("height", cfg.Height).Msg("starting")

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info().Msg("stopped")
	return nil
}

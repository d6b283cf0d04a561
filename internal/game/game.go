package game

import (
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/wireduck/internal/config"
	"chosenoffset.com/wireduck/internal/input"
	"chosenoffset.com/wireduck/internal/model"
	"chosenoffset.com/wireduck/internal/render"
	"chosenoffset.com/wireduck/internal/render/wireframe"
	"chosenoffset.com/wireduck/internal/scene"
)

// Game owns the scene and drives it from the engine's update loop.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager

	Store     *input.Store
	Duck      *model.Duck
	Models    []model.Model
	Projector *wireframe.Projector

	events []render.KeyEvent
	closed bool
}

// New builds the ground and the duck and wires the duck to a fresh input store.
func New(cfg *config.Config, r render.Renderer, inputMgr render.InputManager) *Game {
	store := input.NewStore()
	duck := model.NewDuck(store)
	ground := model.NewGround()

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     inputMgr,
		Store:        store,
		Duck:         duck,
		Models:       []model.Model{ground, duck},
		Projector:    wireframe.NewProjector(cfg.View),
	}

	log.Printf("Scene ready: %d models, %.4fs per tick", len(g.Models), cfg.TickDelta())
	return g
}

// Update applies this tick's key events and advances every model.
func (g *Game) Update() error {
	if g.closed {
		return render.ErrTerminated
	}

	// Input first so a key change is visible to this tick.
	g.events = g.InputMgr.AppendKeyEvents(g.events[:0])
	for _, ev := range g.events {
		g.Store.Handle(input.KeyEvent{Key: ev.Key, Pressed: ev.Pressed})
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	delta := g.Config.TickDelta()
	for _, m := range g.Models {
		m.Tick(delta)
	}
	return nil
}

// Draw clears the screen and draws every model.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(scene.HexColor(g.Config.Colors.Background))

	if g.closed {
		return
	}

	for _, m := range g.Models {
		wireframe.Draw(g.Renderer, screen, g.Projector, m.Node())
	}

	if g.Config.Colors.HUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen render.Image) {
	status := fmt.Sprintf("look: %-5s  head: %+.2f rad  body: %+.2f rad",
		g.Duck.Intent(), g.Duck.HeadYaw(), g.Duck.BodyYaw())
	g.Renderer.DrawText(screen, status, 10, 10, color.RGBA{255, 255, 255, 255}, 1.0)

	hint := "Left/Right: look   Esc: quit"
	_, h := g.Renderer.MeasureText(hint, 1.0)
	g.Renderer.DrawText(screen, hint, 10, g.ScreenHeight-h-10, color.RGBA{180, 180, 180, 255}, 1.0)
}

// Layout handles window resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Close destroys every model. The game must not be updated afterwards;
// Update returns render.ErrTerminated if it is.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	for _, m := range g.Models {
		m.Destroy()
	}
	log.Printf("Released %d models", len(g.Models))
}

package game

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/wireduck/internal/config"
	"chosenoffset.com/wireduck/internal/look"
	"chosenoffset.com/wireduck/internal/model"
	"chosenoffset.com/wireduck/internal/render"
	"chosenoffset.com/wireduck/internal/render/rendertest"
	"chosenoffset.com/wireduck/internal/scene"
)

func newTestGame(t *testing.T) (*Game, *rendertest.Renderer, *rendertest.Input) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Simulation.TPS = 10
	r := &rendertest.Renderer{}
	in := rendertest.NewInput()
	return New(cfg, r, in), r, in
}

func TestKeyEventVisibleToSameTick(t *testing.T) {
	g, _, in := newTestGame(t)

	in.Events = []render.KeyEvent{{Key: "ArrowLeft", Pressed: true}}
	if err := g.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if g.Duck.Intent() != look.Left {
		t.Errorf("Expected duck to look left, got %v", g.Duck.Intent())
	}
	// One 0.1s tick at 3 rad/s.
	if math.Abs(g.Duck.HeadYaw()-0.3) > 1e-9 {
		t.Errorf("Expected head yaw 0.3 after one tick, got %f", g.Duck.HeadYaw())
	}
}

func TestReleaseFreezesYaw(t *testing.T) {
	g, _, in := newTestGame(t)

	in.Events = []render.KeyEvent{{Key: "ArrowRight", Pressed: true}}
	for i := 0; i < 6; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	in.Events = []render.KeyEvent{{Key: "ArrowRight", Pressed: false}, {Key: "KeyQ", Pressed: true}}
	if err := g.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	head, body := g.Duck.HeadYaw(), g.Duck.BodyYaw()
	for i := 0; i < 20; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if g.Duck.HeadYaw() != head || g.Duck.BodyYaw() != body {
		t.Errorf("Expected yaw frozen at %f/%f, got %f/%f", head, body, g.Duck.HeadYaw(), g.Duck.BodyYaw())
	}
	if body >= 0 {
		t.Errorf("Expected body to have turned right, got %f", body)
	}
}

func TestEscapeTerminates(t *testing.T) {
	g, _, in := newTestGame(t)
	in.JustPressed[render.KeyEscape] = true

	err := g.Update()
	if !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated, got %v", err)
	}
}

func TestDrawRendersScene(t *testing.T) {
	g, r, _ := newTestGame(t)
	screen := rendertest.NewImage(800, 600)

	g.Draw(screen)

	if len(r.Lines) != 5 {
		t.Errorf("Expected 5 duck segments, got %d", len(r.Lines))
	}
	if len(r.Polygons) != 1 {
		t.Errorf("Expected the ground polygon, got %d", len(r.Polygons))
	}
	if len(r.Texts) != 2 {
		t.Errorf("Expected HUD status and hint, got %d texts", len(r.Texts))
	}
	if screen.FillClr != scene.HexColor(g.Config.Colors.Background) {
		t.Errorf("Expected background fill, got %v", screen.FillClr)
	}
}

func TestDrawWithoutHUD(t *testing.T) {
	g, r, _ := newTestGame(t)
	g.Config.Colors.HUD = false

	g.Draw(rendertest.NewImage(800, 600))

	if len(r.Texts) != 0 {
		t.Errorf("Expected no HUD text, got %d", len(r.Texts))
	}
}

type countingModel struct {
	node      *scene.Group
	ticks     int
	destroyed int
}

func (m *countingModel) Node() *scene.Group { return m.node }
func (m *countingModel) Tick(float64)       { m.ticks++ }
func (m *countingModel) Destroy()           { m.destroyed++ }

func TestCloseDestroysModelsOnce(t *testing.T) {
	g, _, _ := newTestGame(t)
	extra := &countingModel{node: scene.NewGroup("extra")}
	g.Models = append(g.Models, model.Model(extra))

	if err := g.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g.Close()
	g.Close()

	if extra.destroyed != 1 {
		t.Errorf("Expected Destroy once, got %d", extra.destroyed)
	}
	if err := g.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated after Close, got %v", err)
	}
	if extra.ticks != 1 {
		t.Errorf("Expected no ticks after Close, got %d", extra.ticks)
	}
}

func TestLayoutTracksWindowSize(t *testing.T) {
	g, _, _ := newTestGame(t)
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", w, h)
	}
	if g.ScreenWidth != 1024 || g.ScreenHeight != 768 {
		t.Errorf("Expected game size updated, got %dx%d", g.ScreenWidth, g.ScreenHeight)
	}
}

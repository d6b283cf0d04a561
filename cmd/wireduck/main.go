package main

import (
	"flag"
	"log"

	"chosenoffset.com/wireduck/internal/config"
	"chosenoffset.com/wireduck/internal/game"
	ebitenrender "chosenoffset.com/wireduck/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "wireduck.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded config from %s (%dx%d @ %d TPS)",
		*configPath, cfg.Window.Width, cfg.Window.Height, cfg.Simulation.TPS)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Simulation.TPS)

	log.Println("Starting game...")
	err = engine.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Game exited")
}

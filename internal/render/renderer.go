package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop normally.
var ErrTerminated = errors.New("render: game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Vector operations (for drawing shapes)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)
	FillPolygon(dst Image, points []Point, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float32
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex represents a vertex for triangle rendering.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// SolidFill returns one vertex per position tinted with clr. The vertices
// sample the source image at (0, 0), so drawing them from a 1x1 white image
// yields a flat colour.
func SolidFill(positions []Point, clr color.Color) []Vertex {
	r, g, b, a := clr.RGBA()
	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	return vertices
}

// InputManager handles keyboard input from the user.
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// AppendKeyEvents appends every key pressed or released since the
	// previous update, releases first, and returns the extended slice.
	AppendKeyEvents(events []KeyEvent) []KeyEvent
}

// KeyEvent is a key transition named by the backend ("ArrowLeft", "KeyW", ...).
type KeyEvent struct {
	Key     string
	Pressed bool
}

// Key represents a keyboard key.
type Key int

// Key constants for keys the game polls directly
const (
	KeyEscape Key = iota
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets how many times per second Update is called.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends. A game that
	// stops by returning ErrTerminated yields a nil error.
	RunGame(game Game) error
}

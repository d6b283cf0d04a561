// Package rendertest provides in-memory render backends for tests.
package rendertest

import (
	"image/color"

	"chosenoffset.com/wireduck/internal/render"
)

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float32
	Color          color.Color
}

// Text is a recorded DrawText call.
type Text struct {
	Text string
	X, Y int
}

// Renderer records draw calls instead of rasterizing them.
type Renderer struct {
	Lines    []Line
	Polygons [][]render.Point
	Texts    []Text
}

// StrokeLine records the segment.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr})
}

// FillPolygon records the polygon.
func (r *Renderer) FillPolygon(dst render.Image, points []render.Point, clr color.Color) {
	cp := make([]render.Point, len(points))
	copy(cp, points)
	r.Polygons = append(r.Polygons, cp)
}

// DrawText records the text.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, Text{Text: text, X: x, Y: y})
}

// MeasureText uses a fixed 6x13 cell.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() {
	r.Lines = nil
	r.Polygons = nil
	r.Texts = nil
}

// Image is a sized surface that remembers its last fill colour and every
// DrawTriangles call.
type Image struct {
	W, H      int
	FillClr   color.Color
	Triangles [][]render.Vertex
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

// Size returns the configured dimensions.
func (i *Image) Size() (int, int) { return i.W, i.H }

// Fill records the fill colour.
func (i *Image) Fill(clr color.Color) { i.FillClr = clr }

// DrawTriangles records the vertices.
func (i *Image) DrawTriangles(vertices []render.Vertex, _ []uint16, _ render.Image, _ *render.DrawTrianglesOptions) {
	i.Triangles = append(i.Triangles, vertices)
}

// Input is a scripted InputManager.
type Input struct {
	JustPressed map[render.Key]bool
	Events      []render.KeyEvent
}

// NewInput returns an input with nothing held.
func NewInput() *Input {
	return &Input{
		JustPressed: make(map[render.Key]bool),
	}
}

// IsKeyJustPressed reports the scripted state for key.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

// AppendKeyEvents drains the queued events.
func (in *Input) AppendKeyEvents(events []render.KeyEvent) []render.KeyEvent {
	events = append(events, in.Events...)
	in.Events = nil
	return events
}

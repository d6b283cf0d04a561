package render

import (
	"image/color"
	"testing"
)

type recordingImage struct {
	vertices []Vertex
	indices  []uint16
	src      Image
	opts     *DrawTrianglesOptions
}

func (i *recordingImage) Size() (int, int)  { return 1, 1 }
func (i *recordingImage) Fill(color.Color) {}
func (i *recordingImage) DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions) {
	i.vertices, i.indices, i.src, i.opts = vertices, indices, img, opts
}

func TestSolidFill(t *testing.T) {
	points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	vertices := SolidFill(points, color.RGBA{0x55, 0x55, 0x55, 0xff})

	if len(vertices) != len(points) {
		t.Fatalf("Expected %d vertices, got %d", len(points), len(vertices))
	}

	want := float32(0x5555) / 0xffff
	for i, v := range vertices {
		if v.DstX != points[i].X || v.DstY != points[i].Y {
			t.Errorf("Vertex %d: expected position (%f, %f), got (%f, %f)", i, points[i].X, points[i].Y, v.DstX, v.DstY)
		}
		if v.SrcX != 0 || v.SrcY != 0 {
			t.Errorf("Vertex %d: expected source (0, 0), got (%f, %f)", i, v.SrcX, v.SrcY)
		}
		if v.ColorR != want || v.ColorG != want || v.ColorB != want {
			t.Errorf("Vertex %d: expected grey %f, got (%f, %f, %f)", i, want, v.ColorR, v.ColorG, v.ColorB)
		}
		if v.ColorA != 1 {
			t.Errorf("Vertex %d: expected opaque alpha, got %f", i, v.ColorA)
		}
	}
}

func TestSolidFillThroughImage(t *testing.T) {
	dst := &recordingImage{}
	white := &recordingImage{}
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	dst.DrawTriangles(SolidFill(points, color.White), []uint16{0, 1, 2}, white, &DrawTrianglesOptions{AntiAlias: true})

	if len(dst.vertices) != 3 || len(dst.indices) != 3 {
		t.Fatalf("Expected 3 vertices and 3 indices, got %d and %d", len(dst.vertices), len(dst.indices))
	}
	if dst.src != Image(white) {
		t.Error("Expected the white source image to be passed through")
	}
	if dst.opts == nil || !dst.opts.AntiAlias {
		t.Error("Expected anti-aliasing to be requested")
	}
	if dst.vertices[2].ColorA != 1 {
		t.Errorf("Expected opaque white, got alpha %f", dst.vertices[2].ColorA)
	}
}

// Package wireframe draws scene graphs as flat lines and polygons through a
// fixed perspective projection.
package wireframe

import (
	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/wireduck/internal/config"
	"chosenoffset.com/wireduck/internal/render"
	"chosenoffset.com/wireduck/internal/scene"
)

// LineWidth is the stroke width of scene lines in pixels.
const LineWidth = 1.5

// Projector maps world positions to screen pixels.
type Projector struct {
	view      mgl64.Mat4
	fovy      float64
	near, far float64

	width, height int
	viewProj      mgl64.Mat4
}

// NewProjector builds a projector from the configured view.
func NewProjector(v config.ViewConfig) *Projector {
	eye := mgl64.Vec3(v.Eye)
	target := mgl64.Vec3(v.Target)
	return &Projector{
		view: mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0}),
		fovy: mgl64.DegToRad(v.FOV),
		near: v.Near,
		far:  v.Far,
	}
}

// Resize updates the aspect ratio for a new screen size.
func (p *Projector) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	p.viewProj = mgl64.Perspective(p.fovy, aspect, p.near, p.far).Mul4(p.view)
}

// Project returns the screen position of a world point. ok is false for
// points behind the eye.
func (p *Projector) Project(world mgl64.Vec3) (pt render.Point, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() <= p.near {
		return render.Point{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return render.Point{
		X: float32((ndc.X() + 1) / 2 * float64(p.width)),
		Y: float32((1 - ndc.Y()) / 2 * float64(p.height)),
	}, true
}

// Draw renders every line and mesh under root onto dst.
func Draw(r render.Renderer, dst render.Image, p *Projector, root *scene.Group) {
	w, h := dst.Size()
	p.Resize(w, h)

	root.Walk(mgl64.Ident4(), func(n scene.Node, world mgl64.Mat4) {
		switch n := n.(type) {
		case *scene.Line:
			drawLine(r, dst, p, n, world)
		case *scene.Mesh:
			drawMesh(r, dst, p, n, world)
		}
	})
}

func drawLine(r render.Renderer, dst render.Image, p *Projector, line *scene.Line, world mgl64.Mat4) {
	if line.Geometry == nil || line.Material == nil {
		return
	}
	verts := line.Geometry.Vertices
	// Vertex pairs form independent segments.
	for i := 0; i+1 < len(verts); i += 2 {
		a, okA := p.Project(world.Mul4x1(verts[i].Vec4(1)).Vec3())
		b, okB := p.Project(world.Mul4x1(verts[i+1].Vec4(1)).Vec3())
		if !okA || !okB {
			continue
		}
		r.StrokeLine(dst, a.X, a.Y, b.X, b.Y, LineWidth, line.Material.Color)
	}
}

func drawMesh(r render.Renderer, dst render.Image, p *Projector, mesh *scene.Mesh, world mgl64.Mat4) {
	if mesh.Geometry == nil || mesh.Material == nil {
		return
	}
	points := make([]render.Point, 0, len(mesh.Geometry.Vertices))
	for _, v := range mesh.Geometry.Vertices {
		pt, ok := p.Project(world.Mul4x1(v.Vec4(1)).Vec3())
		if !ok {
			return
		}
		points = append(points, pt)
	}
	r.FillPolygon(dst, points, mesh.Material.Color)
}

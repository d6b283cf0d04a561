// Package scene is a minimal retained scene graph: groups of lines and meshes
// positioned and rotated relative to their parent.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler holds rotations in radians about each local axis, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float64
}

// Object is the transform shared by every node.
type Object struct {
	Name     string
	Position mgl64.Vec3
	Rotation Euler
}

// Base returns the object itself so embedding types satisfy Node.
func (o *Object) Base() *Object {
	return o
}

// RotateX adds angle to the rotation about the local X axis.
func (o *Object) RotateX(angle float64) {
	o.Rotation.X += angle
}

// RotateY adds angle to the rotation about the local Y axis.
func (o *Object) RotateY(angle float64) {
	o.Rotation.Y += angle
}

// Matrix returns the local transform: translation, then X, Y, Z rotation.
func (o *Object) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = m.Mul4(mgl64.HomogRotate3DX(o.Rotation.X))
	m = m.Mul4(mgl64.HomogRotate3DY(o.Rotation.Y))
	m = m.Mul4(mgl64.HomogRotate3DZ(o.Rotation.Z))
	return m
}

// Node is anything that can live in a Group.
type Node interface {
	Base() *Object
}

// Group is a node whose children inherit its transform.
type Group struct {
	Object
	children []Node
}

// NewGroup creates an empty group at the origin.
func NewGroup(name string) *Group {
	return &Group{Object: Object{Name: name}}
}

// Add appends children in order.
func (g *Group) Add(nodes ...Node) {
	g.children = append(g.children, nodes...)
}

// Children returns the group's direct children.
func (g *Group) Children() []Node {
	return g.children
}

// ChildByName returns the first direct child with the given name.
func (g *Group) ChildByName(name string) (Node, bool) {
	for _, c := range g.children {
		if c.Base().Name == name {
			return c, true
		}
	}
	return nil, false
}

// Walk visits every node below g depth-first with its world matrix.
func (g *Group) Walk(parent mgl64.Mat4, fn func(n Node, world mgl64.Mat4)) {
	world := parent.Mul4(g.Matrix())
	fn(g, world)
	for _, c := range g.children {
		if sub, ok := c.(*Group); ok {
			sub.Walk(world, fn)
			continue
		}
		fn(c, world.Mul4(c.Base().Matrix()))
	}
}

// Line draws vertices 0-1, 2-3, ... as independent segments, like three.js
// LineSegments rather than a connected polyline. A trailing odd vertex is
// ignored.
type Line struct {
	Object
	Geometry *Geometry
	Material *Material
}

// Mesh is a filled convex polygon described by its geometry's vertices in order.
type Mesh struct {
	Object
	Geometry *Geometry
	Material *Material
}

// Geometry is a vertex buffer in local space.
type Geometry struct {
	Vertices []mgl64.Vec3

	// OnDispose, if set, runs the first time Dispose is called.
	OnDispose func()
	disposed  bool
}

// NewGeometry copies vertices into a new geometry.
func NewGeometry(vertices []mgl64.Vec3) *Geometry {
	v := make([]mgl64.Vec3, len(vertices))
	copy(v, vertices)
	return &Geometry{Vertices: v}
}

// Dispose drops the vertex buffer. Later calls do nothing.
func (g *Geometry) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.Vertices = nil
	if g.OnDispose != nil {
		g.OnDispose()
	}
}

// Disposed reports whether Dispose has run.
func (g *Geometry) Disposed() bool {
	return g.disposed
}

// Material describes how a line or mesh is coloured.
type Material struct {
	Color      color.RGBA
	DoubleSide bool

	// OnDispose, if set, runs the first time Dispose is called.
	OnDispose func()
	disposed  bool
}

// NewLineMaterial returns a material for line segments.
func NewLineMaterial(c color.RGBA) *Material {
	return &Material{Color: c}
}

// NewMeshMaterial returns a material for filled meshes.
func NewMeshMaterial(c color.RGBA, doubleSide bool) *Material {
	return &Material{Color: c, DoubleSide: doubleSide}
}

// Dispose marks the material released. Later calls do nothing.
func (m *Material) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.OnDispose != nil {
		m.OnDispose()
	}
}

// Disposed reports whether Dispose has run.
func (m *Material) Disposed() bool {
	return m.disposed
}

// HexColor converts a 0xRRGGBB value into an opaque colour.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

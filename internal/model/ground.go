package model

import "chosenoffset.com/wireduck/internal/scene"

// Ground is the static floor the duck stands on.
type Ground struct {
	plane     *scene.Mesh
	group     *scene.Group
	destroyed bool
}

// NewGround creates the default ground plane.
func NewGround() *Ground {
	plane := scene.CreatePlane()
	group := scene.NewGroup("ground")
	group.Add(plane)
	return &Ground{plane: plane, group: group}
}

// Node returns the ground's root group.
func (g *Ground) Node() *scene.Group {
	return g.group
}

// Tick does nothing; the ground never moves.
func (g *Ground) Tick(float64) {}

// Destroy releases the plane geometry and material once.
func (g *Ground) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.plane.Geometry.Dispose()
	g.plane.Material.Dispose()
}

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ground plane dimensions in world units.
const (
	PlaneWidth = 10.0
	PlaneDepth = 8.0
)

// PlaneColor is the default ground colour.
const PlaneColor = 0x555555

// CreateLine builds a named line from vertex pairs at the given local position.
func CreateLine(name string, vertices []mgl64.Vec3, material *Material, position mgl64.Vec3) *Line {
	return &Line{
		Object: Object{
			Name:     name,
			Position: position,
		},
		Geometry: NewGeometry(vertices),
		Material: material,
	}
}

// CreatePlane builds the horizontal ground plane at y = 0.
func CreatePlane() *Mesh {
	hw, hd := PlaneWidth/2, PlaneDepth/2
	geometry := NewGeometry([]mgl64.Vec3{
		{-hw, hd, 0},
		{hw, hd, 0},
		{hw, -hd, 0},
		{-hw, -hd, 0},
	})
	mesh := &Mesh{
		Object:   Object{Name: "plane"},
		Geometry: geometry,
		Material: NewMeshMaterial(HexColor(PlaneColor), true),
	}
	// Built in the XY plane; lay it flat.
	mesh.RotateX(-math.Pi / 2)
	return mesh
}

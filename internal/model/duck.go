package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"chosenoffset.com/wireduck/internal/input"
	"chosenoffset.com/wireduck/internal/look"
	"chosenoffset.com/wireduck/internal/scene"
)

const (
	// RotationSpeed scales the look rate; the head turns at 1+RotationSpeed rad/s.
	RotationSpeed = 2.0

	// MaxHeadYaw is how far the head turns relative to the body before the
	// whole duck turns instead.
	MaxHeadYaw = math.Pi / 3

	duckColor = 0xffffff
)

// Part names.
const (
	BodyLine      = "bodyLine"
	HeadLine      = "headLine"
	LeftFootLine  = "leftFootLine"
	RightFootLine = "rightFootLine"
	TailLine      = "tailLine"
)

var (
	fullLength = []mgl64.Vec3{
		{0, 0, -0.5},
		{0, 0, 0.5},
	}
	halfLength = []mgl64.Vec3{
		{0, 0, -0.25},
		{0, 0, 0.25},
	}
	quarterLength = []mgl64.Vec3{
		{0, 0, -0.125},
		{0, 0, 0.125},
	}
)

// Duck is a stick-figure duck that looks left and right with the arrow keys.
// Its head turns first; once the head reaches MaxHeadYaw the body turns.
type Duck struct {
	rotationSpeed float64
	lineMaterial  *scene.Material
	bodyLine      *scene.Line
	headLine      *scene.Line
	leftFootLine  *scene.Line
	rightFootLine *scene.Line
	tailLine      *scene.Line
	group         *scene.Group

	lookLeft  bool
	lookRight bool

	unsubscribe func()
	destroyed   bool
}

// NewDuck assembles a duck. If store is non-nil the duck subscribes to it and
// follows its flags; otherwise the caller feeds flags through UpdateIntent.
func NewDuck(store *input.Store) *Duck {
	d := &Duck{
		rotationSpeed: RotationSpeed,
		lineMaterial:  scene.NewLineMaterial(scene.HexColor(duckColor)),
	}

	d.bodyLine = scene.CreateLine(BodyLine, fullLength, d.lineMaterial, mgl64.Vec3{0, 0.35, 0})
	d.headLine = scene.CreateLine(HeadLine, halfLength, d.lineMaterial, mgl64.Vec3{0, 0.55, -0.5})
	d.rightFootLine = scene.CreateLine(RightFootLine, quarterLength, d.lineMaterial, mgl64.Vec3{0.125, 0, 0.25})
	d.leftFootLine = scene.CreateLine(LeftFootLine, quarterLength, d.lineMaterial, mgl64.Vec3{-0.125, 0, 0.25})
	d.tailLine = scene.CreateLine(TailLine, quarterLength, d.lineMaterial, mgl64.Vec3{0, 0.3, 0.5})
	d.tailLine.RotateX(math.Pi / 6)

	d.group = scene.NewGroup("duck")
	d.group.Add(d.bodyLine, d.headLine, d.rightFootLine, d.leftFootLine, d.tailLine)

	if store != nil {
		d.unsubscribe = store.Subscribe(d.UpdateIntent)
	}

	return d
}

// UpdateIntent replaces the cached look direction from a flag snapshot.
func (d *Duck) UpdateIntent(f input.Flags) {
	intent := look.Resolve(f)
	d.lookLeft = intent.Left()
	d.lookRight = intent.Right()
}

// Intent returns the cached look direction.
func (d *Duck) Intent() look.Intent {
	switch {
	case d.lookLeft:
		return look.Left
	case d.lookRight:
		return look.Right
	default:
		return look.None
	}
}

// Node returns the duck's root group.
func (d *Duck) Node() *scene.Group {
	return d.group
}

// HeadYaw is the head's rotation about Y relative to the body.
func (d *Duck) HeadYaw() float64 {
	return d.headLine.Rotation.Y
}

// BodyYaw is the whole duck's rotation about Y.
func (d *Duck) BodyYaw() float64 {
	return d.group.Rotation.Y
}

// Tick turns the head, or the body once the head is at its limit.
func (d *Duck) Tick(delta float64) {
	if d.lookLeft {
		d.rotateLeft(d.rotationSpeed, delta)
	}

	if d.lookRight {
		d.rotateRight(d.rotationSpeed, delta)
	}
}

// Destroy releases the geometries and the shared material and stops
// following the input store. Only the first call has any effect.
func (d *Duck) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true

	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}

	d.lineMaterial.Dispose()
	d.bodyLine.Geometry.Dispose()
	d.headLine.Geometry.Dispose()
	d.rightFootLine.Geometry.Dispose()
	d.leftFootLine.Geometry.Dispose()
	d.tailLine.Geometry.Dispose()
}

// The whole step goes to either the head or the body, never split.
func (d *Duck) rotateLeft(speed, delta float64) {
	step := (1 + speed) * delta
	next := d.headLine.Rotation.Y + step

	if next > MaxHeadYaw {
		d.group.RotateY(step)
	} else {
		d.headLine.RotateY(step)
	}
}

func (d *Duck) rotateRight(speed, delta float64) {
	step := (1 + speed) * delta
	next := d.headLine.Rotation.Y - step

	if next < -MaxHeadYaw {
		d.group.RotateY(-step)
	} else {
		d.headLine.RotateY(-step)
	}
}

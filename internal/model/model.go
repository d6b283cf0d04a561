// Package model contains the animated actors placed in the scene.
package model

import "chosenoffset.com/wireduck/internal/scene"

// Model is an actor the game loop can tick, draw and release.
type Model interface {
	// Node returns the root scene node for drawing.
	Node() *scene.Group

	// Tick advances the actor by delta seconds. delta must not be negative.
	Tick(delta float64)

	// Destroy releases owned resources. The model must not be ticked afterwards.
	Destroy()
}

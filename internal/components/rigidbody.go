package components

import (
	"boxworld/internal/engine"
	"boxworld/internal/physics"
)

// RigidBody ties a GameObject to a body in the physics world. The world owns
// the simulation; the component only mirrors the body's translation into the
// object's transform each frame.
type RigidBody struct {
	engine.BaseComponent
	Body *physics.Body
}

func NewRigidBody(body *physics.Body) *RigidBody {
	return &RigidBody{Body: body}
}

// Start pulls the body position once so the first rendered frame is correct.
func (r *RigidBody) Start() {
	r.sync()
}

func (r *RigidBody) Update(deltaTime float32) {
	r.sync()
}

func (r *RigidBody) sync() {
	g := r.GetGameObject()
	if g == nil || !r.Body.Valid() {
		return
	}
	g.Transform.Position = r.Body.Translation()
}

// Valid reports whether the wrapped body is still registered with a world.
func (r *RigidBody) Valid() bool {
	return r != nil && r.Body.Valid()
}

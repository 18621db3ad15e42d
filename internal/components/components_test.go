package components

import (
	"testing"

	"boxworld/internal/engine"
	"boxworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigidBodySyncsTransform(t *testing.T) {
	world := physics.NewWorld(rl.Vector3{Y: -9.8})
	body := physics.NewBody(physics.Dynamic, rl.Vector3{X: 1, Y: 5, Z: -2}, physics.Cuboid{Half: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}})
	require.NoError(t, world.InsertBody(body))

	obj := engine.NewGameObject("Box")
	rb := NewRigidBody(body)
	obj.AddComponent(rb)
	obj.Start()
	assert.Equal(t, rl.Vector3{X: 1, Y: 5, Z: -2}, obj.Transform.Position)

	world.Step(0.1)
	obj.Update(0.1)
	assert.Less(t, obj.Transform.Position.Y, float32(5))
	assert.Equal(t, body.Translation(), obj.Transform.Position)
}

func TestRigidBodyStaleBodyKeepsLastPosition(t *testing.T) {
	world := physics.NewWorld(rl.Vector3{Y: -9.8})
	body := physics.NewBody(physics.Dynamic, rl.Vector3{Y: 3}, physics.Cuboid{Half: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}})
	require.NoError(t, world.InsertBody(body))

	obj := engine.NewGameObject("Box")
	rb := NewRigidBody(body)
	obj.AddComponent(rb)
	obj.Start()

	world.RemoveBody(body)
	assert.False(t, rb.Valid())

	obj.Transform.Position = rl.Vector3{X: 7}
	obj.Update(0.1)
	assert.Equal(t, rl.Vector3{X: 7}, obj.Transform.Position)
}

func TestRigidBodyNilSafe(t *testing.T) {
	var rb *RigidBody
	assert.False(t, rb.Valid())

	rb = NewRigidBody(nil)
	rb.Update(0.1) // no game object, no body
	assert.False(t, rb.Valid())
}

func TestBoxMeshColor(t *testing.T) {
	m := NewBoxMesh(rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Red)
	assert.Equal(t, rl.Red, m.CurrentColor())

	m.Hovered = true
	assert.Equal(t, HoverColor, m.CurrentColor())
}

func TestBoxMeshDrawSizeUsesScale(t *testing.T) {
	m := NewBoxMesh(rl.Vector3{X: 1, Y: 2, Z: 1}, rl.Red)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 1}, m.DrawSize())

	obj := engine.NewGameObject("Box")
	obj.AddComponent(m)
	obj.Transform.Scale = rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}
	assert.Equal(t, rl.Vector3{X: 1.5, Y: 3, Z: 1.5}, m.DrawSize())
}

func TestScaleSpringSettlesOnTarget(t *testing.T) {
	obj := engine.NewGameObject("Box")
	s := NewScaleSpring()
	obj.AddComponent(s)

	s.Toggle()
	require.True(t, s.Active)
	assert.Equal(t, float32(ActiveScale), s.Target)

	overshoot := false
	for i := 0; i < 240; i++ {
		obj.Update(1.0 / 60)
		if s.Value() > ActiveScale+0.01 {
			overshoot = true
		}
	}
	assert.True(t, overshoot, "wobbly spring should overshoot")
	assert.True(t, s.Resting())
	assert.InDelta(t, ActiveScale, obj.Transform.Scale.X, 1e-3)
	assert.Equal(t, obj.Transform.Scale.X, obj.Transform.Scale.Z)

	s.Toggle()
	for i := 0; i < 240; i++ {
		obj.Update(1.0 / 60)
	}
	assert.InDelta(t, 1, obj.Transform.Scale.Y, 1e-3)
}

func TestScaleSpringIgnoresNonPositiveDelta(t *testing.T) {
	obj := engine.NewGameObject("Box")
	s := NewScaleSpring()
	obj.AddComponent(s)
	s.Toggle()

	obj.Update(0)
	obj.Update(-1)
	assert.Equal(t, float32(1), s.Value())
}

func TestBoxMeshBounds(t *testing.T) {
	obj := engine.NewGameObject("Box")
	obj.Transform.Position = rl.Vector3{X: 2, Y: 1, Z: -3}
	m := NewBoxMesh(rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Red)
	obj.AddComponent(m)

	b := m.Bounds()
	assert.Equal(t, rl.Vector3{X: 1.5, Y: 0.5, Z: -3.5}, b.Min)
	assert.Equal(t, rl.Vector3{X: 2.5, Y: 1.5, Z: -2.5}, b.Max)
}

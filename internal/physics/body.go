package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec - below this, a body might sleep
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

type BodyType int

const (
	Dynamic BodyType = iota
	Fixed
)

func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Shape describes a collider's extent around its body's translation.
// Bodies never rotate in this world, so every shape reduces to an AABB.
type Shape interface {
	HalfExtents() rl.Vector3
}

// Cuboid is a box given by its half extents.
type Cuboid struct {
	Half rl.Vector3
}

func (c Cuboid) HalfExtents() rl.Vector3 {
	return c.Half
}

// Capsule is an upright capsule: a cylinder of HalfHeight capped by two
// hemispheres of Radius.
type Capsule struct {
	HalfHeight float32
	Radius     float32
}

func (c Capsule) HalfExtents() rl.Vector3 {
	return rl.Vector3{X: c.Radius, Y: c.HalfHeight + c.Radius, Z: c.Radius}
}

type Collider struct {
	Shape       Shape
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = sticky
	body        *Body
}

// Body returns the body the collider is attached to.
func (c *Collider) Body() *Body {
	return c.body
}

// AABB returns the collider's world-space bounds.
func (c *Collider) AABB() AABB {
	var center rl.Vector3
	if c.body != nil {
		center = c.body.position
	}
	return NewAABBFromCenter(center, c.Shape.HalfExtents())
}

type Body struct {
	Type          BodyType
	Mass          float32
	GravityScale  float32
	LockRotations bool
	CanSleep      bool
	Collider      *Collider
	UserData      any

	handle     uint64
	position   rl.Vector3
	velocity   rl.Vector3
	sleeping   bool
	sleepTimer float32
	world      *World
}

// NewBody creates an unregistered body with a single collider.
func NewBody(bodyType BodyType, position rl.Vector3, shape Shape) *Body {
	b := &Body{
		Type:         bodyType,
		Mass:         1.0,
		GravityScale: 1.0,
		CanSleep:     true,
		position:     position,
	}
	b.Collider = &Collider{Shape: shape, Friction: 0.5, body: b}
	return b
}

// Handle is the world-assigned ID, zero while the body is not registered.
func (b *Body) Handle() uint64 {
	return b.handle
}

// Valid reports whether the body is currently registered in a world.
func (b *Body) Valid() bool {
	return b != nil && b.world != nil
}

func (b *Body) Translation() rl.Vector3 {
	return b.position
}

func (b *Body) SetTranslation(p rl.Vector3, wake bool) {
	b.position = p
	if wake {
		b.WakeUp()
	}
}

func (b *Body) Linvel() rl.Vector3 {
	return b.velocity
}

// SetLinvel replaces the linear velocity. A sleeping body only wakes when wake
// is set or the new velocity is above the sleep threshold at the next step.
func (b *Body) SetLinvel(v rl.Vector3, wake bool) {
	if b.Type == Fixed {
		return
	}
	b.velocity = v
	if wake {
		b.WakeUp()
	}
}

func (b *Body) IsSleeping() bool {
	return b.sleeping
}

func (b *Body) WakeUp() {
	b.sleeping = false
	b.sleepTimer = 0
}

func (b *Body) AABB() AABB {
	return b.Collider.AABB()
}

// trySleep puts the body to sleep after it stayed slow for SleepTimeThreshold.
func (b *Body) trySleep(dt float32) {
	if !b.CanSleep || b.sleeping {
		return
	}
	if rl.Vector3Length(b.velocity) < SleepVelocityThreshold {
		b.sleepTimer += dt
		if b.sleepTimer >= SleepTimeThreshold {
			b.sleeping = true
			b.velocity = rl.Vector3{}
		}
		return
	}
	b.sleepTimer = 0
}

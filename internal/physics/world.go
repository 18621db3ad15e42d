package physics

import (
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultTimestep    = 1.0 / 60.0
	DefaultMaxSubsteps = 4

	// SolverIterations is how many push-out passes run per step so stacked
	// bodies settle within a frame.
	SolverIterations = 4

	// FrictionRate scales collider friction into a per-second tangential damping.
	FrictionRate = 10.0
)

var (
	ErrBodyRegistered = errors.New("physics: body already registered")
	ErrNoCollider     = errors.New("physics: body has no collider")
)

type World struct {
	Gravity     rl.Vector3
	Timestep    float32
	MaxSubsteps int

	bodies      []*Body
	nextHandle  uint64
	accumulator float32
	log         *slog.Logger
}

func NewWorld(gravity rl.Vector3) *World {
	return &World{
		Gravity:     gravity,
		Timestep:    DefaultTimestep,
		MaxSubsteps: DefaultMaxSubsteps,
		bodies:      make([]*Body, 0),
		log:         slog.Default(),
	}
}

// SetLogger replaces the logger used for registration messages.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.log = l
	}
}

// InsertBody registers b and assigns its handle.
func (w *World) InsertBody(b *Body) error {
	if b == nil || b.Collider == nil || b.Collider.Shape == nil {
		return ErrNoCollider
	}
	if b.world != nil {
		return fmt.Errorf("insert body %d: %w", b.handle, ErrBodyRegistered)
	}
	w.nextHandle++
	b.handle = w.nextHandle
	b.world = w
	b.Collider.body = b
	w.bodies = append(w.bodies, b)
	w.log.Debug("Physics: body inserted", "handle", b.handle, "type", b.Type.String())
	return nil
}

// RemoveBody unregisters b. Handles to it become stale (Valid returns false).
func (w *World) RemoveBody(b *Body) bool {
	if b == nil || b.world != w {
		return false
	}
	for i, obj := range w.bodies {
		if obj == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
	w.log.Debug("Physics: body removed", "handle", b.handle)
	return true
}

// Clear removes every body, invalidating all handles.
func (w *World) Clear() {
	for _, b := range w.bodies {
		b.world = nil
	}
	w.bodies = w.bodies[:0]
	w.accumulator = 0
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Step advances the simulation by dt using fixed substeps and returns how many
// substeps ran. Time beyond MaxSubsteps is dropped so a long frame can't stall
// the loop.
func (w *World) Step(dt float32) int {
	if dt <= 0 {
		return 0
	}
	h := w.Timestep
	if h <= 0 {
		h = DefaultTimestep
	}
	maxSteps := w.MaxSubsteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSubsteps
	}

	w.accumulator += dt
	steps := 0
	for w.accumulator >= h && steps < maxSteps {
		w.step(h)
		w.accumulator -= h
		steps++
	}
	if steps == maxSteps && w.accumulator >= h {
		w.accumulator = 0
	}
	return steps
}

func (w *World) step(h float32) {
	// 1. Integrate velocities and positions
	for _, b := range w.bodies {
		if b.Type != Dynamic {
			continue
		}
		if b.sleeping {
			if rl.Vector3Length(b.velocity) < SleepVelocityThreshold {
				continue
			}
			b.WakeUp()
		}
		b.velocity = rl.Vector3Add(b.velocity, rl.Vector3Scale(w.Gravity, b.GravityScale*h))
		b.position = rl.Vector3Add(b.position, rl.Vector3Scale(b.velocity, h))
	}

	// 2. Push overlapping pairs apart
	for range SolverIterations {
		for i := 0; i < len(w.bodies); i++ {
			for j := i + 1; j < len(w.bodies); j++ {
				w.resolvePair(w.bodies[i], w.bodies[j], h)
			}
		}
	}

	// 3. Sleep
	for _, b := range w.bodies {
		if b.Type == Dynamic {
			b.trySleep(h)
		}
	}
}

func (w *World) resolvePair(a, b *Body, h float32) {
	if a.Type != Dynamic && b.Type != Dynamic {
		return
	}
	if a.sleeping && b.sleeping {
		return
	}
	if b.Type == Dynamic && a.Type != Dynamic {
		a, b = b, a
	}

	push := a.AABB().Resolve(b.AABB())
	pushLen := rl.Vector3Length(push)
	if pushLen < 1e-6 {
		return
	}
	normal := rl.Vector3Scale(push, 1/pushLen)
	restitution := (a.Collider.Restitution + b.Collider.Restitution) / 2
	friction := (a.Collider.Friction + b.Collider.Friction) / 2

	if b.Type != Dynamic {
		a.position = rl.Vector3Add(a.position, push)
		a.velocity = reflect(a.velocity, normal, restitution, friction, h)
		return
	}

	// Both dynamic: split the push by mass ratio
	totalMass := a.Mass + b.Mass
	if totalMass <= 0 {
		totalMass = 2
	}
	ratioA := b.Mass / totalMass
	ratioB := a.Mass / totalMass
	a.position = rl.Vector3Add(a.position, rl.Vector3Scale(push, ratioA))
	b.position = rl.Vector3Subtract(b.position, rl.Vector3Scale(push, ratioB))

	relVel := rl.Vector3Subtract(a.velocity, b.velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal >= 0 {
		return
	}
	impulse := -(1 + restitution) * velAlongNormal
	a.velocity = rl.Vector3Add(a.velocity, rl.Vector3Scale(normal, impulse*ratioA))
	b.velocity = rl.Vector3Subtract(b.velocity, rl.Vector3Scale(normal, impulse*ratioB))
	a.WakeUp()
	b.WakeUp()
}

// reflect removes the velocity into the contact normal, bounces it by
// restitution and damps the tangential part by friction.
func reflect(v, normal rl.Vector3, restitution, friction, h float32) rl.Vector3 {
	vn := rl.Vector3DotProduct(v, normal)
	if vn >= 0 {
		return v
	}
	normalPart := rl.Vector3Scale(normal, vn)
	tangent := rl.Vector3Subtract(v, normalPart)

	damp := 1 - friction*FrictionRate*h
	if damp < 0 {
		damp = 0
	}
	tangent = rl.Vector3Scale(tangent, damp)
	return rl.Vector3Add(tangent, rl.Vector3Scale(normal, -vn*restitution))
}

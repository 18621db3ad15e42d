// Package player drives the first-person capsule: camera follow, camera
// relative movement, the ground probe and jumping, once per frame.
package player

import (
	"boxworld/internal/camera"
	"boxworld/internal/engine"
	"boxworld/internal/input"
	"boxworld/internal/physics"
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoWorld = errors.New("player: physics world is required")
	ErrNoLoop  = errors.New("player: frame loop is required")
)

// InputSource yields one input snapshot per call.
type InputSource interface {
	Sample() input.State
}

type Options struct {
	World  *physics.World
	Loop   *engine.FrameLoop
	Camera *camera.Camera
	Input  InputSource
	Tuning Tuning
	Logger *slog.Logger

	// OnSpawn runs after the body is registered and the frame callback is
	// subscribed. Returning an error undoes both.
	OnSpawn func(p *Player) error
}

// Player owns the frame subscription but not the body: the body belongs to
// the physics world and the handle goes stale when the world drops it.
type Player struct {
	Tuning Tuning

	// Derived every frame
	Speed    float32
	Grounded bool
	Input    input.State

	body   *physics.Body
	world  *physics.World
	camera *camera.Camera
	input  InputSource
	sub    *engine.Subscription
	log    *slog.Logger
}

// Spawn inserts the player body at Tuning.Spawn and subscribes Frame to the
// loop. On any error nothing stays registered.
func Spawn(opts Options) (p *Player, err error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if opts.World == nil {
		return nil, ErrNoWorld
	}
	if opts.Loop == nil {
		return nil, ErrNoLoop
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	body := physics.NewBody(physics.Dynamic, opts.Tuning.Spawn, physics.Capsule{
		HalfHeight: opts.Tuning.CapsuleHalfHeight,
		Radius:     opts.Tuning.CapsuleRadius,
	})
	body.Mass = 1
	body.LockRotations = true
	body.CanSleep = false
	body.Collider.Friction = 0

	p = &Player{
		Tuning: opts.Tuning,
		body:   body,
		world:  opts.World,
		camera: opts.Camera,
		input:  opts.Input,
		log:    log,
	}
	body.UserData = p

	if err := opts.World.InsertBody(body); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	defer func() {
		if err != nil {
			opts.World.RemoveBody(body)
		}
	}()

	sub := opts.Loop.Subscribe(p.Frame)
	p.sub = sub
	defer func() {
		if err != nil {
			sub.Unsubscribe()
		}
	}()

	if opts.OnSpawn != nil {
		if err := opts.OnSpawn(p); err != nil {
			return nil, fmt.Errorf("spawn player: %w", err)
		}
	}

	log.Info("Player: spawned", "handle", body.Handle(), "x", opts.Tuning.Spawn.X, "y", opts.Tuning.Spawn.Y, "z", opts.Tuning.Spawn.Z)
	return p, nil
}

// Frame runs the per-frame update: camera follow, movement, ground probe,
// velocity write and jump. It never fails; a stale body skips the frame.
func (p *Player) Frame(engine.FrameContext) {
	if p == nil || !p.body.Valid() || p.world == nil {
		return
	}

	var in input.State
	if p.input != nil {
		in = p.input.Sample()
	}
	p.Input = in

	position := p.body.Translation()
	SyncCamera(p.camera, position)

	orientation := mgl32.QuatIdent()
	if p.camera != nil {
		orientation = p.camera.Rotation
	}

	p.Speed = MoveSpeed(in, p.Tuning)
	velocity := ComputeVelocity(in, orientation, p.body.Linvel().Y, p.Tuning)

	grounded := IsGrounded(p.world, position, p.Tuning.ProbeDistance, p.body)
	if grounded != p.Grounded {
		p.log.Debug("Player: grounded changed", "grounded", grounded, "y", position.Y)
	}
	p.Grounded = grounded

	UpdateBody(p.body, velocity, grounded, in.Jump, p.Tuning.JumpSpeed)
}

// SetTuning swaps movement constants at runtime. Spawn position and capsule
// size only apply to the next spawn.
func (p *Player) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.Tuning = t
	return nil
}

func (p *Player) Body() *physics.Body {
	return p.body
}

func (p *Player) Position() rl.Vector3 {
	return p.body.Translation()
}

// Active reports whether the player is still subscribed and its body registered.
func (p *Player) Active() bool {
	return p.sub.Active() && p.body.Valid()
}

// Close unsubscribes the frame callback and removes the body from the world.
// Safe to call more than once.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.sub.Unsubscribe()
	if p.world != nil && p.world.RemoveBody(p.body) {
		p.log.Info("Player: removed", "handle", p.body.Handle())
	}
}

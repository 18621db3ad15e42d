package player

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultBaseSpeed        = 5.0
	DefaultSprintMultiplier = 2.0
	DefaultCrouchMultiplier = 0.5
	DefaultJumpSpeed        = 7.5

	// DefaultProbeDistance reaches a little below the feet of the default
	// capsule (half height 0.75 + radius 0.5). Re-derive it when the capsule changes.
	DefaultProbeDistance = 1.75

	DefaultCapsuleHalfHeight = 0.75
	DefaultCapsuleRadius     = 0.5
)

var ErrInvalidTuning = errors.New("player: invalid tuning")

// Tuning holds the movement constants. All values are in world units and seconds.
type Tuning struct {
	BaseSpeed         float32
	SprintMultiplier  float32
	CrouchMultiplier  float32
	JumpSpeed         float32
	ProbeDistance     float32
	Spawn             rl.Vector3
	CapsuleHalfHeight float32
	CapsuleRadius     float32
}

func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:         DefaultBaseSpeed,
		SprintMultiplier:  DefaultSprintMultiplier,
		CrouchMultiplier:  DefaultCrouchMultiplier,
		JumpSpeed:         DefaultJumpSpeed,
		ProbeDistance:     DefaultProbeDistance,
		Spawn:             rl.Vector3{X: 0, Y: 10, Z: 0},
		CapsuleHalfHeight: DefaultCapsuleHalfHeight,
		CapsuleRadius:     DefaultCapsuleRadius,
	}
}

func (t Tuning) Validate() error {
	fields := []struct {
		name  string
		value float32
	}{
		{"base speed", t.BaseSpeed},
		{"sprint multiplier", t.SprintMultiplier},
		{"crouch multiplier", t.CrouchMultiplier},
		{"jump speed", t.JumpSpeed},
		{"probe distance", t.ProbeDistance},
		{"capsule radius", t.CapsuleRadius},
	}
	for _, f := range fields {
		if !(f.value > 0) || math32.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, f.name, f.value)
		}
	}
	if t.CapsuleHalfHeight < 0 {
		return fmt.Errorf("%w: capsule half height is negative", ErrInvalidTuning)
	}
	return nil
}

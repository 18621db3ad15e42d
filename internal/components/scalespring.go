package components

import (
	"boxworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spring presets, in the tension/friction form used by UI animation libraries
// (unit mass).
const (
	WobblyTension  = 180
	WobblyFriction = 12

	// ActiveScale is the uniform scale a toggled box springs to.
	ActiveScale = 1.5
	restEpsilon = 1e-3
)

// ScaleSpring animates the object's uniform scale toward a target with a
// damped spring. Toggle flips between 1 and ActiveScale.
type ScaleSpring struct {
	engine.BaseComponent
	Tension  float32
	Friction float32
	Target   float32
	Active   bool
	value    float32
	velocity float32
}

func NewScaleSpring() *ScaleSpring {
	return &ScaleSpring{
		Tension:  WobblyTension,
		Friction: WobblyFriction,
		Target:   1,
		value:    1,
	}
}

func (s *ScaleSpring) Toggle() {
	s.Active = !s.Active
	if s.Active {
		s.Target = ActiveScale
	} else {
		s.Target = 1
	}
}

func (s *ScaleSpring) Value() float32 {
	return s.value
}

// Resting reports whether the spring has settled on its target.
func (s *ScaleSpring) Resting() bool {
	d := s.Target - s.value
	return d < restEpsilon && d > -restEpsilon && s.velocity < restEpsilon && s.velocity > -restEpsilon
}

func (s *ScaleSpring) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil || deltaTime <= 0 {
		return
	}

	if s.Resting() {
		s.value = s.Target
		s.velocity = 0
	} else {
		// semi-implicit Euler, at most 1/120 s per slice
		const maxSlice = float32(1.0 / 120)
		for remaining := deltaTime; remaining > 0; remaining -= maxSlice {
			h := min(remaining, maxSlice)
			accel := s.Tension*(s.Target-s.value) - s.Friction*s.velocity
			s.velocity += accel * h
			s.value += s.velocity * h
		}
	}

	g.Transform.Scale = rl.Vector3{X: s.value, Y: s.value, Z: s.value}
}

package player

import (
	"boxworld/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MoveSpeed is the horizontal speed for the current modifiers. Sprint and
// crouch stack, so holding both gives the base speed.
func MoveSpeed(in input.State, t Tuning) float32 {
	speed := t.BaseSpeed
	if in.Sprint {
		speed *= t.SprintMultiplier
	}
	if in.Crouch {
		speed *= t.CrouchMultiplier
	}
	return speed
}

// ComputeVelocity turns the directional flags into a velocity relative to the
// camera orientation. Forward is -Z and left is -X in camera space. The Y
// component of the result is verticalVelocity, untouched.
func ComputeVelocity(in input.State, orientation mgl32.Quat, verticalVelocity float32, t Tuning) rl.Vector3 {
	front := rl.Vector3{Z: axis(in.Backward) - axis(in.Forward)}
	side := rl.Vector3{X: axis(in.Left) - axis(in.Right)}

	direction := normalize(rl.Vector3Subtract(front, side))
	direction = rl.Vector3Scale(direction, MoveSpeed(in, t))

	rotated := unit(orientation).Rotate(mgl32.Vec3{direction.X, direction.Y, direction.Z})
	return rl.Vector3{X: rotated[0], Y: verticalVelocity, Z: rotated[2]}
}

func axis(pressed bool) float32 {
	if pressed {
		return 1
	}
	return 0
}

// normalize returns the zero vector for a zero-length input instead of NaNs.
func normalize(v rl.Vector3) rl.Vector3 {
	length := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if length == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/length)
}

func unit(q mgl32.Quat) mgl32.Quat {
	l := q.Len()
	if l == 0 || math32.IsNaN(l) {
		return mgl32.QuatIdent()
	}
	if l == 1 {
		return q
	}
	return q.Normalize()
}

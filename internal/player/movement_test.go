package player

import (
	"math"
	"testing"

	"boxworld/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func finite(v rl.Vector3) bool {
	for _, c := range []float32{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func TestComputeVelocityAllDirectionCombinations(t *testing.T) {
	tuning := DefaultTuning()
	for mask := 0; mask < 16; mask++ {
		in := input.State{
			Forward:  mask&1 != 0,
			Backward: mask&2 != 0,
			Left:     mask&4 != 0,
			Right:    mask&8 != 0,
		}
		v := ComputeVelocity(in, mgl32.QuatIdent(), -1.5, tuning)

		assert.True(t, finite(v), "mask %04b gave %v", mask, v)
		assert.Equal(t, float32(-1.5), v.Y, "vertical velocity must pass through")

		horizontal := float32(math.Hypot(float64(v.X), float64(v.Z)))
		forwardAxis := in.Forward != in.Backward
		sideAxis := in.Left != in.Right
		if forwardAxis || sideAxis {
			assert.InDelta(t, DefaultBaseSpeed, horizontal, 1e-4, "mask %04b", mask)
		} else {
			assert.Zero(t, horizontal, "mask %04b", mask)
		}
	}
}

func TestComputeVelocityNoInputIsZero(t *testing.T) {
	v := ComputeVelocity(input.State{}, mgl32.QuatIdent(), 0, DefaultTuning())
	assert.Equal(t, rl.Vector3{}, v)

	opposed := input.State{Forward: true, Backward: true, Left: true, Right: true, Sprint: true}
	v = ComputeVelocity(opposed, mgl32.QuatIdent(), 3, DefaultTuning())
	assertVec(t, rl.Vector3{Y: 3}, v)
}

func TestComputeVelocityDirections(t *testing.T) {
	tests := []struct {
		name string
		in   input.State
		want rl.Vector3
	}{
		{"forward is -z", input.State{Forward: true}, rl.Vector3{Z: -5}},
		{"backward is +z", input.State{Backward: true}, rl.Vector3{Z: 5}},
		{"left is -x", input.State{Left: true}, rl.Vector3{X: -5}},
		{"right is +x", input.State{Right: true}, rl.Vector3{X: 5}},
		{"diagonal is normalized", input.State{Forward: true, Right: true}, rl.Vector3{X: 5 / math.Sqrt2, Z: -5 / math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ComputeVelocity(tt.in, mgl32.QuatIdent(), 0, DefaultTuning())
			assertVec(t, tt.want, v)
		})
	}
}

func TestComputeVelocityFollowsCameraYaw(t *testing.T) {
	yawLeft := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	v := ComputeVelocity(input.State{Forward: true}, yawLeft, 2, DefaultTuning())
	assertVec(t, rl.Vector3{X: -5, Y: 2, Z: 0}, v)

	v = ComputeVelocity(input.State{Right: true}, yawLeft, 2, DefaultTuning())
	assertVec(t, rl.Vector3{X: 0, Y: 2, Z: -5}, v)
}

func TestComputeVelocityDegenerateOrientation(t *testing.T) {
	v := ComputeVelocity(input.State{Forward: true}, mgl32.Quat{}, 0, DefaultTuning())
	assertVec(t, rl.Vector3{Z: -5}, v)

	scaled := mgl32.QuatIdent().Scale(3)
	v = ComputeVelocity(input.State{Forward: true}, scaled, 0, DefaultTuning())
	assertVec(t, rl.Vector3{Z: -5}, v)
}

func TestMoveSpeedModifiers(t *testing.T) {
	tuning := DefaultTuning()

	assert.Equal(t, float32(5), MoveSpeed(input.State{}, tuning))
	assert.Equal(t, float32(10), MoveSpeed(input.State{Sprint: true}, tuning))
	assert.Equal(t, float32(2.5), MoveSpeed(input.State{Crouch: true}, tuning))
	assert.Equal(t, float32(5), MoveSpeed(input.State{Sprint: true, Crouch: true}, tuning))

	v := ComputeVelocity(input.State{Backward: true, Sprint: true}, mgl32.QuatIdent(), 0, tuning)
	assertVec(t, rl.Vector3{Z: 10}, v)
	v = ComputeVelocity(input.State{Backward: true, Crouch: true}, mgl32.QuatIdent(), 0, tuning)
	assertVec(t, rl.Vector3{Z: 2.5}, v)
}

func TestTuningValidate(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())

	bad := DefaultTuning()
	bad.ProbeDistance = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidTuning)

	bad = DefaultTuning()
	bad.BaseSpeed = float32(math.NaN())
	assert.ErrorIs(t, bad.Validate(), ErrInvalidTuning)

	bad = DefaultTuning()
	bad.CapsuleHalfHeight = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidTuning)
}

package player

import (
	"math"
	"testing"

	"boxworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type fakeCaster struct {
	hit    physics.RayHit
	ok     bool
	calls  int
	ray    physics.Ray
	maxToi float32
	solid  bool
	filter physics.QueryFilter
}

func (f *fakeCaster) CastRay(ray physics.Ray, maxToi float32, solid bool, filter physics.QueryFilter) (physics.RayHit, bool) {
	f.calls++
	f.ray, f.maxToi, f.solid, f.filter = ray, maxToi, solid, filter
	return f.hit, f.ok
}

func hitAt(toi float32) *fakeCaster {
	return &fakeCaster{hit: physics.RayHit{Collider: &physics.Collider{}, TimeOfImpact: toi}, ok: true}
}

func TestIsGroundedTimeOfImpact(t *testing.T) {
	tests := []struct {
		name   string
		caster *fakeCaster
		want   bool
	}{
		{"hit at the limit", hitAt(1.75), true},
		{"hit close", hitAt(1.25), true},
		{"hit at zero", hitAt(0), true},
		{"hit past the limit", hitAt(1.76), false},
		{"unbounded hit", hitAt(float32(math.Inf(1))), false},
		{"NaN hit", hitAt(float32(math.NaN())), false},
		{"negative toi within range", hitAt(-1), true},
		{"negative toi out of range", hitAt(-2), false},
		{"no hit", &fakeCaster{}, false},
		{"hit without collider", &fakeCaster{ok: true, hit: physics.RayHit{TimeOfImpact: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsGrounded(tt.caster, rl.Vector3{Y: 1.25}, DefaultProbeDistance, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsGroundedQuery(t *testing.T) {
	caster := hitAt(1)
	self := physics.NewBody(physics.Dynamic, rl.Vector3{}, physics.Capsule{HalfHeight: 0.75, Radius: 0.5})
	origin := rl.Vector3{X: 3, Y: 4, Z: 5}

	IsGrounded(caster, origin, 1.75, self)

	assert.Equal(t, 1, caster.calls)
	assert.Equal(t, origin, caster.ray.Origin)
	assert.Equal(t, rl.Vector3{Y: -1}, caster.ray.Dir)
	assert.Equal(t, float32(1.75), caster.maxToi)
	assert.False(t, caster.solid)
	assert.Same(t, self, caster.filter.ExcludeBody)
}

func TestIsGroundedNoWorld(t *testing.T) {
	assert.False(t, IsGrounded(nil, rl.Vector3{}, 1.75, nil))

	caster := hitAt(0)
	assert.False(t, IsGrounded(caster, rl.Vector3{}, 0, nil))
	assert.Zero(t, caster.calls)
}

func TestIsGroundedAgainstWorld(t *testing.T) {
	world := physics.NewWorld(rl.Vector3{Y: -9.8})
	floor := physics.NewBody(physics.Fixed, rl.Vector3{Y: -0.5}, physics.Cuboid{Half: rl.Vector3{X: 10, Y: 0.5, Z: 10}})
	self := physics.NewBody(physics.Dynamic, rl.Vector3{Y: 1.25}, physics.Capsule{HalfHeight: 0.75, Radius: 0.5})
	assert.NoError(t, world.InsertBody(floor))
	assert.NoError(t, world.InsertBody(self))

	assert.True(t, IsGrounded(world, rl.Vector3{Y: 1.25}, 1.75, self))
	assert.True(t, IsGrounded(world, rl.Vector3{Y: 1.75}, 1.75, self))
	assert.False(t, IsGrounded(world, rl.Vector3{Y: 2.5}, 1.75, self))
	assert.False(t, IsGrounded(world, rl.Vector3{X: 20, Y: 1.25}, 1.75, self), "off the edge")
}

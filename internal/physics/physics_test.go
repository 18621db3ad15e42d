package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloor() *Body {
	floor := NewBody(Fixed, rl.Vector3{X: 0, Y: -0.5, Z: 0}, Cuboid{Half: rl.Vector3{X: 50, Y: 0.5, Z: 50}})
	return floor
}

func newBox(pos rl.Vector3) *Body {
	return NewBody(Dynamic, pos, Cuboid{Half: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}})
}

func TestAABBResolve(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{Y: 0.4}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	b := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 0.5, Z: 10})

	push := a.Resolve(b)
	assert.InDelta(t, 0.1, push.Y, 1e-5)
	assert.Zero(t, push.X)
	assert.Zero(t, push.Z)

	far := NewAABBFromCenter(rl.Vector3{Y: 10}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	assert.Equal(t, rl.Vector3Zero(), far.Resolve(b))
}

func TestAABBRayIntersect(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	tEnter, tExit, ok := box.RayIntersect(rl.Vector3{Y: 5}, rl.Vector3{Y: -1})
	require.True(t, ok)
	assert.InDelta(t, 4, tEnter, 1e-5)
	assert.InDelta(t, 6, tExit, 1e-5)

	_, _, ok = box.RayIntersect(rl.Vector3{Y: 5}, rl.Vector3{Y: 1})
	assert.False(t, ok, "box behind the ray")

	_, _, ok = box.RayIntersect(rl.Vector3{X: 3, Y: 5}, rl.Vector3{Y: -1})
	assert.False(t, ok, "parallel ray outside the slab")
}

func TestInsertAndRemoveBody(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	b := newBox(rl.Vector3{})

	assert.False(t, b.Valid())
	require.NoError(t, w.InsertBody(b))
	assert.True(t, b.Valid())
	assert.NotZero(t, b.Handle())
	assert.Equal(t, 1, w.BodyCount())

	err := w.InsertBody(b)
	assert.ErrorIs(t, err, ErrBodyRegistered)

	assert.True(t, w.RemoveBody(b))
	assert.False(t, b.Valid())
	assert.False(t, w.RemoveBody(b))
	assert.Zero(t, w.BodyCount())

	var nilBody *Body
	assert.False(t, nilBody.Valid())
	assert.ErrorIs(t, w.InsertBody(nil), ErrNoCollider)
}

func TestClearInvalidatesHandles(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	a, b := newBox(rl.Vector3{}), newFloor()
	require.NoError(t, w.InsertBody(a))
	require.NoError(t, w.InsertBody(b))

	w.Clear()

	assert.False(t, a.Valid())
	assert.False(t, b.Valid())
	assert.Zero(t, w.BodyCount())
}

func TestStepUsesFixedSubsteps(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	w.Timestep = 0.25

	assert.Equal(t, 2, w.Step(0.5))
	assert.Equal(t, 0, w.Step(0.125))
	assert.Equal(t, 1, w.Step(0.125))
	assert.Equal(t, DefaultMaxSubsteps, w.Step(10))
	assert.Equal(t, 0, w.Step(0), "leftover time is dropped after a long frame")
	assert.Equal(t, 0, w.Step(-1))
}

func TestDynamicBodyFallsAndRestsOnFloor(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	floor := newFloor()
	box := newBox(rl.Vector3{Y: 5})
	require.NoError(t, w.InsertBody(floor))
	require.NoError(t, w.InsertBody(box))

	w.Step(0.5)
	assert.Less(t, box.Translation().Y, float32(5), "box should fall")
	assert.Less(t, box.Linvel().Y, float32(0))

	for range 300 {
		w.Step(1.0 / 60.0)
	}

	assert.InDelta(t, 0.5, box.Translation().Y, 0.01)
	assert.InDelta(t, 0, rl.Vector3Length(box.Linvel()), 0.05)
	assert.True(t, box.IsSleeping())
	assert.Equal(t, float32(-0.5), floor.Translation().Y, "fixed bodies never move")
}

func TestGravityScaleZero(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	b := newBox(rl.Vector3{Y: 3})
	b.GravityScale = 0
	require.NoError(t, w.InsertBody(b))

	for range 60 {
		w.Step(1.0 / 60.0)
	}
	assert.Equal(t, float32(3), b.Translation().Y)
}

func TestFixedBodyIgnoresSetLinvel(t *testing.T) {
	floor := newFloor()
	floor.SetLinvel(rl.Vector3{X: 1}, true)
	assert.Equal(t, rl.Vector3{}, floor.Linvel())
}

func TestSleepingBodyWakesOnVelocity(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	require.NoError(t, w.InsertBody(newFloor()))
	box := newBox(rl.Vector3{Y: 0.5})
	require.NoError(t, w.InsertBody(box))

	for range 120 {
		w.Step(1.0 / 60.0)
	}
	require.True(t, box.IsSleeping())

	box.SetLinvel(rl.Vector3{X: 4}, false)
	w.Step(1.0 / 60.0)

	assert.False(t, box.IsSleeping())
	assert.Greater(t, box.Translation().X, float32(0))
}

func TestDynamicBodiesPushEachOther(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := newBox(rl.Vector3{X: -0.4})
	b := newBox(rl.Vector3{X: 0.4})
	a.CanSleep, b.CanSleep = false, false
	require.NoError(t, w.InsertBody(a))
	require.NoError(t, w.InsertBody(b))

	w.Step(1.0 / 60.0)

	gap := b.Translation().X - a.Translation().X
	assert.InDelta(t, 1.0, gap, 1e-4)
	assert.InDelta(t, 0, a.Translation().X+b.Translation().X, 1e-4, "equal masses share the push")
}

func TestCastRayHitsFloor(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	floor := newFloor()
	require.NoError(t, w.InsertBody(floor))

	ray := Ray{Origin: rl.Vector3{Y: 1.25}, Dir: rl.Vector3{Y: -1}}

	hit, ok := w.CastRay(ray, 1.75, false, QueryFilter{})
	require.True(t, ok)
	assert.Same(t, floor.Collider, hit.Collider)
	assert.Same(t, floor, hit.Collider.Body())
	assert.InDelta(t, 1.25, hit.TimeOfImpact, 1e-5)
	assert.InDelta(t, 0, ray.PointAt(hit.TimeOfImpact).Y, 1e-5)

	_, ok = w.CastRay(ray, 1.0, false, QueryFilter{})
	assert.False(t, ok, "floor is beyond maxToi")

	_, ok = w.CastRay(Ray{Origin: rl.Vector3{Y: 1.25}, Dir: rl.Vector3{Y: 1}}, 100, false, QueryFilter{})
	assert.False(t, ok, "nothing above")
}

func TestCastRayFilterAndSolid(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -9.8})
	floor := newFloor()
	player := NewBody(Dynamic, rl.Vector3{Y: 1.25}, Capsule{HalfHeight: 0.75, Radius: 0.5})
	require.NoError(t, w.InsertBody(floor))
	require.NoError(t, w.InsertBody(player))

	ray := Ray{Origin: player.Translation(), Dir: rl.Vector3{Y: -1}}

	hit, ok := w.CastRay(ray, 1.75, true, QueryFilter{})
	require.True(t, ok)
	assert.Same(t, player.Collider, hit.Collider)
	assert.Zero(t, hit.TimeOfImpact, "solid query starting inside the capsule")

	hit, ok = w.CastRay(ray, 1.75, false, QueryFilter{})
	require.True(t, ok)
	assert.InDelta(t, 1.25, hit.TimeOfImpact, 1e-5, "hollow query exits the capsule")

	hit, ok = w.CastRay(ray, 1.75, true, QueryFilter{ExcludeBody: player})
	require.True(t, ok)
	assert.Same(t, floor.Collider, hit.Collider)

	_, ok = w.CastRay(ray, 1.75, true, QueryFilter{
		ExcludeBody: player,
		Predicate:   func(c *Collider) bool { return c.Body().Type == Dynamic },
	})
	assert.False(t, ok)
}

func TestCastRayReturnsClosest(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	low := newBox(rl.Vector3{Y: 0})
	high := newBox(rl.Vector3{Y: 3})
	require.NoError(t, w.InsertBody(low))
	require.NoError(t, w.InsertBody(high))

	hit, ok := w.CastRay(Ray{Origin: rl.Vector3{Y: 10}, Dir: rl.Vector3{Y: -1}}, 20, false, QueryFilter{})
	require.True(t, ok)
	assert.Same(t, high.Collider, hit.Collider)
	assert.InDelta(t, 6.5, hit.TimeOfImpact, 1e-5)
}

func TestCapsuleHalfExtents(t *testing.T) {
	c := Capsule{HalfHeight: 0.75, Radius: 0.5}
	assert.Equal(t, rl.Vector3{X: 0.5, Y: 1.25, Z: 0.5}, c.HalfExtents())
}

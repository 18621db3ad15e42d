package player

import (
	"boxworld/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayCaster is the scene query the ground probe needs from the physics world.
type RayCaster interface {
	CastRay(ray physics.Ray, maxToi float32, solid bool, filter physics.QueryFilter) (physics.RayHit, bool)
}

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

// IsGrounded casts straight down from origin and reports whether a collider
// lies within maxDistance. exclude is skipped so the probe doesn't report the
// body it starts inside. The distance is re-checked on the result in case the
// world hands back a negative or unbounded time of impact.
func IsGrounded(world RayCaster, origin rl.Vector3, maxDistance float32, exclude *physics.Body) bool {
	if world == nil || !(maxDistance > 0) {
		return false
	}
	ray := physics.Ray{Origin: origin, Dir: down}
	hit, ok := world.CastRay(ray, maxDistance, false, physics.QueryFilter{ExcludeBody: exclude})
	if !ok || hit.Collider == nil {
		return false
	}
	return math32.Abs(hit.TimeOfImpact) <= maxDistance
}

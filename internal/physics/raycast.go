package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Ray struct {
	Origin rl.Vector3
	Dir    rl.Vector3
}

// PointAt returns Origin + Dir*t.
func (r Ray) PointAt(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Dir, t))
}

// RayHit is the closest collider along a ray. TimeOfImpact is measured in
// multiples of the ray direction's length.
type RayHit struct {
	Collider     *Collider
	TimeOfImpact float32
}

// QueryFilter narrows a scene query. The zero value matches every collider.
type QueryFilter struct {
	ExcludeBody *Body
	Predicate   func(c *Collider) bool
}

func (f QueryFilter) accepts(c *Collider) bool {
	if f.ExcludeBody != nil && c.body == f.ExcludeBody {
		return false
	}
	if f.Predicate != nil && !f.Predicate(c) {
		return false
	}
	return true
}

// CastRay returns the closest collider hit within maxToi.
//
// With solid set, a ray starting inside a collider hits it at time 0. Without
// it the shape is treated as hollow and the hit is where the ray leaves it.
// Read-only: the world is not modified.
func (w *World) CastRay(ray Ray, maxToi float32, solid bool, filter QueryFilter) (RayHit, bool) {
	if maxToi < 0 || math32.IsNaN(maxToi) {
		return RayHit{}, false
	}
	if rl.Vector3Length(ray.Dir) == 0 {
		return RayHit{}, false
	}

	var closest RayHit
	hit := false
	for _, b := range w.bodies {
		c := b.Collider
		if c == nil || !filter.accepts(c) {
			continue
		}
		toi, ok := castCollider(ray, c.AABB(), maxToi, solid)
		if !ok {
			continue
		}
		if !hit || toi < closest.TimeOfImpact {
			closest = RayHit{Collider: c, TimeOfImpact: toi}
			hit = true
		}
	}
	return closest, hit
}

func castCollider(ray Ray, box AABB, maxToi float32, solid bool) (float32, bool) {
	tEnter, tExit, ok := box.RayIntersect(ray.Origin, ray.Dir)
	if !ok {
		return 0, false
	}
	t := tEnter
	if t < 0 {
		// Origin is inside the box
		if solid {
			t = 0
		} else {
			t = tExit
		}
	}
	if t > maxToi {
		return 0, false
	}
	return t, true
}

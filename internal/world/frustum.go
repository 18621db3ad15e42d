package world

import (
	"boxworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NearPlane float32 = 0.1
	FarPlane  float32 = 2000.0
)

// Frustum holds the six view planes (left, right, bottom, top, near, far),
// normals pointing inward.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

func (p Plane) distanceTo(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, v) + p.Distance
}

// ExtractFrustum builds the planes of a perspective camera with the given
// aspect ratio (Gribb/Hartmann extraction from the view-projection matrix).
// Fovy stays in degrees; raymath's perspective matrix converts it.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy, aspect, NearPlane, FarPlane)
	m := rl.MatrixMultiply(view, proj)

	row := func(sign float32, x, y, z, w float32) Plane {
		return normalizePlane(Plane{
			Normal:   rl.Vector3{X: m.M3 + sign*x, Y: m.M7 + sign*y, Z: m.M11 + sign*z},
			Distance: m.M15 + sign*w,
		})
	}

	var f Frustum
	f.planes[0] = row(1, m.M0, m.M4, m.M8, m.M12)
	f.planes[1] = row(-1, m.M0, m.M4, m.M8, m.M12)
	f.planes[2] = row(1, m.M1, m.M5, m.M9, m.M13)
	f.planes[3] = row(-1, m.M1, m.M5, m.M9, m.M13)
	f.planes[4] = row(1, m.M2, m.M6, m.M10, m.M14)
	f.planes[5] = row(-1, m.M2, m.M6, m.M10, m.M14)
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   rl.Vector3Scale(p.Normal, 1.0/length),
		Distance: p.Distance / length,
	}
}

// ContainsAABB is conservative: it only rejects boxes entirely behind one plane.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := range f.planes {
		p := f.planes[i]
		// corner furthest along the plane normal
		corner := box.Min
		if p.Normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.Normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.Normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if p.distanceTo(corner) < 0 {
			return false
		}
	}
	return true
}

package player

import (
	"boxworld/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is the part of a physics body handle the updater touches.
type Body interface {
	Translation() rl.Vector3
	Linvel() rl.Vector3
	SetLinvel(v rl.Vector3, wake bool)
	Valid() bool
}

// UpdateBody writes the horizontal velocity into body and keeps the vertical
// velocity the body has right now, so gravity applied since the last frame is
// preserved. A jump replaces the vertical part with jumpSpeed, but only while
// grounded. Stale handles are skipped.
func UpdateBody(body Body, horizontal rl.Vector3, grounded, jump bool, jumpSpeed float32) {
	if body == nil || !body.Valid() {
		return
	}
	current := body.Linvel()
	next := rl.Vector3{X: horizontal.X, Y: current.Y, Z: horizontal.Z}
	body.SetLinvel(next, false)

	if jump && grounded {
		next.Y = jumpSpeed
		body.SetLinvel(next, false)
	}
}

// SyncCamera snaps the camera to the body position. No smoothing.
func SyncCamera(cam *camera.Camera, bodyPosition rl.Vector3) {
	if cam == nil {
		return
	}
	cam.Position = bodyPosition
}

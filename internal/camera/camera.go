package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFovy        = 75.0
	DefaultSensitivity = 0.1 // degrees per pixel of mouse motion
	MaxPitch           = 89.0
)

// Camera is the render camera. Position is written by whatever the camera
// follows; Rotation is written by the look controller.
type Camera struct {
	Position rl.Vector3
	Rotation mgl32.Quat
	Fovy     float32
}

func New(pos rl.Vector3, fovy float32) *Camera {
	if fovy <= 0 {
		fovy = DefaultFovy
	}
	return &Camera{
		Position: pos,
		Rotation: mgl32.QuatIdent(),
		Fovy:     fovy,
	}
}

// Forward is the view direction. An unrotated camera looks down -Z.
func (c *Camera) Forward() rl.Vector3 {
	return fromMgl(c.Rotation.Rotate(mgl32.Vec3{0, 0, -1}))
}

func (c *Camera) Up() rl.Vector3 {
	return fromMgl(c.Rotation.Rotate(mgl32.Vec3{0, 1, 0}))
}

// Ray is the view ray through the screen centre (the crosshair).
func (c *Camera) Ray() (origin, dir rl.Vector3) {
	return c.Position, c.Forward()
}

func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         c.Up(),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Look is a first-person mouse-look controller. Yaw turns around world Y,
// pitch around the camera's X axis; roll is always zero.
type Look struct {
	Yaw         float32 // degrees, positive turns left
	Pitch       float32 // degrees, positive looks up
	Sensitivity float32
}

func NewLook(sensitivity float32) *Look {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Look{Sensitivity: sensitivity}
}

// Apply turns the view by a mouse delta in pixels.
func (l *Look) Apply(delta rl.Vector2) {
	l.Yaw -= delta.X * l.Sensitivity
	l.Pitch -= delta.Y * l.Sensitivity

	if l.Pitch > MaxPitch {
		l.Pitch = MaxPitch
	}
	if l.Pitch < -MaxPitch {
		l.Pitch = -MaxPitch
	}
	for l.Yaw > 180 {
		l.Yaw -= 360
	}
	for l.Yaw < -180 {
		l.Yaw += 360
	}
}

// Orientation builds the camera rotation, yaw first then pitch.
func (l *Look) Orientation() mgl32.Quat {
	return mgl32.AnglesToQuat(mgl32.DegToRad(l.Yaw), mgl32.DegToRad(l.Pitch), 0, mgl32.YXZ)
}

// Update applies the mouse delta and writes the orientation into c.
func (l *Look) Update(c *Camera, delta rl.Vector2) {
	if c == nil {
		return
	}
	l.Apply(delta)
	c.Rotation = l.Orientation()
}

func fromMgl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

package components

import (
	"boxworld/internal/engine"
	"boxworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HoverColor is the tint used while the crosshair rests on a box.
var HoverColor = rl.NewColor(255, 105, 180, 255)

type BoxMesh struct {
	engine.BaseComponent
	Size       rl.Vector3
	Color      rl.Color
	HoverColor rl.Color
	WireColor  rl.Color
	Hovered    bool
	Wireframe  bool
}

func NewBoxMesh(size rl.Vector3, color rl.Color) *BoxMesh {
	return &BoxMesh{
		Size:       size,
		Color:      color,
		HoverColor: HoverColor,
		WireColor:  rl.DarkGray,
		Wireframe:  true,
	}
}

// CurrentColor returns the fill colour for this frame.
func (b *BoxMesh) CurrentColor() rl.Color {
	if b.Hovered {
		return b.HoverColor
	}
	return b.Color
}

// Bounds is the world-space box covered by the mesh.
func (b *BoxMesh) Bounds() physics.AABB {
	var pos rl.Vector3
	if g := b.GetGameObject(); g != nil {
		pos = g.Transform.Position
	}
	return physics.NewAABBFromCenter(pos, rl.Vector3Scale(b.DrawSize(), 0.5))
}

// DrawSize is the box size after the object's transform scale is applied.
func (b *BoxMesh) DrawSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.Transform.Scale
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

// Draw renders the box at the object's position. Edges are drawn when both
// showWires and the mesh's own Wireframe flag are set.
func (b *BoxMesh) Draw(showWires bool) {
	g := b.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.Transform.Position
	size := b.DrawSize()
	rl.DrawCubeV(pos, size, b.CurrentColor())
	if showWires && b.Wireframe {
		rl.DrawCubeWiresV(pos, size, b.WireColor)
	}
}

package world

import (
	"boxworld/internal/components"
	"boxworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var SkyColor = rl.NewColor(135, 190, 235, 255)

const (
	GridSlices  = 100
	GridSpacing = 1.0

	CrosshairRadius = 4
)

type RenderStats struct {
	Drawn  int
	Culled int
}

type Renderer struct {
	SkyColor    rl.Color
	GridSlices  int32
	GridSpacing float32
	Wireframe   bool
	Culling     bool
	Stats       RenderStats
}

func NewRenderer() *Renderer {
	return &Renderer{
		SkyColor:    SkyColor,
		GridSlices:  GridSlices,
		GridSpacing: GridSpacing,
		Wireframe:   true,
		Culling:     true,
	}
}

// Visible returns the meshes of active objects that intersect the frustum and
// records the draw/cull counts. With culling off every mesh is visible.
func (r *Renderer) Visible(frustum *Frustum, gameObjects []*engine.GameObject) []*components.BoxMesh {
	r.Stats = RenderStats{}
	visible := make([]*components.BoxMesh, 0, len(gameObjects))
	for _, g := range gameObjects {
		if !g.Active {
			continue
		}
		mesh := engine.GetComponent[*components.BoxMesh](g)
		if mesh == nil {
			continue
		}
		if r.Culling && frustum != nil && !frustum.ContainsAABB(mesh.Bounds()) {
			r.Stats.Culled++
			continue
		}
		visible = append(visible, mesh)
	}
	r.Stats.Drawn = len(visible)
	return visible
}

// Draw clears to the sky colour and renders the scene from camera. Must be
// called between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.ClearBackground(r.SkyColor)

	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := ExtractFrustum(camera, aspect)
	meshes := r.Visible(&frustum, gameObjects)

	rl.BeginMode3D(camera)
	for _, mesh := range meshes {
		mesh.Draw(r.Wireframe)
	}
	// grid sits just above the floor top face
	drawGrid(r.GridSlices, r.GridSpacing)
	rl.EndMode3D()
}

func drawGrid(slices int32, spacing float32) {
	if slices <= 0 {
		return
	}
	rl.PushMatrix()
	rl.Translatef(0, 0.01, 0)
	rl.DrawGrid(slices, spacing)
	rl.PopMatrix()
}

// DrawCrosshair draws the aim circle at the screen centre.
func DrawCrosshair() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawCircleLines(cx, cy, CrosshairRadius, rl.White)
	rl.DrawCircleLines(cx, cy, CrosshairRadius+1, rl.White)
}

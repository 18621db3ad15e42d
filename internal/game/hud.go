package game

import (
	"boxworld/internal/player"
	"boxworld/internal/world"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudX        = 10
	hudY        = 10
	hudLineH    = 20
	hudFontSize = 18
	hudWidth    = 240
)

var (
	colorHudPanel = rl.NewColor(18, 18, 24, 200)
	colorHudText  = rl.NewColor(235, 235, 240, 255)
	colorAccent   = rl.NewColor(108, 99, 255, 255)
)

// HUD is the overlay panel: read-outs for the player plus sliders for the
// live tuning values. Widgets only take input while the cursor is released.
type HUD struct {
	Visible   bool
	BaseSpeed float32
	JumpSpeed float32
	Wireframe bool
	Culling   bool
}

func NewHUD(t player.Tuning) *HUD {
	return &HUD{
		Visible:   true,
		BaseSpeed: t.BaseSpeed,
		JumpSpeed: t.JumpSpeed,
		Wireframe: true,
		Culling:   true,
	}
}

// SetTuning refreshes the slider values, e.g. after a config reload.
func (h *HUD) SetTuning(t player.Tuning) {
	h.BaseSpeed = t.BaseSpeed
	h.JumpSpeed = t.JumpSpeed
}

// Apply returns t with the slider values written over it.
func (h *HUD) Apply(t player.Tuning) player.Tuning {
	t.BaseSpeed = h.BaseSpeed
	t.JumpSpeed = h.JumpSpeed
	return t
}

// Lines formats the read-outs shown at the top of the panel.
func (h *HUD) Lines(p *player.Player, boxes int, stats world.RenderStats, fps int32) []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Boxes: %d  (drawn %d, culled %d)", boxes, stats.Drawn, stats.Culled),
	}
	if p == nil || !p.Active() {
		return append(lines, "Player: despawned")
	}
	pos := p.Position()
	return append(lines,
		fmt.Sprintf("Speed: %.1f", p.Speed),
		fmt.Sprintf("Grounded: %t", p.Grounded),
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z),
	)
}

// Draw renders the panel and reports whether a tuning slider moved.
func (h *HUD) Draw(lines []string, interactive bool) bool {
	if !h.Visible {
		return false
	}

	widgets := 4
	height := int32(len(lines)*hudLineH + widgets*(hudLineH+6) + 40)
	rl.DrawRectangle(hudX-4, hudY-4, hudWidth+110, height, colorHudPanel)

	y := int32(hudY)
	for _, line := range lines {
		rl.DrawText(line, hudX, y, hudFontSize, colorHudText)
		y += hudLineH
	}
	y += 6

	prevSpeed, prevJump := h.BaseSpeed, h.JumpSpeed
	if interactive {
		bounds := func() rl.Rectangle {
			r := rl.Rectangle{X: hudX + 100, Y: float32(y), Width: hudWidth - 100, Height: hudLineH}
			y += hudLineH + 6
			return r
		}
		h.BaseSpeed = gui.Slider(bounds(), "Base speed", fmt.Sprintf("%.1f", h.BaseSpeed), h.BaseSpeed, 0.5, 20)
		h.JumpSpeed = gui.Slider(bounds(), "Jump speed", fmt.Sprintf("%.1f", h.JumpSpeed), h.JumpSpeed, 0.5, 20)

		wire := bounds()
		wire.Width = wire.Height
		h.Wireframe = gui.CheckBox(wire, "Wireframe", h.Wireframe)
		cull := bounds()
		cull.Width = cull.Height
		h.Culling = gui.CheckBox(cull, "Culling", h.Culling)
	} else {
		rl.DrawText(fmt.Sprintf("Base speed: %.1f  Jump speed: %.1f", h.BaseSpeed, h.JumpSpeed), hudX, y, hudFontSize, colorHudText)
		y += hudLineH
		rl.DrawText("Tab: release cursor to edit", hudX, y, hudFontSize, colorAccent)
	}

	return h.BaseSpeed != prevSpeed || h.JumpSpeed != prevJump
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(28, 28, 38, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(38, 38, 52, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorHudText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

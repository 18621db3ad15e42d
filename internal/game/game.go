// Package game owns the window and the per-frame order: input and look,
// frame subscribers, physics, scene sync, then drawing.
package game

import (
	"boxworld/internal/camera"
	"boxworld/internal/config"
	"boxworld/internal/engine"
	"boxworld/internal/input"
	"boxworld/internal/logger"
	"boxworld/internal/physics"
	"boxworld/internal/player"
	"boxworld/internal/world"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config   *config.Config
	Physics  *physics.World
	World    *world.World
	Loop     *engine.FrameLoop
	Camera   *camera.Camera
	Look     *camera.Look
	Player   *player.Player
	Renderer *world.Renderer
	HUD      *HUD

	// Keys is polled by the input sampler; raylib unless replaced before Setup.
	Keys       input.KeySource
	ConfigPath string
	Captured   bool

	sampler *input.Sampler
	watcher *config.Watcher
	log     *slog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, configPath string) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Game{
		Config:     cfg,
		ConfigPath: configPath,
		Keys:       input.RaylibKeys{},
		Loop:       engine.NewFrameLoop(),
		Renderer:   world.NewRenderer(),
		log:        logger.L(),
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
	initHUDStyle()

	if err := g.Setup(); err != nil {
		return err
	}
	defer g.Close()

	g.watchConfig()
	g.capture(true)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

// Setup builds everything that doesn't need a window: physics, the scene,
// the camera and the player. A failure leaves nothing registered.
func (g *Game) Setup() (err error) {
	keys, err := g.Config.Keys.Parse()
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	g.sampler = input.NewSampler(g.Keys, keys)

	g.Physics = physics.NewWorld(g.Config.Physics.Gravity.Raylib())
	g.Physics.Timestep = g.Config.Physics.Timestep
	g.Physics.MaxSubsteps = g.Config.Physics.MaxSubsteps
	g.Physics.SetLogger(g.log)

	g.World = world.New(g.Physics, g.log)
	defer func() {
		if err != nil {
			g.World.Unload()
		}
	}()
	if err := g.World.Initialize(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	tuning := g.Config.Tuning()
	g.Camera = camera.New(tuning.Spawn, g.Config.Camera.Fov)
	g.Look = camera.NewLook(g.Config.Camera.Sensitivity)
	g.Camera.Rotation = g.Look.Orientation()

	g.Player, err = player.Spawn(player.Options{
		World:  g.Physics,
		Loop:   g.Loop,
		Camera: g.Camera,
		Input:  g.sampler,
		Tuning: tuning,
		Logger: g.log,
	})
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	g.HUD = NewHUD(tuning)
	return nil
}

// Step advances one frame without touching the window: config reloads,
// mouse look, frame subscribers (the player), physics, scene sync and hover.
func (g *Game) Step(deltaTime float32, mouseDelta rl.Vector2) {
	g.pollConfig()

	if g.Captured {
		g.Look.Update(g.Camera, mouseDelta)
	}
	g.Loop.Tick(deltaTime)
	g.Physics.Step(deltaTime)
	g.World.Update(deltaTime)

	origin, dir := g.Camera.Ray()
	g.World.UpdateHover(origin, dir, g.Player.Body())
}

// Click fires the crosshair ray: toggles the box under it and spawns a dirt
// box on the z=0 plane.
func (g *Game) Click() (*engine.GameObject, error) {
	origin, dir := g.Camera.Ray()
	return g.World.Click(origin, dir, g.Player.Body())
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.capture(!g.Captured)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Visible = !g.HUD.Visible
	}

	g.Step(deltaTime, rl.GetMouseDelta())

	if g.Captured && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if _, err := g.Click(); err != nil {
			g.log.Warn("Game: spawn failed", "err", err)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	drawStart := time.Now()
	rl.BeginDrawing()

	g.Renderer.Wireframe = g.HUD.Wireframe
	g.Renderer.Culling = g.HUD.Culling
	g.Renderer.Draw(g.Camera.Raylib(), g.World.Scene.GameObjects)
	world.DrawCrosshair()

	lines := g.HUD.Lines(g.Player, len(g.World.Boxes()), g.Renderer.Stats, rl.GetFPS())
	lines = append(lines, fmt.Sprintf("Frame %d  Update: %.2f ms  Draw: %.2f ms", g.Loop.Frame(), g.updateMs, g.drawMs))
	if g.HUD.Draw(lines, !g.Captured) {
		if err := g.Player.SetTuning(g.HUD.Apply(g.Player.Tuning)); err != nil {
			g.log.Warn("Game: tuning rejected", "err", err)
		}
	}

	rl.EndDrawing()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

// capture locks the cursor for mouse look or releases it for the HUD.
func (g *Game) capture(on bool) {
	g.Captured = on
	if on {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

// ApplyConfig swaps in a reloaded config. Window and spawn settings only
// take effect on the next start.
func (g *Game) ApplyConfig(cfg *config.Config) error {
	keys, err := cfg.Keys.Parse()
	if err != nil {
		return err
	}
	tuning := cfg.Tuning()
	if err := g.Player.SetTuning(tuning); err != nil {
		return err
	}

	g.sampler.SetKeys(keys)
	g.Physics.Gravity = cfg.Physics.Gravity.Raylib()
	g.Physics.Timestep = cfg.Physics.Timestep
	g.Physics.MaxSubsteps = cfg.Physics.MaxSubsteps
	g.Look.Sensitivity = cfg.Camera.Sensitivity
	g.Camera.Fovy = cfg.Camera.Fov
	g.HUD.SetTuning(tuning)
	g.Config = cfg

	g.log.Info("Config: applied", "base_speed", tuning.BaseSpeed, "jump_speed", tuning.JumpSpeed)
	return nil
}

func (g *Game) watchConfig() {
	if g.ConfigPath == "" {
		return
	}
	w, err := config.NewWatcher(g.ConfigPath)
	if err != nil {
		g.log.Warn("Config: hot reload disabled", "path", g.ConfigPath, "err", err)
		return
	}
	g.watcher = w
	g.log.Info("Config: watching", "path", g.ConfigPath)
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Updates:
		if ok && cfg != nil {
			if err := g.ApplyConfig(cfg); err != nil {
				g.log.Warn("Config: reload rejected", "err", err)
			}
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("Config: reload failed", "err", err)
		}
	default:
	}
}

// Close tears down in reverse order of Setup. Safe to call more than once.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("Config: watcher close", "err", err)
		}
		g.watcher = nil
	}
	g.Player.Close()
	if g.World != nil {
		g.World.Unload()
	}
	if g.Physics != nil {
		g.Physics.Clear()
	}
}

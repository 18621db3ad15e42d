package config

import (
	"boxworld/internal/input"
	"boxworld/internal/player"
	"errors"
	"fmt"
	"io/fs"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "boxworld.yaml"

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Logging LoggingConfig  `yaml:"logging"`
	Player  PlayerConfig   `yaml:"player"`
	Physics PhysicsConfig  `yaml:"physics"`
	Camera  CameraConfig   `yaml:"camera"`
	Keys    input.Bindings `yaml:"keys"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PlayerConfig struct {
	BaseSpeed         float32 `yaml:"base_speed"`
	SprintMultiplier  float32 `yaml:"sprint_multiplier"`
	CrouchMultiplier  float32 `yaml:"crouch_multiplier"`
	JumpSpeed         float32 `yaml:"jump_speed"`
	ProbeDistance     float32 `yaml:"probe_distance"`
	Spawn             Vec3    `yaml:"spawn"`
	CapsuleHalfHeight float32 `yaml:"capsule_half_height"`
	CapsuleRadius     float32 `yaml:"capsule_radius"`
}

type PhysicsConfig struct {
	Gravity     Vec3    `yaml:"gravity"`
	Timestep    float32 `yaml:"timestep"`
	MaxSubsteps int     `yaml:"max_substeps"`
}

type CameraConfig struct {
	Fov         float32 `yaml:"fov"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// Vec3 is written as a three element list: [x, y, z].
type Vec3 [3]float32

func (v Vec3) Raylib() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func Default() *Config {
	t := player.DefaultTuning()
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "boxworld",
			TargetFPS: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Player: PlayerConfig{
			BaseSpeed:         t.BaseSpeed,
			SprintMultiplier:  t.SprintMultiplier,
			CrouchMultiplier:  t.CrouchMultiplier,
			JumpSpeed:         t.JumpSpeed,
			ProbeDistance:     t.ProbeDistance,
			Spawn:             Vec3{t.Spawn.X, t.Spawn.Y, t.Spawn.Z},
			CapsuleHalfHeight: t.CapsuleHalfHeight,
			CapsuleRadius:     t.CapsuleRadius,
		},
		Physics: PhysicsConfig{
			Gravity:     Vec3{0, -9.8, 0},
			Timestep:    1.0 / 60.0,
			MaxSubsteps: 4,
		},
		Camera: CameraConfig{
			Fov:         75,
			Sensitivity: 0.1,
		},
		Keys: input.DefaultBindings(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; a keys entry replaces that action's key list.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if !(c.Physics.Timestep > 0) {
		return fmt.Errorf("%w: physics timestep must be positive", ErrInvalid)
	}
	if c.Physics.MaxSubsteps <= 0 {
		return fmt.Errorf("%w: physics max_substeps must be positive", ErrInvalid)
	}
	if !(c.Camera.Fov > 0 && c.Camera.Fov < 180) {
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, c.Camera.Fov)
	}
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Keys.Parse(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Tuning converts the player section into movement constants.
func (c *Config) Tuning() player.Tuning {
	return player.Tuning{
		BaseSpeed:         c.Player.BaseSpeed,
		SprintMultiplier:  c.Player.SprintMultiplier,
		CrouchMultiplier:  c.Player.CrouchMultiplier,
		JumpSpeed:         c.Player.JumpSpeed,
		ProbeDistance:     c.Player.ProbeDistance,
		Spawn:             c.Player.Spawn.Raylib(),
		CapsuleHalfHeight: c.Player.CapsuleHalfHeight,
		CapsuleRadius:     c.Player.CapsuleRadius,
	}
}

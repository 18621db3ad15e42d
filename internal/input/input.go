// Package input maps named actions to keyboard keys and samples them once per frame.
package input

import (
	"errors"
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action names understood by the sampler.
const (
	Forward  = "forward"
	Backward = "backward"
	Left     = "left"
	Right    = "right"
	Jump     = "jump"
	Sprint   = "sprint"
	Crouch   = "crouch"
)

var Actions = []string{Forward, Backward, Left, Right, Jump, Sprint, Crouch}

var (
	ErrUnknownAction = errors.New("input: unknown action")
	ErrUnknownKey    = errors.New("input: unknown key")
)

// State is one frame's snapshot of the action flags.
type State struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
	Sprint   bool
	Crouch   bool
}

// KeySource reports whether a key is currently held.
type KeySource interface {
	IsKeyDown(key int32) bool
}

// RaylibKeys reads the keyboard through raylib. Only valid after InitWindow.
type RaylibKeys struct{}

func (RaylibKeys) IsKeyDown(key int32) bool {
	return rl.IsKeyDown(key)
}

// Bindings maps an action name to the names of the keys that trigger it.
type Bindings map[string][]string

// DefaultBindings is the arrow keys / WASD layout with space to jump,
// left shift to sprint and left control to crouch.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:  {"ArrowUp", "w", "W"},
		Backward: {"ArrowDown", "s", "S"},
		Left:     {"ArrowLeft", "a", "A"},
		Right:    {"ArrowRight", "d", "D"},
		Jump:     {"Space"},
		Sprint:   {"ShiftLeft"},
		Crouch:   {"ControlLeft"},
	}
}

// KeyMap is a resolved binding table: action name to raylib key codes.
type KeyMap map[string][]int32

// Parse resolves every key name. Unknown actions or keys are errors.
func (b Bindings) Parse() (KeyMap, error) {
	actions := make([]string, 0, len(b))
	for action := range b {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	km := make(KeyMap, len(b))
	for _, action := range actions {
		if !isAction(action) {
			return nil, fmt.Errorf("%w %q", ErrUnknownAction, action)
		}
		for _, name := range b[action] {
			code, ok := LookupKey(name)
			if !ok {
				return nil, fmt.Errorf("binding %s: %w %q", action, ErrUnknownKey, name)
			}
			km[action] = appendUnique(km[action], code)
		}
	}
	return km, nil
}

func isAction(name string) bool {
	for _, a := range Actions {
		if a == name {
			return true
		}
	}
	return false
}

func appendUnique(codes []int32, code int32) []int32 {
	for _, c := range codes {
		if c == code {
			return codes
		}
	}
	return append(codes, code)
}

// Sampler polls a KeySource for the bound keys of each action.
type Sampler struct {
	source KeySource
	keys   KeyMap
}

func NewSampler(source KeySource, keys KeyMap) *Sampler {
	return &Sampler{source: source, keys: keys}
}

// SetKeys swaps the binding table, e.g. after a config reload.
func (s *Sampler) SetKeys(keys KeyMap) {
	s.keys = keys
}

// Sample reads the current state of every action. Actions without keys, or a
// sampler without a source, report false.
func (s *Sampler) Sample() State {
	return State{
		Forward:  s.down(Forward),
		Backward: s.down(Backward),
		Left:     s.down(Left),
		Right:    s.down(Right),
		Jump:     s.down(Jump),
		Sprint:   s.down(Sprint),
		Crouch:   s.down(Crouch),
	}
}

func (s *Sampler) down(action string) bool {
	if s == nil || s.source == nil {
		return false
	}
	for _, key := range s.keys[action] {
		if s.source.IsKeyDown(key) {
			return true
		}
	}
	return false
}

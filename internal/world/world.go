// Package world assembles the box scene: the floor, the falling boxes, the
// boxes spawned by clicking, and crosshair picking.
package world

import (
	"boxworld/internal/components"
	"boxworld/internal/engine"
	"boxworld/internal/physics"
	"errors"
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize      = 1000.0
	FloorThickness = 1.0

	FloorRestitution = math.Pi / 30
	BoxRestitution   = 0.01

	// SpawnOffsetZ is added to the crosshair/plane intersection before a
	// clicked box is placed.
	SpawnOffsetZ = 10.0

	// PickDistance bounds the crosshair ray used for hover and click.
	PickDistance = 1000.0

	TagBox  = "box"
	TagDirt = "dirt"
)

var (
	GrassColor = rl.NewColor(0, 128, 0, 255)
	DirtColor  = rl.NewColor(134, 96, 67, 255)

	ErrNoPhysics = errors.New("world: physics world is required")
)

var unitBox = rl.Vector3{X: 1, Y: 1, Z: 1}

type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Floor   *engine.GameObject

	hovered   *engine.GameObject
	dirtCount int
	log       *slog.Logger
}

func New(physicsWorld *physics.World, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		Scene:   engine.NewScene("Main"),
		Physics: physicsWorld,
		log:     log,
	}
}

// Initialize creates the floor and the two boxes dropped from above the
// origin, then starts every object.
func (w *World) Initialize() error {
	if w.Physics == nil {
		return ErrNoPhysics
	}

	floor, err := w.addObject("Floor", physics.Fixed,
		rl.Vector3{Y: -FloorThickness / 2},
		rl.Vector3{X: FloorSize, Y: FloorThickness, Z: FloorSize},
		GrassColor)
	if err != nil {
		return err
	}
	floor.Tags = append(floor.Tags, "floor")
	engine.GetComponent[*components.BoxMesh](floor).Wireframe = false
	engine.GetComponent[*components.RigidBody](floor).Body.Collider.Restitution = FloorRestitution
	w.Floor = floor

	boxes := []struct {
		name  string
		pos   rl.Vector3
		color rl.Color
	}{
		{"Box_Green", rl.Vector3{X: -1, Y: 50, Z: -5}, rl.Green},
		{"Box_Red", rl.Vector3{X: 1, Y: 50, Z: -5}, rl.Red},
	}
	for _, b := range boxes {
		if _, err := w.DropBox(b.name, b.pos, b.color); err != nil {
			return err
		}
	}

	w.Scene.Start()
	w.log.Info("World: initialized", "objects", len(w.Scene.GameObjects), "bodies", w.Physics.BodyCount())
	return nil
}

func (w *World) addObject(name string, bodyType physics.BodyType, pos, size rl.Vector3, color rl.Color) (*engine.GameObject, error) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	body := physics.NewBody(bodyType, pos, physics.Cuboid{Half: rl.Vector3Scale(size, 0.5)})
	body.UserData = obj.UID
	if err := w.Physics.InsertBody(body); err != nil {
		return nil, fmt.Errorf("add %s: %w", name, err)
	}

	obj.AddComponent(components.NewRigidBody(body))
	obj.AddComponent(components.NewBoxMesh(size, color))
	w.Scene.AddGameObject(obj)
	return obj, nil
}

// DropBox adds a dynamic unit box that falls under gravity.
func (w *World) DropBox(name string, pos rl.Vector3, color rl.Color) (*engine.GameObject, error) {
	if w.Physics == nil {
		return nil, ErrNoPhysics
	}
	box, err := w.addObject(name, physics.Dynamic, pos, unitBox, color)
	if err != nil {
		return nil, err
	}
	box.Tags = append(box.Tags, TagBox)
	box.AddComponent(components.NewScaleSpring())
	engine.GetComponent[*components.RigidBody](box).Body.Collider.Restitution = BoxRestitution
	return box, nil
}

// SpawnPoint intersects the ray with the z=0 plane and offsets the hit by
// SpawnOffsetZ. It reports false for rays parallel to the plane.
func SpawnPoint(origin, dir rl.Vector3) (rl.Vector3, bool) {
	if dir.Z == 0 {
		return rl.Vector3{}, false
	}
	distance := -origin.Z / dir.Z
	if math.IsNaN(float64(distance)) || math.IsInf(float64(distance), 0) {
		return rl.Vector3{}, false
	}
	pos := rl.Vector3Add(origin, rl.Vector3Scale(dir, distance))
	pos.Z += SpawnOffsetZ
	return pos, true
}

// SpawnDirtBox places a fixed, gravity-free unit box at pos.
func (w *World) SpawnDirtBox(pos rl.Vector3) (*engine.GameObject, error) {
	if w.Physics == nil {
		return nil, ErrNoPhysics
	}
	w.dirtCount++
	obj, err := w.addObject(fmt.Sprintf("Dirt_%d", w.dirtCount), physics.Fixed, pos, unitBox, DirtColor)
	if err != nil {
		return nil, err
	}
	obj.Tags = append(obj.Tags, TagBox, TagDirt)
	obj.AddComponent(components.NewScaleSpring())
	engine.GetComponent[*components.RigidBody](obj).Body.GravityScale = 0
	obj.Start()

	w.log.Debug("World: dirt box spawned", "name", obj.Name, "x", pos.X, "y", pos.Y, "z", pos.Z)
	return obj, nil
}

// Pick returns the box under the ray, ignoring exclude (usually the player).
// The floor and anything untagged yield nil.
func (w *World) Pick(origin, dir rl.Vector3, exclude *physics.Body) *engine.GameObject {
	if w.Physics == nil {
		return nil
	}
	ray := physics.Ray{Origin: origin, Dir: dir}
	hit, ok := w.Physics.CastRay(ray, PickDistance, true, physics.QueryFilter{ExcludeBody: exclude})
	if !ok || hit.Collider == nil {
		return nil
	}
	uid, ok := hit.Collider.Body().UserData.(uint64)
	if !ok {
		return nil
	}
	obj := w.Scene.FindByUID(uid)
	if obj == nil || !obj.HasTag(TagBox) {
		return nil
	}
	return obj
}

// UpdateHover moves the highlight to whichever box the ray hits.
func (w *World) UpdateHover(origin, dir rl.Vector3, exclude *physics.Body) {
	picked := w.Pick(origin, dir, exclude)
	if picked == w.hovered {
		return
	}
	setHovered(w.hovered, false)
	setHovered(picked, true)
	w.hovered = picked
}

func setHovered(obj *engine.GameObject, hovered bool) {
	if mesh := engine.GetComponent[*components.BoxMesh](obj); mesh != nil {
		mesh.Hovered = hovered
	}
}

func (w *World) Hovered() *engine.GameObject {
	return w.hovered
}

// Click toggles the scale animation of the box under the ray and spawns a
// dirt box where the ray meets the z=0 plane. The spawned box is nil when
// the ray is parallel to that plane.
func (w *World) Click(origin, dir rl.Vector3, exclude *physics.Body) (*engine.GameObject, error) {
	if picked := w.Pick(origin, dir, exclude); picked != nil {
		if spring := engine.GetComponent[*components.ScaleSpring](picked); spring != nil {
			spring.Toggle()
		}
	}

	pos, ok := SpawnPoint(origin, dir)
	if !ok {
		return nil, nil
	}
	return w.SpawnDirtBox(pos)
}

// Boxes returns every pickable box, spawned ones included.
func (w *World) Boxes() []*engine.GameObject {
	return w.Scene.FindByTag(TagBox)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Unload removes every scene body from the physics world and empties the scene.
func (w *World) Unload() {
	for _, obj := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if rb := engine.GetComponent[*components.RigidBody](obj); rb.Valid() {
			w.Physics.RemoveBody(rb.Body)
		}
		w.Scene.RemoveGameObject(obj)
	}
	w.Floor = nil
	w.hovered = nil
}

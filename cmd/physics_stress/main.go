// Headless stress run: drops growing numbers of boxes onto the floor and
// times the physics step plus scene sync.
package main

import (
	"boxworld/internal/components"
	"boxworld/internal/engine"
	"boxworld/internal/logger"
	"boxworld/internal/physics"
	"boxworld/internal/world"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const dt = 1.0 / 60.0

func main() {
	frames := flag.Int("frames", 300, "simulated frames per run")
	seed := flag.Int64("seed", 42, "random seed for drop positions")
	flag.Parse()

	// keep per-body registration logs out of the timings
	log := logger.Init(logger.Config{Level: "warn", Format: "console"})

	counts := []int{10, 50, 100, 200, 400}
	for _, count := range counts {
		if err := run(count, *frames, rand.New(rand.NewSource(*seed))); err != nil {
			log.Error("Stress: run failed", "count", count, "err", err)
			os.Exit(1)
		}
	}
}

func run(count, frames int, rng *rand.Rand) error {
	pw := physics.NewWorld(rl.Vector3{Y: -9.8})
	w := world.New(pw, nil)
	if err := w.Initialize(); err != nil {
		return err
	}
	defer w.Unload()

	spread := float32(10) + float32(count)/20
	for i := range count {
		pos := rl.Vector3{
			X: rng.Float32()*spread - spread/2,
			Y: 5 + rng.Float32()*20,
			Z: rng.Float32()*spread - spread/2,
		}
		if _, err := w.DropBox(fmt.Sprintf("Stress_%d", i), pos, rl.Orange); err != nil {
			return err
		}
	}

	start := time.Now()
	var worst time.Duration
	for range frames {
		frameStart := time.Now()
		pw.Step(dt)
		w.Update(dt)
		worst = max(worst, time.Since(frameStart))
	}
	avg := time.Since(start) / time.Duration(frames)

	fmt.Printf("%4d boxes: avg %9v  worst %9v  asleep %4d/%d\n",
		count, avg.Round(time.Microsecond), worst.Round(time.Microsecond), asleep(w), len(w.Boxes()))
	return nil
}

func asleep(w *world.World) int {
	n := 0
	for _, g := range w.Boxes() {
		if rb := engine.GetComponent[*components.RigidBody](g); rb.Valid() && rb.Body.IsSleeping() {
			n++
		}
	}
	return n
}

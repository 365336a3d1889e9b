// Stress test for the physics world: bodies of every shape dropped onto a
// generated terrain, timing Step and pointer raycasts.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"duckengine/internal/physics"
	"duckengine/internal/terrain"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/schollz/progressbar/v3"
)

const terrainSize = 128

func main() {
	steps := flag.Int("steps", 120, "physics steps per run")
	seed := flag.Uint64("seed", 42, "terrain and spawn seed")
	flag.Parse()

	samples, err := terrain.Generate(terrainSize, terrainSize, *seed, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate terrain: %v\n", err)
		os.Exit(1)
	}
	heights, err := terrain.HeightsFromColors(terrain.GreyColors(samples), terrainSize, terrainSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build terrain: %v\n", err)
		os.Exit(1)
	}

	// Test various body counts
	testCounts := []int{50, 100, 250, 500, 1000}

	for _, count := range testCounts {
		run(heights, count, *steps, *seed)
	}
}

func run(heights [][]float32, count, steps int, seed uint64) {
	w := physics.NewWorld()

	ground := physics.NewRigidBody(physics.NewTerrainShape(heights, 1, 1))
	ground.IsStatic = true
	ground.Position = rl.Vector3{X: -terrainSize / 2, Z: -terrainSize / 2}
	w.AddBody(ground)

	contacts := 0
	w.AddContactListener(func(physics.Contact) { contacts++ })

	// Consistent results
	rng := rand.New(rand.NewPCG(seed, uint64(count)))
	spawnSize := float32(terrainSize) * 0.8
	for range count {
		b := physics.NewRigidBody(randomShape(rng))
		b.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 30 + rng.Float32()*20,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		w.AddBody(b)
	}

	pb := progressbar.Default(int64(steps), fmt.Sprintf("%4d bodies", count))
	stepStart := time.Now()
	for range steps {
		w.Step(1.0 / 60)
		pb.Add(1)
	}
	stepTime := time.Since(stepStart) / time.Duration(steps)
	pb.Close()

	// One pointer ray per frame, looking down from above the spawn area
	const rays = 1000
	hits := 0
	rayStart := time.Now()
	for range rays {
		origin := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 100,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		if _, ok := w.Raycast(origin, rl.Vector3{Y: -1}, nil); ok {
			hits++
		}
	}
	rayTime := time.Since(rayStart) / rays

	fmt.Printf("%5d bodies: step %8v | raycast %8v (%d/%d hit) | %d contacts\n",
		count, stepTime.Round(time.Microsecond), rayTime.Round(time.Microsecond/10), hits, rays, contacts)
}

func randomShape(rng *rand.Rand) physics.Shape {
	size := 0.5 + rng.Float32()
	switch rng.IntN(5) {
	case 0:
		return physics.NewBoxShape(rl.Vector3{X: size, Y: size, Z: size})
	case 1:
		return physics.NewSphereShape(size / 2)
	case 2:
		return physics.NewCylinderShape(size, size/2)
	case 3:
		return physics.NewCapsuleShape(size, size/4)
	default:
		return physics.NewConeShape(size, size/2)
	}
}

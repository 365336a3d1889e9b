package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"duckengine/internal/camera"
	"duckengine/internal/config"
	"duckengine/internal/engine"
	"duckengine/internal/input"
	"duckengine/internal/terrain"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// hudBounds is the screen area covered by the HUD panel. Picking and
// shooting are ignored over it.
var hudBounds = rl.Rectangle{X: 10, Y: 10, Width: 240, Height: 172}

type Game struct {
	Config   *config.Config
	Engine   *engine.Engine
	Camera   *camera.FlyCamera
	Terrain  *engine.GameObject
	Settings DrawSettings

	// PropsDestroyed counts props untracked during play.
	PropsDestroyed int

	hovered      engine.GameObjectRef
	lastShotTime float64
	shotCounter  int
}

// New builds the engine and populates the scene. No window is needed until
// Run.
func New(cfg *config.Config) (*Game, error) {
	e, err := engine.New()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config: cfg,
		Engine: e,
		Camera: camera.New(rl.Vector3{X: 0, Y: 25, Z: 35}),
		Settings: DrawSettings{
			Solid:         cfg.Render.Solid,
			BoundingBoxes: cfg.Render.BoundingBoxes,
		},
		lastShotTime: -1e9,
	}
	g.Camera.LookAt(rl.Vector3{})
	e.Tracker.Untracked.AddListener(g.onUntracked)

	if err := g.createTerrain(); err != nil {
		return nil, err
	}
	if err := g.createProps(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) createTerrain() error {
	tc := g.Config.Terrain

	var t *terrain.Terrain
	var err error
	if heightmapExists(tc.Heightmap) {
		t, err = terrain.Load(g.Engine, tc.Heightmap)
	} else {
		log.Printf("Game: no heightmap at %q, generating %dx%d (seed %d)", tc.Heightmap, tc.Width, tc.Depth, tc.Seed)
		t, err = terrain.Generated(g.Engine, tc.Width, tc.Depth, tc.Seed)
	}
	if err != nil {
		return fmt.Errorf("terrain: %w", err)
	}

	g.Terrain = engine.NewGameObject("Terrain")
	g.Terrain.AddComponent(t)
	g.Engine.Spawn(g.Terrain)
	return nil
}

func heightmapExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func (g *Game) createProps() error {
	for i, pc := range g.Config.Props {
		c, err := engine.CreateComponent(g.Engine, pc.Component, pc.Props)
		if err != nil {
			return fmt.Errorf("props[%d]: %w", i, err)
		}
		if p, ok := c.(interface{ UseSettings(*DrawSettings) }); ok {
			p.UseSettings(&g.Settings)
		}

		name := pc.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", pc.Component, i)
		}
		obj := engine.NewGameObject(name)
		obj.Tags = append(obj.Tags, "prop")
		obj.AddComponent(c)
		g.Engine.Spawn(obj)
	}
	return nil
}

func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(w.TargetFPS))

	// Shaders need the GL context.
	g.Engine.LoadContent(g.Config.Render.VertexShader, g.Config.Render.FragmentShader)
	defer g.Engine.Unload()

	for !rl.WindowShouldClose() {
		deltaTime := rl.GetFrameTime()
		g.Camera.Update(deltaTime)
		g.Engine.Camera = g.Camera.GetRaylibCamera()

		in := input.Capture(g.Engine.Camera, []rl.Rectangle{hudBounds})
		g.Update(deltaTime, in, rl.GetTime())
		g.Draw()
	}
}

// Update advances the simulation by one frame. now is the clock in seconds
// used for the fire cooldown.
func (g *Game) Update(deltaTime float32, in input.Input, now float64) {
	if in.LeftPressed && in.InWindow && !in.OverHUD && in.MouseRay != nil {
		g.TryShoot(in.MouseRay.Direction, now)
	}

	g.Engine.Update(deltaTime, in)

	g.hovered.Clear()
	if b := g.Engine.Mouse.MouseOver(); b != nil {
		if obj, ok := b.Tag.(*engine.GameObject); ok {
			g.hovered.Set(obj)
		}
	}
}

func (g *Game) onUntracked(obj *engine.GameObject) {
	if obj.HasTag("prop") {
		g.PropsDestroyed++
	}
}

// ShotsInFlight counts tracked projectiles.
func (g *Game) ShotsInFlight() int {
	n := 0
	g.Engine.Tracker.Each(func(obj *engine.GameObject) {
		if obj.HasTag("projectile") {
			n++
		}
	})
	return n
}

// Hovered returns the GameObject under the pointer, if it is still tracked.
func (g *Game) Hovered() *engine.GameObject {
	return g.hovered.Get(g.Engine.Scene)
}

// TryShoot fires an Ammo1 along direction from just in front of the camera
// unless the weapon is cooling down.
func (g *Game) TryShoot(direction rl.Vector3, now float64) *engine.GameObject {
	weapons := g.Config.Weapons
	if now-g.lastShotTime < weapons.Cooldown.Duration().Seconds() {
		return nil
	}
	if rl.Vector3LengthSqr(direction) == 0 {
		return nil
	}
	g.lastShotTime = now
	g.shotCounter++

	dir := rl.Vector3Normalize(direction)
	// Spawn clear of the camera.
	spawn := rl.Vector3Add(g.Camera.Position, rl.Vector3Scale(dir, 2+weapons.AmmoSize))

	return SpawnAmmo1(g.Engine, fmt.Sprintf("Shot_%d", g.shotCounter), spawn,
		weapons.Damage, weapons.AmmoSpeed, dir, weapons.AmmoSize)
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(100, 149, 237, 255))

	rl.BeginMode3D(g.Engine.Camera)
	g.Engine.Draw3D()
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	x, y := hudBounds.X, hudBounds.Y
	gui.Panel(hudBounds, "DuckGame")

	g.Settings.Solid = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 34, Width: 16, Height: 16}, "Solid", g.Settings.Solid)
	g.Settings.BoundingBoxes = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 58, Width: 16, Height: 16}, "Bounding boxes", g.Settings.BoundingBoxes)

	label := "Hovering: -"
	if obj := g.Hovered(); obj != nil {
		label = "Hovering: " + obj.Name
	}
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 82, Width: hudBounds.Width - 20, Height: 20}, label)
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 104, Width: hudBounds.Width - 20, Height: 20},
		fmt.Sprintf("Objects: %d  Bodies: %d", g.Engine.Tracker.Count(), len(g.Engine.Physics.Bodies())))
	gui.Label(rl.Rectangle{X: x + 10, Y: y + 126, Width: hudBounds.Width - 20, Height: 20},
		fmt.Sprintf("Shots: %d  Destroyed: %d", g.ShotsInFlight(), g.PropsDestroyed))

	rl.DrawText("RMB + WASD/QE to fly, LMB to shoot", 10, int32(rl.GetScreenHeight())-30, 20, rl.DarkGray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
}

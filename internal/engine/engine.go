package engine

import (
	"fmt"
	"log"

	"duckengine/internal/assets"
	"duckengine/internal/input"
	"duckengine/internal/physics"
	"duckengine/internal/primitives"
	"duckengine/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Engine ties the physics world, the draw helpers, pointer picking and the
// tracked GameObjects together. Components receive it as their owner.
type Engine struct {
	Physics  *physics.World
	Helper3D *render.Helper3D
	Mouse    *input.MouseEventManager
	Scene    *Scene
	Tracker  *Tracker
	Assets   *assets.Cache
	Camera   rl.Camera3D

	primitives *primitives.Registry
}

// New builds everything that does not need a graphics context. Call
// LoadContent after the window is open.
func New() (*Engine, error) {
	registry, err := primitives.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("primitives: %w", err)
	}

	world := physics.NewWorld()
	scene := NewScene("Main")
	effect := render.NewEffect()
	effect.SetupLighting()

	e := &Engine{
		Physics:    world,
		Helper3D:   render.NewHelper3D(effect, registry),
		Mouse:      input.NewMouseEventManager(world),
		Scene:      scene,
		Tracker:    NewTracker(scene),
		Assets:     assets.NewCache(),
		primitives: registry,
		Camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 20, Z: 30},
			Target:     rl.Vector3Zero(),
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}

	world.AddContactListener(e.dispatchContact)
	return e, nil
}

// LoadContent loads the lighting shader, using the bundled shaders for empty
// paths. A missing shader is logged and the engine keeps drawing unlit.
func (e *Engine) LoadContent(vsPath, fsPath string) {
	if vsPath == "" {
		vsPath = render.DefaultVertexShader
	}
	if fsPath == "" {
		fsPath = render.DefaultFragmentShader
	}
	if err := e.Helper3D.Effect.Load(vsPath, fsPath); err != nil {
		log.Printf("Engine: %v, drawing unlit", err)
	}
}

// Spawn tracks g, starting it immediately.
func (e *Engine) Spawn(g *GameObject) {
	e.Tracker.Track(g)
}

// Update steps physics, updates tracked objects, applies deferred
// untracking and then dispatches pointer events.
func (e *Engine) Update(deltaTime float32, in input.Input) {
	e.Physics.Step(deltaTime)
	e.Scene.Update(deltaTime)
	e.Tracker.Flush()
	e.Mouse.ExecuteMouseEvents(deltaTime, in)
}

// Draw3D draws every Drawer3D component. Call between BeginMode3D and
// EndMode3D.
func (e *Engine) Draw3D() {
	e.Helper3D.Effect.ViewPosition = e.Camera.Position
	e.Scene.Draw3D()
}

// ForgetBody clears any engine state that refers to a body leaving the world.
func (e *Engine) ForgetBody(b *physics.RigidBody) {
	e.Mouse.Forget(b)
	e.Physics.RemoveBody(b)
}

// Unload destroys every object without reporting it through Untracked, then
// frees GPU resources.
func (e *Engine) Unload() {
	e.Tracker.Untracked.RemoveAllListeners()
	for _, g := range e.Scene.GameObjects {
		e.Tracker.Untrack(g)
	}
	e.Tracker.Flush()
	e.Assets.Unload()
	e.primitives.Unload()
	e.Helper3D.Effect.Unload()
}

func (e *Engine) dispatchContact(c physics.Contact) {
	a, _ := c.A.Tag.(*GameObject)
	b, _ := c.B.Tag.(*GameObject)
	if a == nil || b == nil {
		return
	}
	a.notifyCollisionEnter(b)
	b.notifyCollisionEnter(a)
}

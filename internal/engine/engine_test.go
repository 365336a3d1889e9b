package engine

import (
	"slices"
	"testing"

	"duckengine/internal/input"
	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type bodyProbe struct {
	probe
	owner *Engine
	body  *physics.RigidBody
}

func (b *bodyProbe) SetGameObject(g *GameObject) {
	b.BaseComponent.SetGameObject(g)
	b.body.Tag = g
}

func (b *bodyProbe) OnDestroy() {
	b.probe.OnDestroy()
	b.owner.ForgetBody(b.body)
}

func spawnBody(e *Engine, name string, pos rl.Vector3, log *[]string) (*GameObject, *physics.RigidBody) {
	body := physics.NewRigidBody(physics.NewBoxShape(rl.Vector3{X: 1, Y: 1, Z: 1}))
	body.Position = pos
	body.AffectedByGravity = false
	e.Physics.AddBody(body)

	g := NewGameObject(name)
	g.AddComponent(&bodyProbe{probe: probe{log: log}, owner: e, body: body})
	e.Spawn(g)
	return g, body
}

func TestEngineDispatchesContactsToGameObjects(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}

	var aLog, bLog []string
	spawnBody(e, "A", rl.Vector3{}, &aLog)
	spawnBody(e, "B", rl.Vector3{X: 0.5}, &bLog)

	e.Update(0.01, input.Input{})

	if !slices.Contains(aLog, "hit B") || !slices.Contains(bLog, "hit A") {
		t.Errorf("contact not dispatched: a=%v b=%v", aLog, bLog)
	}
}

func TestEngineMouseEventsReachComponents(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}

	var log []string
	g, body := spawnBody(e, "Prop", rl.Vector3{}, &log)

	ray := rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: -1}}
	e.Update(0.01, input.Input{MouseRay: &ray, InWindow: true})

	if e.Mouse.MouseOver() != body {
		t.Fatal("body should be under the pointer")
	}
	if !slices.Contains(log, "over") {
		t.Errorf("OnMouseOver should reach the component, log = %v", log)
	}

	e.Tracker.Untrack(g)
	e.Update(0.01, input.Input{MouseRay: &ray, InWindow: true})

	if e.Mouse.MouseOver() != nil {
		t.Error("destroyed body should no longer be hovered")
	}
	if slices.Contains(log, "out") {
		t.Errorf("destroyed object should not get OnMouseOut, log = %v", log)
	}
	if len(e.Physics.Bodies()) != 0 {
		t.Error("destroyed body should leave the physics world")
	}
}

func TestEngineUnloadDestroysEverything(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	spawnBody(e, "A", rl.Vector3{}, &log)
	spawnBody(e, "B", rl.Vector3{X: 10}, &log)
	untracked := 0
	e.Tracker.Untracked.AddListener(func(*GameObject) { untracked++ })

	e.Unload()

	if untracked != 0 {
		t.Errorf("Untracked fired %d times during Unload", untracked)
	}

	if e.Tracker.Count() != 0 {
		t.Errorf("Count = %d after Unload", e.Tracker.Count())
	}
	destroyed := 0
	for _, entry := range log {
		if entry == "destroy" {
			destroyed++
		}
	}
	if destroyed != 2 {
		t.Errorf("destroyed %d objects, want 2", destroyed)
	}
}

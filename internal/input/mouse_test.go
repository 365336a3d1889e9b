package input

import (
	"math"
	"testing"

	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type recorder struct {
	name   string
	events *[]string
}

func (r *recorder) OnMouseOver() { *r.events = append(*r.events, "over "+r.name) }
func (r *recorder) OnMouseOut()  { *r.events = append(*r.events, "out "+r.name) }

type pickScene struct {
	world  *physics.World
	a, b   *physics.RigidBody
	events []string
}

// newPickScene places two unit boxes on the X axis at x=0 and x=5.
func newPickScene() *pickScene {
	s := &pickScene{world: physics.NewWorld()}

	s.a = physics.NewRigidBody(physics.NewBoxShape(rl.Vector3{X: 1, Y: 1, Z: 1}))
	s.a.Tag = &recorder{name: "a", events: &s.events}
	s.b = physics.NewRigidBody(physics.NewBoxShape(rl.Vector3{X: 1, Y: 1, Z: 1}))
	s.b.Position = rl.Vector3{X: 5}
	s.b.Tag = &recorder{name: "b", events: &s.events}

	s.world.AddBody(s.a)
	s.world.AddBody(s.b)
	return s
}

// pointerAt looks straight down at (x, 0, 0) from above.
func pointerAt(x float32) Input {
	ray := rl.Ray{Position: rl.Vector3{X: x, Y: 10}, Direction: rl.Vector3{Y: -1}}
	return Input{MouseRay: &ray, InWindow: true}
}

func TestMouseOverAndOut(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)

	m.ExecuteMouseEvents(0.016, pointerAt(0))
	m.ExecuteMouseEvents(0.016, pointerAt(0.1))
	if m.MouseOver() != s.a {
		t.Fatal("expected a under the pointer")
	}

	m.ExecuteMouseEvents(0.016, pointerAt(5))
	m.ExecuteMouseEvents(0.016, pointerAt(2.5))
	if m.MouseOver() != nil {
		t.Error("nothing should be under the pointer between the boxes")
	}

	want := []string{"over a", "over b", "out a", "out b"}
	if len(s.events) != len(want) {
		t.Fatalf("events = %v, want %v", s.events, want)
	}
	for i := range want {
		if s.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, s.events[i], want[i])
		}
	}
}

func TestMouseEventsSkippedOutsideWindowOrOverHUD(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)
	m.ExecuteMouseEvents(0.016, pointerAt(0))

	hud := pointerAt(5)
	hud.OverHUD = true
	m.ExecuteMouseEvents(0.016, hud)

	outside := pointerAt(5)
	outside.InWindow = false
	m.ExecuteMouseEvents(0.016, outside)

	m.ExecuteMouseEvents(0.016, Input{InWindow: true})

	if m.MouseOver() != s.a {
		t.Error("hover state should be kept while events are skipped")
	}
	if len(s.events) != 1 {
		t.Errorf("events = %v, want only the first mouse over", s.events)
	}
}

func TestWhileMouseOverReceivesNormalRay(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)

	var got []MouseHit
	m.WhileMouseOver = func(deltaTime float32, in Input, hit MouseHit) {
		got = append(got, hit)
	}

	ray := rl.Ray{Position: rl.Vector3{X: -10}, Direction: rl.Vector3{X: 2}}
	m.ExecuteMouseEvents(0.016, Input{MouseRay: &ray, InWindow: true})

	if len(got) != 1 {
		t.Fatalf("handler called %d times", len(got))
	}
	hit := got[0]
	if hit.Body != s.a {
		t.Error("expected the nearer box")
	}
	if math.Abs(float64(hit.Fraction-4.75)) > 1e-3 {
		t.Errorf("fraction = %v, want 4.75", hit.Fraction)
	}
	if p := hit.NormalRay.Position; math.Abs(float64(p.X+0.5)) > 1e-3 {
		t.Errorf("hit point = %v, want x=-0.5", p)
	}
	if d := hit.NormalRay.Direction; math.Abs(float64(d.X+1)) > 1e-3 {
		t.Errorf("normal = %v, want (-1,0,0)", d)
	}
	if len(s.events) != 0 {
		t.Error("a replaced handler should not fire the default callbacks")
	}
	if m.MouseOver() != s.a {
		t.Error("hovered body should be remembered with a custom handler too")
	}
}

func TestDisabledHandlersFireNoLeave(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)
	m.WhileMouseOver = func(float32, Input, MouseHit) {}
	m.WhileMouseOut = nil

	m.ExecuteMouseEvents(0.016, pointerAt(0))
	m.ExecuteMouseEvents(0.016, pointerAt(2.5))
	if len(s.events) != 0 {
		t.Errorf("events = %v, want none", s.events)
	}
	if m.MouseOver() != nil {
		t.Error("hovered body should still be cleared")
	}
}

func TestCustomMouseOutReceivesLeftBody(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)
	var left []*physics.RigidBody
	m.WhileMouseOut = func(b *physics.RigidBody) { left = append(left, b) }

	m.ExecuteMouseEvents(0.016, pointerAt(0))
	m.ExecuteMouseEvents(0.016, pointerAt(2.5))
	m.ExecuteMouseEvents(0.016, pointerAt(2.5))

	if len(left) != 1 || left[0] != s.a {
		t.Errorf("left = %v, want only a", left)
	}
	if len(s.events) != 1 || s.events[0] != "over a" {
		t.Errorf("events = %v, want [over a]", s.events)
	}
}

func TestMouseFilterAndForget(t *testing.T) {
	s := newPickScene()
	m := NewMouseEventManager(s.world)
	m.Filter = func(b *physics.RigidBody) bool { return b != s.a }

	ray := rl.Ray{Position: rl.Vector3{X: -10}, Direction: rl.Vector3{X: 1}}
	m.ExecuteMouseEvents(0.016, Input{MouseRay: &ray, InWindow: true})
	if m.MouseOver() != s.b {
		t.Fatal("filter should let the ray pass through a")
	}

	m.Forget(s.b)
	if m.MouseOver() != nil {
		t.Error("Forget should clear the hovered body")
	}
	m.ExecuteMouseEvents(0.016, pointerAt(2.5))
	if len(s.events) != 1 {
		t.Errorf("forgotten body should not get a mouse out, events = %v", s.events)
	}
}

func TestUntaggedBodiesAreHoveredSilently(t *testing.T) {
	s := newPickScene()
	s.a.Tag = "not a handler"
	m := NewMouseEventManager(s.world)

	m.ExecuteMouseEvents(0.016, pointerAt(0))
	m.ExecuteMouseEvents(0.016, pointerAt(5))

	if len(s.events) != 1 || s.events[0] != "over b" {
		t.Errorf("events = %v", s.events)
	}
}

func TestPointInAny(t *testing.T) {
	rects := []rl.Rectangle{{X: 0, Y: 0, Width: 100, Height: 50}}
	if !PointInAny(rl.Vector2{X: 10, Y: 10}, rects) {
		t.Error("point inside should match")
	}
	if PointInAny(rl.Vector2{X: 150, Y: 10}, rects) {
		t.Error("point outside should not match")
	}
	if PointInAny(rl.Vector2{}, nil) {
		t.Error("no rectangles never match")
	}
}

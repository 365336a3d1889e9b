package engine

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type mockProp struct {
	BaseComponent
	Radius float32
}

func mockFactory(owner *Engine, props map[string]any) (Component, error) {
	r := PropFloat(props, "radius", 1)
	if r <= 0 {
		return nil, errors.New("radius must be positive")
	}
	return &mockProp{Radius: r}, nil
}

func TestRegisterAndCreateComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("mock", mockFactory)

	c, err := CreateComponent(nil, "mock", map[string]any{"radius": 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := c.(*mockProp); !ok || m.Radius != 2.5 {
		t.Errorf("got %#v", c)
	}

	if _, err := CreateComponent(nil, "mock", map[string]any{"radius": -1}); err == nil {
		t.Error("factory errors should be returned")
	}
	if _, err := CreateComponent(nil, "missing", nil); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("err = %v, want ErrUnknownComponent", err)
	}
}

func TestRegisterComponentDuplicatePanics(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("dup", mockFactory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	RegisterComponent("dup", mockFactory)
}

func TestRegisteredComponentsSorted(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	for _, name := range []string{"sphere", "box", "cone"} {
		RegisterComponent(name, mockFactory)
	}

	got := RegisteredComponents()
	want := []string{"box", "cone", "sphere"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestPropReaders(t *testing.T) {
	props := map[string]any{
		"int":      3,
		"float":    1.5,
		"text":     "x",
		"position": []any{1, 2.5, -3},
		"short":    []any{1, 2},
		"color":    []any{255, 128, 0},
		"rgba":     []any{1, 2, 3, 4},
		"bad":      []any{300, 0, 0},
		"static":   true,
	}

	if PropFloat(props, "int", 0) != 3 || PropFloat(props, "float", 0) != 1.5 {
		t.Error("numbers should decode from int and float64")
	}
	if PropFloat(props, "text", 7) != 7 || PropFloat(props, "missing", 7) != 7 {
		t.Error("non-numbers should fall back to the default")
	}
	if !PropBool(props, "static", false) || !PropBool(props, "text", true) || PropBool(props, "missing", false) {
		t.Error("PropBool should read bools and fall back otherwise")
	}

	if v := PropVector3(props, "position", rl.Vector3{}); v != (rl.Vector3{X: 1, Y: 2.5, Z: -3}) {
		t.Errorf("position = %v", v)
	}
	def := rl.Vector3{X: 9}
	if v := PropVector3(props, "short", def); v != def {
		t.Errorf("short list should fall back, got %v", v)
	}

	if c := PropColor(props, "color", rl.Black); c != (rl.Color{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("color = %v", c)
	}
	if c := PropColor(props, "rgba", rl.Black); c != (rl.Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("rgba = %v", c)
	}
	if c := PropColor(props, "bad", rl.Black); c != rl.Black {
		t.Errorf("out of range colour should fall back, got %v", c)
	}
}

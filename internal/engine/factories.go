package engine

import (
	"errors"
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownComponent = errors.New("unknown component")

// ComponentFactory builds a component from config properties.
type ComponentFactory func(owner *Engine, props map[string]any) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent makes a factory available to CreateComponent. Names are
// registered from init functions, so a duplicate is a programming error.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

func CreateComponent(owner *Engine, name string, props map[string]any) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownComponent)
	}
	c, err := factory(owner, props)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	return c, nil
}

// RegisteredComponents returns the registered names in sorted order.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PropFloat reads a number that YAML may have decoded as int or float64.
func PropFloat(props map[string]any, key string, def float32) float32 {
	v, ok := props[key]
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

// PropBool reads a boolean flag.
func PropBool(props map[string]any, key string, def bool) bool {
	if b, ok := props[key].(bool); ok {
		return b
	}
	return def
}

// PropVector3 reads a three element number list.
func PropVector3(props map[string]any, key string, def rl.Vector3) rl.Vector3 {
	list, ok := props[key].([]any)
	if !ok || len(list) != 3 {
		return def
	}
	var xyz [3]float32
	for i, v := range list {
		f, ok := toFloat(v)
		if !ok {
			return def
		}
		xyz[i] = f
	}
	return rl.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// PropColor reads an [r, g, b] or [r, g, b, a] list of 0..255 values.
func PropColor(props map[string]any, key string, def rl.Color) rl.Color {
	list, ok := props[key].([]any)
	if !ok || (len(list) != 3 && len(list) != 4) {
		return def
	}
	rgba := [4]uint8{0, 0, 0, 255}
	for i, v := range list {
		f, ok := toFloat(v)
		if !ok || f < 0 || f > 255 {
			return def
		}
		rgba[i] = uint8(f)
	}
	return rl.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case float64:
		return float32(n), true
	case float32:
		return n, true
	}
	return 0, false
}

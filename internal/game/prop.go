package game

import (
	"errors"
	"fmt"

	"duckengine/internal/engine"
	"duckengine/internal/physics"
	"duckengine/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawSettings are the HUD toggles shared by everything the game draws.
type DrawSettings struct {
	Solid         bool
	BoundingBoxes bool
}

// Prop is a pickable physics body drawn as its primitive. Health above zero
// makes it destructible.
type Prop struct {
	engine.BaseComponent

	Body           *physics.RigidBody
	Color          rl.Color
	HighlightColor rl.Color
	Health         float32
	Settings       *DrawSettings

	owner   *engine.Engine
	hovered bool
}

// NewProp adds body to the owner's physics world. Bodies without a drawable
// primitive are rejected.
func NewProp(owner *engine.Engine, body *physics.RigidBody, color rl.Color) (*Prop, error) {
	if _, _, err := render.ShapeTransform(body.Shape); err != nil {
		return nil, err
	}
	owner.Physics.AddBody(body)
	return &Prop{
		Body:           body,
		Color:          color,
		HighlightColor: rl.Yellow,
		owner:          owner,
	}, nil
}

func (p *Prop) SetGameObject(g *engine.GameObject) {
	p.BaseComponent.SetGameObject(g)
	p.Body.Tag = g
}

// UseSettings shares the game's draw toggles with the prop.
func (p *Prop) UseSettings(s *DrawSettings) {
	p.Settings = s
}

func (p *Prop) Hovered() bool {
	return p.hovered
}

// CurrentColor is the highlight colour while the pointer is over the prop.
func (p *Prop) CurrentColor() rl.Color {
	if p.hovered {
		return p.HighlightColor
	}
	return p.Color
}

func (p *Prop) OnMouseOver() {
	p.hovered = true
}

func (p *Prop) OnMouseOut() {
	p.hovered = false
}

func (p *Prop) TakeDamage(amount float32) {
	if p.Health <= 0 {
		return
	}
	p.Health -= amount
	if g := p.GetGameObject(); g != nil && p.Health <= 0 {
		p.owner.Tracker.Untrack(g)
	}
}

func (p *Prop) Draw3D() {
	settings := DrawSettings{Solid: true}
	if p.Settings != nil {
		settings = *p.Settings
	}

	// Shapes were checked in NewProp.
	_ = p.owner.Helper3D.DrawBody(p.Body, p.CurrentColor(), settings.Solid, true)

	if settings.BoundingBoxes {
		p.owner.Helper3D.DrawBoundingBox(p.Body, rl.SkyBlue, false, 1)
	}
}

func (p *Prop) OnDestroy() {
	p.owner.ForgetBody(p.Body)
}

func init() {
	engine.RegisterComponent("box", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		size := engine.PropVector3(props, "size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("box size %v must be positive", size)
		}
		return newPropFromConfig(owner, physics.NewBoxShape(size), props)
	})
	engine.RegisterComponent("sphere", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		radius := engine.PropFloat(props, "radius", 0.5)
		if radius <= 0 {
			return nil, errRadius
		}
		return newPropFromConfig(owner, physics.NewSphereShape(radius), props)
	})
	engine.RegisterComponent("cylinder", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		height, radius, err := heightAndRadius(props, "height")
		if err != nil {
			return nil, err
		}
		return newPropFromConfig(owner, physics.NewCylinderShape(height, radius), props)
	})
	engine.RegisterComponent("capsule", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		length, radius, err := heightAndRadius(props, "length")
		if err != nil {
			return nil, err
		}
		return newPropFromConfig(owner, physics.NewCapsuleShape(length, radius), props)
	})
	engine.RegisterComponent("cone", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		height, radius, err := heightAndRadius(props, "height")
		if err != nil {
			return nil, err
		}
		return newPropFromConfig(owner, physics.NewConeShape(height, radius), props)
	})
}

var errRadius = errors.New("radius must be positive")

func heightAndRadius(props map[string]any, heightKey string) (float32, float32, error) {
	height := engine.PropFloat(props, heightKey, 1)
	radius := engine.PropFloat(props, "radius", 0.5)
	if radius <= 0 {
		return 0, 0, errRadius
	}
	if height <= 0 {
		return 0, 0, fmt.Errorf("%s must be positive", heightKey)
	}
	return height, radius, nil
}

// newPropFromConfig reads the settings shared by every prop: position,
// yaw in degrees, colour, health and whether the body is static.
func newPropFromConfig(owner *engine.Engine, shape physics.Shape, props map[string]any) (*Prop, error) {
	body := physics.NewRigidBody(shape)
	body.Position = engine.PropVector3(props, "position", rl.Vector3{})
	body.Orientation = rl.MatrixRotateY(engine.PropFloat(props, "yaw", 0) * rl.Deg2rad)
	body.IsStatic = engine.PropBool(props, "static", false)

	p, err := NewProp(owner, body, engine.PropColor(props, "color", rl.Orange))
	if err != nil {
		return nil, err
	}
	p.Health = engine.PropFloat(props, "health", 0)
	return p, nil
}

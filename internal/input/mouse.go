package input

import (
	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MouseEventHandler is implemented by body tags that react to the pointer.
type MouseEventHandler interface {
	OnMouseOver()
	OnMouseOut()
}

// MouseHit describes the body under the pointer. NormalRay starts at the
// hit point and points along the surface normal.
type MouseHit struct {
	Body      *physics.RigidBody
	NormalRay rl.Ray
	Fraction  float32
}

// WhileMouseOverHandler runs every update the pointer is over a body.
type WhileMouseOverHandler func(deltaTime float32, in Input, hit MouseHit)

// MouseOutHandler runs once when the pointer leaves body for empty space.
type MouseOutHandler func(body *physics.RigidBody)

// MouseEventManager casts the pointer ray into the physics world each update
// and dispatches hover callbacks to body tags.
type MouseEventManager struct {
	World *physics.World
	// Filter limits which bodies can be picked. nil accepts all.
	Filter physics.RaycastFilter
	// WhileMouseOver defaults to DefaultWhileMouseOver; set nil to disable.
	WhileMouseOver WhileMouseOverHandler
	// WhileMouseOut defaults to DefaultWhileMouseOut; set nil to disable.
	// Replace it together with WhileMouseOver to keep events paired.
	WhileMouseOut MouseOutHandler

	mouseOver *physics.RigidBody
}

func NewMouseEventManager(world *physics.World) *MouseEventManager {
	m := &MouseEventManager{World: world}
	m.WhileMouseOver = m.DefaultWhileMouseOver
	m.WhileMouseOut = m.DefaultWhileMouseOut
	return m
}

// MouseOver returns the body under the pointer after the last update.
func (m *MouseEventManager) MouseOver() *physics.RigidBody {
	return m.mouseOver
}

// ExecuteMouseEvents does nothing while the pointer is outside the window
// or over the HUD. Otherwise it picks the closest body along the mouse ray.
func (m *MouseEventManager) ExecuteMouseEvents(deltaTime float32, in Input) {
	if !in.InWindow || in.OverHUD || in.MouseRay == nil {
		return
	}

	ray := *in.MouseRay
	hit, ok := m.World.Raycast(ray.Position, ray.Direction, m.Filter)
	if !ok {
		if m.mouseOver != nil && m.WhileMouseOut != nil {
			m.WhileMouseOut(m.mouseOver)
		}
		m.mouseOver = nil
		return
	}

	if m.WhileMouseOver != nil {
		m.WhileMouseOver(deltaTime, in, MouseHit{
			Body: hit.Body,
			NormalRay: rl.Ray{
				Position:  hit.Point(ray.Position, ray.Direction),
				Direction: hit.Normal,
			},
			Fraction: hit.Fraction,
		})
	}
	m.mouseOver = hit.Body
}

// DefaultWhileMouseOver fires OnMouseOver on a newly hovered body and
// OnMouseOut on the one it replaced.
func (m *MouseEventManager) DefaultWhileMouseOver(deltaTime float32, in Input, hit MouseHit) {
	if hit.Body == m.mouseOver {
		return
	}
	if h := handlerOf(hit.Body); h != nil {
		h.OnMouseOver()
	}
	if h := handlerOf(m.mouseOver); h != nil {
		h.OnMouseOut()
	}
}

// DefaultWhileMouseOut fires OnMouseOut on body.
func (m *MouseEventManager) DefaultWhileMouseOut(body *physics.RigidBody) {
	if h := handlerOf(body); h != nil {
		h.OnMouseOut()
	}
}

// Forget drops b as the hovered body without firing callbacks. Used when b
// leaves the world.
func (m *MouseEventManager) Forget(b *physics.RigidBody) {
	if m.mouseOver == b {
		m.mouseOver = nil
	}
}

func handlerOf(b *physics.RigidBody) MouseEventHandler {
	if b == nil {
		return nil
	}
	h, _ := b.Tag.(MouseEventHandler)
	return h
}

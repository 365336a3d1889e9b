package engine

import (
	"sync/atomic"
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Draw3D() {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if d, ok := c.(Drawer3D); ok {
			d.Draw3D()
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// OnMouseOver forwards to every component handling pointer events.
func (g *GameObject) OnMouseOver() {
	for _, c := range g.components {
		if h, ok := c.(mouseHandler); ok {
			h.OnMouseOver()
		}
	}
}

// OnMouseOut forwards to every component handling pointer events.
func (g *GameObject) OnMouseOut() {
	for _, c := range g.components {
		if h, ok := c.(mouseHandler); ok {
			h.OnMouseOut()
		}
	}
}

// Destroyed reports whether the object has been untracked.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) notifyCollisionEnter(other *GameObject) {
	if g.destroyed {
		return
	}
	for _, c := range g.components {
		if h, ok := c.(CollisionHandler); ok {
			h.OnCollisionEnter(other)
		}
	}
}

func (g *GameObject) destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	for _, c := range g.components {
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

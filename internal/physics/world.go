package physics

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact is reported once when two bodies start touching.
type Contact struct {
	A, B *RigidBody
}

// ContactListener receives new contacts after each Step.
type ContactListener func(c Contact)

// bodyPair is a consistent key for two bodies (smaller id first).
type bodyPair struct {
	a, b uint64
}

func makePair(a, b *RigidBody) bodyPair {
	if a.id > b.id {
		return bodyPair{a: b.id, b: a.id}
	}
	return bodyPair{a: a.id, b: b.id}
}

// World holds the bodies the engine draws and picks against. Dynamics cover
// gravity, integration and push-out against static bodies.
type World struct {
	Gravity rl.Vector3

	bodies   []*RigidBody
	nextID   uint64
	removed  map[*RigidBody]bool
	stepping bool

	listeners        []ContactListener
	activeContacts   map[bodyPair]bool
	currentContacts  map[bodyPair]bool
	lastLoggedBodies int
}

func NewWorld() *World {
	return &World{
		Gravity:         rl.Vector3{X: 0, Y: -9.81, Z: 0},
		bodies:          make([]*RigidBody, 0),
		removed:         make(map[*RigidBody]bool),
		activeContacts:  make(map[bodyPair]bool),
		currentContacts: make(map[bodyPair]bool),
	}
}

func (w *World) AddBody(b *RigidBody) {
	if b.world == w {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	w.bodies = append(w.bodies, b)
	delete(w.removed, b)
}

// RemoveBody takes b out of the world. Removal while Step is dispatching
// contacts is deferred until the step finishes.
func (w *World) RemoveBody(b *RigidBody) {
	if b.world != w {
		return
	}
	if w.stepping {
		w.removed[b] = true
		return
	}
	for i, body := range w.bodies {
		if body == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for pair := range w.activeContacts {
		if pair.a == b.id || pair.b == b.id {
			delete(w.activeContacts, pair)
		}
	}
	b.world = nil
}

// Bodies returns the bodies currently in the world.
func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

// AddContactListener registers fn for new contacts.
func (w *World) AddContactListener(fn ContactListener) {
	if fn == nil {
		return
	}
	w.listeners = append(w.listeners, fn)
}

func (w *World) Step(deltaTime float32) {
	w.stepping = true
	w.currentContacts = make(map[bodyPair]bool)

	// 1. Integrate
	for _, b := range w.bodies {
		if b.IsStatic {
			continue
		}
		if b.AffectedByGravity {
			b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.LinearVelocity, deltaTime))
	}

	// 2. Detect and resolve
	var started []Contact
	for i, a := range w.bodies {
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.IsStatic && b.IsStatic {
				continue
			}
			if !w.collide(a, b) {
				continue
			}
			pair := makePair(a, b)
			w.currentContacts[pair] = true
			if !w.activeContacts[pair] {
				started = append(started, Contact{A: a, B: b})
			}
		}
	}
	w.activeContacts = w.currentContacts

	// 3. Notify
	for _, c := range started {
		for _, fn := range w.listeners {
			fn(c)
		}
	}

	w.stepping = false
	for b := range w.removed {
		w.RemoveBody(b)
		delete(w.removed, b)
	}

	if n := len(w.bodies); n%100 == 0 && n > 0 && n != w.lastLoggedBodies {
		w.lastLoggedBodies = n
		log.Printf("Physics: %d bodies", n)
	}
}

// collide tests a against b and pushes dynamic bodies out of static ones.
func (w *World) collide(a, b *RigidBody) bool {
	if terrain, ok := b.Shape.(*TerrainShape); ok && b.IsStatic {
		return w.collideTerrain(a, b, terrain)
	}
	if terrain, ok := a.Shape.(*TerrainShape); ok && a.IsStatic {
		return w.collideTerrain(b, a, terrain)
	}

	boxA, boxB := a.BoundingBox(), b.BoundingBox()
	if !boxA.Intersects(boxB) {
		return false
	}

	switch {
	case b.IsStatic:
		pushOut(a, boxA.Resolve(boxB))
	case a.IsStatic:
		pushOut(b, boxB.Resolve(boxA))
	}
	return true
}

func (w *World) collideTerrain(body, terrainBody *RigidBody, terrain *TerrainShape) bool {
	if body.IsStatic {
		return false
	}
	box := body.BoundingBox()
	center := box.Center()

	local, _ := terrainBody.toLocal(center, rl.Vector3{})
	height, ok := terrain.HeightAt(local.X, local.Z)
	if !ok {
		return false
	}
	// HeightAt works in terrain body space.
	surface := height + terrainBody.Position.Y
	if box.Min.Y > surface {
		return false
	}
	pushOut(body, rl.Vector3{Y: surface - box.Min.Y})
	return true
}

// pushOut moves b by mtv and cancels the velocity component into the contact.
func pushOut(b *RigidBody, mtv rl.Vector3) {
	if mtv.X == 0 && mtv.Y == 0 && mtv.Z == 0 {
		return
	}
	b.Position = rl.Vector3Add(b.Position, mtv)

	n := rl.Vector3Normalize(mtv)
	into := rl.Vector3DotProduct(b.LinearVelocity, n)
	if into < 0 {
		b.LinearVelocity = rl.Vector3Subtract(b.LinearVelocity, rl.Vector3Scale(n, into))
	}
}

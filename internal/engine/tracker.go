package engine

// Tracker owns the set of live GameObjects. Untracking is deferred until
// Flush so an object can untrack itself, or another object, while the scene
// is updating.
type Tracker struct {
	scene   *Scene
	pending []*GameObject

	// Untracked fires once per object after it has left the scene.
	Untracked EventWithArg[*GameObject]
}

func NewTracker(scene *Scene) *Tracker {
	return &Tracker{scene: scene}
}

// Track adds g to the scene and starts it.
func (t *Tracker) Track(g *GameObject) {
	if g.Scene == t.scene {
		return
	}
	t.scene.AddGameObject(g)
	g.Start()
}

// Untrack schedules g for removal. Repeated calls before Flush are ignored.
func (t *Tracker) Untrack(g *GameObject) {
	if g.Scene != t.scene || g.destroyed {
		return
	}
	for _, p := range t.pending {
		if p == g {
			return
		}
	}
	t.pending = append(t.pending, g)
}

// Pending reports how many objects are waiting for Flush.
func (t *Tracker) Pending() int {
	return len(t.pending)
}

// Flush removes every pending object from the scene and destroys it.
func (t *Tracker) Flush() {
	for len(t.pending) > 0 {
		batch := t.pending
		t.pending = nil
		for _, g := range batch {
			t.scene.RemoveGameObject(g)
			g.destroy()
			t.Untracked.Invoke(g)
		}
	}
}

// Each visits the tracked objects in insertion order.
func (t *Tracker) Each(fn func(g *GameObject)) {
	for _, g := range t.scene.GameObjects {
		fn(g)
	}
}

func (t *Tracker) Count() int {
	return len(t.scene.GameObjects)
}

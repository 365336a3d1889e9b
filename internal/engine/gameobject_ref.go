package engine

// GameObjectRef refers to a GameObject by UID so a holder does not keep an
// untracked object alive or draw stale state from it.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// Get resolves the reference, returning nil if it is empty or the object
// has left the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if !r.IsValid() || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	r.UID = g.UID
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}

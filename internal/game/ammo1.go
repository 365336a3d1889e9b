package game

import (
	"duckengine/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ammo1 flies in a straight line towards its target and disappears on the
// first hit.
type Ammo1 struct {
	*Projectile
}

// NewAmmo1 normalizes target and launches the body along it at speed.
func NewAmmo1(owner *engine.Engine, position rl.Vector3, damage, speed float32, target rl.Vector3, collisionSize float32) *Ammo1 {
	p := NewProjectile(owner, position, damage, speed, rl.Vector3Normalize(target), collisionSize)
	p.Body.LinearVelocity = rl.Vector3Scale(p.Target, p.Speed)

	a := &Ammo1{Projectile: p}
	p.Hit.AddListener(a.onHit)
	return a
}

// SpawnAmmo1 wraps a new Ammo1 in a tracked GameObject.
func SpawnAmmo1(owner *engine.Engine, name string, position rl.Vector3, damage, speed float32, target rl.Vector3, collisionSize float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = append(g.Tags, "projectile")
	g.AddComponent(NewAmmo1(owner, position, damage, speed, target, collisionSize))
	owner.Spawn(g)
	return g
}

func (a *Ammo1) Draw3D() {
	// Spheres always have a primitive.
	_ = a.owner.Helper3D.DrawBody(a.Body, rl.Gray, true, true)
}

func (a *Ammo1) onHit(other *engine.GameObject) {
	a.owner.Tracker.Untrack(a.GetGameObject())
}

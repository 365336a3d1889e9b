package game

import (
	"duckengine/internal/engine"
	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultProjectileLifetime untracks projectiles that never hit anything.
const DefaultProjectileLifetime = 10 // seconds

// Damageable is implemented by components that lose health when a
// projectile hits their GameObject.
type Damageable interface {
	TakeDamage(amount float32)
}

// Projectile is a sphere body fired into the world. Hit fires with the
// GameObject it touched after damage has been applied.
type Projectile struct {
	engine.BaseComponent

	Damage        float32
	Speed         float32
	Target        rl.Vector3
	CollisionSize float32
	Lifetime      float32
	Body          *physics.RigidBody

	Hit engine.EventWithArg[*engine.GameObject]

	owner *engine.Engine
	age   float32
}

// NewProjectile places a sphere of radius collisionSize at position and adds
// it to the owner's physics world.
func NewProjectile(owner *engine.Engine, position rl.Vector3, damage, speed float32, target rl.Vector3, collisionSize float32) *Projectile {
	body := physics.NewRigidBody(physics.NewSphereShape(collisionSize))
	body.Position = position
	owner.Physics.AddBody(body)

	return &Projectile{
		Damage:        damage,
		Speed:         speed,
		Target:        target,
		CollisionSize: collisionSize,
		Lifetime:      DefaultProjectileLifetime,
		Body:          body,
		owner:         owner,
	}
}

func (p *Projectile) SetGameObject(g *engine.GameObject) {
	p.BaseComponent.SetGameObject(g)
	p.Body.Tag = g
}

func (p *Projectile) Update(deltaTime float32) {
	p.age += deltaTime
	if g := p.GetGameObject(); g != nil && p.Lifetime > 0 && p.age >= p.Lifetime {
		p.owner.Tracker.Untrack(g)
	}
}

func (p *Projectile) OnCollisionEnter(other *engine.GameObject) {
	for _, c := range other.Components() {
		if d, ok := c.(Damageable); ok {
			d.TakeDamage(p.Damage)
		}
	}
	p.Hit.Invoke(other)
}

func (p *Projectile) OnDestroy() {
	p.Hit.RemoveAllListeners()
	p.owner.ForgetBody(p.Body)
}

package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RigidBody is a shape placed in the world. Orientation holds rotation only.
type RigidBody struct {
	Shape             Shape
	Position          rl.Vector3
	Orientation       rl.Matrix
	LinearVelocity    rl.Vector3
	IsStatic          bool
	AffectedByGravity bool

	// Tag is the game-side owner of the body. The mouse event manager and
	// contact listeners use it to reach back into game code.
	Tag any

	id    uint64
	world *World
}

func NewRigidBody(shape Shape) *RigidBody {
	return &RigidBody{
		Shape:             shape,
		Orientation:       rl.MatrixIdentity(),
		AffectedByGravity: true,
	}
}

// World returns the world the body was added to, or nil.
func (b *RigidBody) World() *World {
	return b.world
}

// WorldMatrix is orientation followed by translation to Position.
func (b *RigidBody) WorldMatrix() rl.Matrix {
	return rl.MatrixMultiply(b.Orientation, rl.MatrixTranslate(b.Position.X, b.Position.Y, b.Position.Z))
}

// BoundingBox returns the world-space AABB of the body's shape.
func (b *RigidBody) BoundingBox() AABB {
	return b.Shape.BoundingBox().Transform(b.WorldMatrix())
}

// BoundingBoxWorldMatrix maps a unit cube centred on the origin onto the
// body's world-space AABB.
func (b *RigidBody) BoundingBoxWorldMatrix() rl.Matrix {
	box := b.BoundingBox()
	size := box.Size()
	center := box.Center()
	return rl.MatrixMultiply(
		rl.MatrixScale(size.X, size.Y, size.Z),
		rl.MatrixTranslate(center.X, center.Y, center.Z),
	)
}

// toLocal maps a world-space ray into body space.
func (b *RigidBody) toLocal(origin, direction rl.Vector3) (rl.Vector3, rl.Vector3) {
	inv := rl.MatrixTranspose(b.Orientation)
	localOrigin := rl.Vector3Transform(rl.Vector3Subtract(origin, b.Position), inv)
	localDirection := rl.Vector3Transform(direction, inv)
	return localOrigin, localDirection
}

package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest body along a ray. The hit point is
// origin + direction*Fraction; direction is used as given, not normalized.
type RaycastHit struct {
	Body     *RigidBody
	Normal   rl.Vector3
	Fraction float32
}

// Point returns the world-space hit point for the ray that produced h.
func (h RaycastHit) Point(origin, direction rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(origin, rl.Vector3Scale(direction, h.Fraction))
}

// RaycastFilter rejects bodies by returning false. A nil filter accepts all.
type RaycastFilter func(b *RigidBody) bool

// Raycast checks every body and returns the closest hit.
func (w *World) Raycast(origin, direction rl.Vector3, filter RaycastFilter) (RaycastHit, bool) {
	var closest RaycastHit
	hit := false

	if direction.X == 0 && direction.Y == 0 && direction.Z == 0 {
		return closest, false
	}

	for _, b := range w.bodies {
		if w.removed[b] {
			continue
		}
		if filter != nil && !filter(b) {
			continue
		}

		// Cheap reject against the world bounds first.
		tmin, _, _, ok := b.BoundingBox().intersectRay(origin, direction)
		if !ok || (hit && tmin > closest.Fraction) {
			continue
		}

		if fraction, normal, ok := raycastBody(b, origin, direction); ok {
			if !hit || fraction < closest.Fraction {
				closest = RaycastHit{Body: b, Normal: normal, Fraction: fraction}
				hit = true
			}
		}
	}

	return closest, hit
}

// RaycastBody intersects a single body regardless of world membership.
func RaycastBody(b *RigidBody, origin, direction rl.Vector3) (RaycastHit, bool) {
	fraction, normal, ok := raycastBody(b, origin, direction)
	if !ok {
		return RaycastHit{}, false
	}
	return RaycastHit{Body: b, Normal: normal, Fraction: fraction}, true
}

func raycastBody(b *RigidBody, origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	localOrigin, localDirection := b.toLocal(origin, direction)
	fraction, normal, ok := b.Shape.raycast(localOrigin, localDirection)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	worldNormal := rl.Vector3Normalize(rl.Vector3Transform(normal, b.Orientation))
	return fraction, worldNormal, true
}

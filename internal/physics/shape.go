package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape is the collision geometry of a RigidBody, expressed in body space.
// Round shapes are aligned with the local Y axis.
type Shape interface {
	// BoundingBox returns the body-space bounds of the shape.
	BoundingBox() AABB
	// raycast intersects a body-space ray. The fraction is measured along the
	// (unnormalized) direction; the normal is in body space.
	raycast(origin, direction rl.Vector3) (fraction float32, normal rl.Vector3, ok bool)
}

type BoxShape struct {
	Size rl.Vector3
}

func NewBoxShape(size rl.Vector3) *BoxShape {
	return &BoxShape{Size: size}
}

func (b *BoxShape) BoundingBox() AABB {
	return NewAABBFromCenter(rl.Vector3Zero(), b.Size)
}

func (b *BoxShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	box := b.BoundingBox()
	tmin, tmax, axis, ok := box.intersectRay(origin, direction)
	if !ok {
		return 0, rl.Vector3{}, false
	}

	// Origin inside the box: report the exit face.
	if tmin < 0 {
		point := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmax))
		return tmax, boxFaceNormal(box, point), true
	}

	var normal rl.Vector3
	switch axis {
	case 0:
		normal.X = -sign(direction.X)
	case 1:
		normal.Y = -sign(direction.Y)
	case 2:
		normal.Z = -sign(direction.Z)
	}
	return tmin, normal, true
}

// boxFaceNormal picks the face of box closest to a point on its surface.
func boxFaceNormal(box AABB, point rl.Vector3) rl.Vector3 {
	best := float32(math.MaxFloat32)
	var normal rl.Vector3
	check := func(d float32, n rl.Vector3) {
		if d < best {
			best = d
			normal = n
		}
	}
	check(abs(point.X-box.Min.X), rl.Vector3{X: -1})
	check(abs(point.X-box.Max.X), rl.Vector3{X: 1})
	check(abs(point.Y-box.Min.Y), rl.Vector3{Y: -1})
	check(abs(point.Y-box.Max.Y), rl.Vector3{Y: 1})
	check(abs(point.Z-box.Min.Z), rl.Vector3{Z: -1})
	check(abs(point.Z-box.Max.Z), rl.Vector3{Z: 1})
	return normal
}

type SphereShape struct {
	Radius float32
}

func NewSphereShape(radius float32) *SphereShape {
	return &SphereShape{Radius: radius}
}

func (s *SphereShape) BoundingBox() AABB {
	d := 2 * s.Radius
	return NewAABBFromCenter(rl.Vector3Zero(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	return raycastSphere(origin, direction, rl.Vector3Zero(), s.Radius)
}

// CylinderShape is centred on the origin; Height runs along Y.
type CylinderShape struct {
	Height float32
	Radius float32
}

func NewCylinderShape(height, radius float32) *CylinderShape {
	return &CylinderShape{Height: height, Radius: radius}
}

func (c *CylinderShape) BoundingBox() AABB {
	d := 2 * c.Radius
	return NewAABBFromCenter(rl.Vector3Zero(), rl.Vector3{X: d, Y: c.Height, Z: d})
}

func (c *CylinderShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	half := c.Height / 2
	var hit rayHit
	hit.consider(raycastCylinderSide(origin, direction, c.Radius, -half, half))
	hit.consider(raycastDisc(origin, direction, half, c.Radius, 1))
	hit.consider(raycastDisc(origin, direction, -half, c.Radius, -1))
	return hit.fraction, hit.normal, hit.ok
}

// CapsuleShape is a cylinder of Length capped by two hemispheres of Radius.
type CapsuleShape struct {
	Length float32
	Radius float32
}

func NewCapsuleShape(length, radius float32) *CapsuleShape {
	return &CapsuleShape{Length: length, Radius: radius}
}

func (c *CapsuleShape) BoundingBox() AABB {
	d := 2 * c.Radius
	return NewAABBFromCenter(rl.Vector3Zero(), rl.Vector3{X: d, Y: c.Length + d, Z: d})
}

func (c *CapsuleShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	half := c.Length / 2
	var hit rayHit
	hit.consider(raycastCylinderSide(origin, direction, c.Radius, -half, half))
	hit.consider(raycastSphere(origin, direction, rl.Vector3{Y: half}, c.Radius))
	hit.consider(raycastSphere(origin, direction, rl.Vector3{Y: -half}, c.Radius))
	return hit.fraction, hit.normal, hit.ok
}

// ConeShape has its centroid at the origin: the base sits at -Height/3 and
// the apex at 2*Height/3.
type ConeShape struct {
	Height float32
	Radius float32
}

func NewConeShape(height, radius float32) *ConeShape {
	return &ConeShape{Height: height, Radius: radius}
}

func (c *ConeShape) BoundingBox() AABB {
	return AABB{
		Min: rl.Vector3{X: -c.Radius, Y: -c.Height / 3, Z: -c.Radius},
		Max: rl.Vector3{X: c.Radius, Y: 2 * c.Height / 3, Z: c.Radius},
	}
}

func (c *ConeShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	if c.Height <= 0 {
		return 0, rl.Vector3{}, false
	}
	base := -c.Height / 3
	apex := 2 * c.Height / 3
	var hit rayHit
	hit.consider(raycastConeSide(origin, direction, c.Radius/c.Height, base, apex))
	hit.consider(raycastDisc(origin, direction, base, c.Radius, -1))
	return hit.fraction, hit.normal, hit.ok
}

// rayHit accumulates the closest non-negative intersection.
type rayHit struct {
	fraction float32
	normal   rl.Vector3
	ok       bool
}

func (h *rayHit) consider(t float32, n rl.Vector3, ok bool) {
	if !ok || t < 0 {
		return
	}
	if !h.ok || t < h.fraction {
		h.fraction = t
		h.normal = n
		h.ok = true
	}
}

func raycastSphere(origin, direction, center rl.Vector3, radius float32) (float32, rl.Vector3, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	if a == 0 {
		return 0, rl.Vector3{}, false
	}
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, rl.Vector3{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return 0, rl.Vector3{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return t, normal, true
}

// raycastCylinderSide hits the curved wall x²+z²=r² between y0 and y1.
func raycastCylinderSide(origin, direction rl.Vector3, radius, y0, y1 float32) (float32, rl.Vector3, bool) {
	a := direction.X*direction.X + direction.Z*direction.Z
	if a == 0 {
		return 0, rl.Vector3{}, false
	}
	b := 2 * (origin.X*direction.X + origin.Z*direction.Z)
	c := origin.X*origin.X + origin.Z*origin.Z - radius*radius

	roots, n := quadraticRoots(a, b, c)
	for i := 0; i < n; i++ {
		t := roots[i]
		if t < 0 {
			continue
		}
		y := origin.Y + direction.Y*t
		if y < y0 || y > y1 {
			continue
		}
		p := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		return t, rl.Vector3Normalize(rl.Vector3{X: p.X, Z: p.Z}), true
	}
	return 0, rl.Vector3{}, false
}

// raycastDisc hits the disc of radius at height y facing ny (+1 or -1).
func raycastDisc(origin, direction rl.Vector3, y, radius, ny float32) (float32, rl.Vector3, bool) {
	if direction.Y == 0 {
		return 0, rl.Vector3{}, false
	}
	t := (y - origin.Y) / direction.Y
	if t < 0 {
		return 0, rl.Vector3{}, false
	}
	x := origin.X + direction.X*t
	z := origin.Z + direction.Z*t
	if x*x+z*z > radius*radius {
		return 0, rl.Vector3{}, false
	}
	return t, rl.Vector3{Y: ny}, true
}

// raycastConeSide hits the surface x²+z² = k²(apex-y)² for base <= y <= apex,
// where k is radius/height.
func raycastConeSide(origin, direction rl.Vector3, k, base, apex float32) (float32, rl.Vector3, bool) {
	k2 := k * k
	oy := apex - origin.Y
	a := direction.X*direction.X + direction.Z*direction.Z - k2*direction.Y*direction.Y
	b := 2 * (origin.X*direction.X + origin.Z*direction.Z + k2*oy*direction.Y)
	c := origin.X*origin.X + origin.Z*origin.Z - k2*oy*oy

	var roots [2]float32
	var n int
	if abs(a) < 1e-9 {
		if b == 0 {
			return 0, rl.Vector3{}, false
		}
		roots[0] = -c / b
		n = 1
	} else {
		roots, n = quadraticRoots(a, b, c)
	}

	for i := 0; i < n; i++ {
		t := roots[i]
		if t < 0 {
			continue
		}
		p := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		if p.Y < base || p.Y > apex {
			continue
		}
		normal := rl.Vector3Normalize(rl.Vector3{X: p.X, Y: k2 * (apex - p.Y), Z: p.Z})
		return t, normal, true
	}
	return 0, rl.Vector3{}, false
}

// quadraticRoots returns the real roots of a*t²+b*t+c in ascending order.
func quadraticRoots(a, b, c float32) ([2]float32, int) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return [2]float32{}, 0
	}
	sq := float32(math.Sqrt(float64(disc)))
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return [2]float32{t0, t1}, 2
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

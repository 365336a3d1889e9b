package primitives

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewBox builds a unit cube centered on the origin.
func NewBox() *Primitive {
	p := newPrimitive("box")

	normals := []rl.Vector3{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
	}

	for _, n := range normals {
		side1 := rl.Vector3{X: n.Y, Y: n.Z, Z: n.X}
		side2 := rl.Vector3CrossProduct(n, side1)

		base := p.CurrentVertex()
		p.addTriangle(base, base+2, base+1)
		p.addTriangle(base, base+3, base+2)

		corners := []rl.Vector3{
			rl.Vector3Subtract(rl.Vector3Subtract(n, side1), side2),
			rl.Vector3Add(rl.Vector3Subtract(n, side1), side2),
			rl.Vector3Add(rl.Vector3Add(n, side1), side2),
			rl.Vector3Subtract(rl.Vector3Add(n, side1), side2),
		}
		for _, c := range corners {
			p.AddVertex(rl.Vector3Scale(c, 0.5), n)
		}
	}

	return p
}

// NewSphere builds a sphere of radius 1.
func NewSphere(tessellation int) (*Primitive, error) {
	if tessellation < 3 {
		return nil, fmt.Errorf("sphere: %w", ErrTessellation)
	}

	rings := make([]latheRing, 0, tessellation-1)
	for i := 1; i < tessellation; i++ {
		rings = append(rings, latheRing{
			latitude: float64(i)*math.Pi/float64(tessellation) - math.Pi/2,
		})
	}

	p := newPrimitive("sphere")
	buildLathe(p, rings, tessellation*2, 1, 0)
	return p, p.err
}

// NewCapsule builds a capsule along Y. length is the cylindrical section
// between the two hemisphere centers.
func NewCapsule(diameter, length float32, tessellation int) (*Primitive, error) {
	if tessellation < 3 {
		return nil, fmt.Errorf("capsule: %w", ErrTessellation)
	}

	steps := tessellation / 2
	half := length / 2
	rings := make([]latheRing, 0, steps*2)
	for i := 1; i <= steps; i++ {
		rings = append(rings, latheRing{
			latitude: float64(i)*(math.Pi/2)/float64(steps) - math.Pi/2,
			offsetY:  -half,
		})
	}
	for i := 0; i < steps; i++ {
		rings = append(rings, latheRing{
			latitude: float64(i) * (math.Pi / 2) / float64(steps),
			offsetY:  half,
		})
	}

	p := newPrimitive("capsule")
	buildLathe(p, rings, tessellation*2, diameter/2, half)
	return p, p.err
}

// NewCylinder builds a cylinder of radius 1 and height 1 along Y.
func NewCylinder(tessellation int) (*Primitive, error) {
	if tessellation < 3 {
		return nil, fmt.Errorf("cylinder: %w", ErrTessellation)
	}

	p := newPrimitive("cylinder")
	up := rl.Vector3{Y: 0.5}

	for i := 0; i < tessellation; i++ {
		n := circleVector(i, tessellation)

		top := 2 * i
		bottom := top + 1
		nextTop := 2 * ((i + 1) % tessellation)
		nextBottom := nextTop + 1
		p.addTriangle(bottom, top, nextTop)
		p.addTriangle(bottom, nextTop, nextBottom)

		p.AddVertex(rl.Vector3Add(n, up), n)
		p.AddVertex(rl.Vector3Subtract(n, up), n)
	}

	addCap(p, tessellation, 0.5, 1, true)
	addCap(p, tessellation, -0.5, 1, false)
	return p, p.err
}

// NewCone builds a cone of radius 1 and height 1 along Y, with the origin at
// its centroid: the base sits at -1/3 and the apex at 2/3.
func NewCone(tessellation int) (*Primitive, error) {
	if tessellation < 3 {
		return nil, fmt.Errorf("cone: %w", ErrTessellation)
	}

	const (
		baseY = float32(-1.0 / 3.0)
		apexY = float32(2.0 / 3.0)
	)

	p := newPrimitive("cone")
	// With radius == height the side normal leans 45 degrees up.
	sideNormal := func(angle float64) rl.Vector3 {
		return rl.Vector3Normalize(rl.Vector3{
			X: float32(math.Cos(angle)),
			Y: 1,
			Z: float32(math.Sin(angle)),
		})
	}

	for i := 0; i < tessellation; i++ {
		a0 := float64(i) * 2 * math.Pi / float64(tessellation)
		a1 := float64(i+1) * 2 * math.Pi / float64(tessellation)
		mid := (a0 + a1) / 2

		base := p.CurrentVertex()
		p.addTriangle(base, base+1, base+2)

		p.AddVertex(rl.Vector3{X: float32(math.Cos(a0)), Y: baseY, Z: float32(math.Sin(a0))}, sideNormal(a0))
		p.AddVertex(rl.Vector3{Y: apexY}, sideNormal(mid))
		p.AddVertex(rl.Vector3{X: float32(math.Cos(a1)), Y: baseY, Z: float32(math.Sin(a1))}, sideNormal(a1))
	}

	addCap(p, tessellation, baseY, 1, false)
	return p, p.err
}

type latheRing struct {
	latitude float64
	offsetY  float32
}

// buildLathe emits a bottom pole, the given rings from bottom to top and a
// top pole, each ring with segments vertices. poleOffset shifts the poles
// along Y.
func buildLathe(p *Primitive, rings []latheRing, segments int, radius, poleOffset float32) {
	down := rl.Vector3{Y: -1}
	up := rl.Vector3{Y: 1}

	p.AddVertex(rl.Vector3{Y: -radius - poleOffset}, down)

	for _, r := range rings {
		dy := float32(math.Sin(r.latitude))
		dxz := math.Cos(r.latitude)
		for j := 0; j < segments; j++ {
			longitude := float64(j) * 2 * math.Pi / float64(segments)
			n := rl.Vector3{
				X: float32(math.Cos(longitude) * dxz),
				Y: dy,
				Z: float32(math.Sin(longitude) * dxz),
			}
			pos := rl.Vector3Scale(n, radius)
			pos.Y += r.offsetY
			p.AddVertex(pos, n)
		}
	}

	p.AddVertex(rl.Vector3{Y: radius + poleOffset}, up)

	ringVertex := func(ring, j int) int {
		return 1 + ring*segments + j%segments
	}

	for j := 0; j < segments; j++ {
		p.addTriangle(0, ringVertex(0, j), ringVertex(0, j+1))
	}

	for ring := 0; ring < len(rings)-1; ring++ {
		for j := 0; j < segments; j++ {
			l0, l1 := ringVertex(ring, j), ringVertex(ring, j+1)
			u0, u1 := ringVertex(ring+1, j), ringVertex(ring+1, j+1)
			p.addTriangle(l0, u0, u1)
			p.addTriangle(l0, u1, l1)
		}
	}

	top := p.CurrentVertex() - 1
	last := len(rings) - 1
	for j := 0; j < segments; j++ {
		p.addTriangle(ringVertex(last, j), top, ringVertex(last, j+1))
	}
}

// addCap emits a flat disc at height y as a triangle fan.
func addCap(p *Primitive, tessellation int, y, radius float32, facingUp bool) {
	normal := rl.Vector3{Y: -1}
	if facingUp {
		normal = rl.Vector3{Y: 1}
	}

	base := p.CurrentVertex()
	for i := 0; i < tessellation-2; i++ {
		if facingUp {
			p.addTriangle(base, base+i+2, base+i+1)
		} else {
			p.addTriangle(base, base+i+1, base+i+2)
		}
	}

	for i := 0; i < tessellation; i++ {
		pos := rl.Vector3Scale(circleVector(i, tessellation), radius)
		pos.Y = y
		p.AddVertex(pos, normal)
	}
}

func circleVector(i, tessellation int) rl.Vector3 {
	angle := float64(i) * 2 * math.Pi / float64(tessellation)
	return rl.Vector3{X: float32(math.Cos(angle)), Z: float32(math.Sin(angle))}
}

package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TerrainShape is a height field. Heights is indexed [x][z]; sample (x, z)
// sits at body-space (x*ScaleX, Heights[x][z], z*ScaleZ).
//
// Each cell is split along the diagonal from (x, z+1) to (x+1, z), the same
// way the terrain mesh is triangulated.
type TerrainShape struct {
	Heights [][]float32
	ScaleX  float32
	ScaleZ  float32

	bounds AABB
}

func NewTerrainShape(heights [][]float32, scaleX, scaleZ float32) *TerrainShape {
	t := &TerrainShape{Heights: heights, ScaleX: scaleX, ScaleZ: scaleZ}

	minY, maxY := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for _, column := range heights {
		for _, h := range column {
			minY = min(minY, h)
			maxY = max(maxY, h)
		}
	}
	if minY > maxY {
		minY, maxY = 0, 0
	}

	t.bounds = AABB{
		Min: rl.Vector3{X: 0, Y: minY, Z: 0},
		Max: rl.Vector3{X: float32(t.Width()-1) * scaleX, Y: maxY, Z: float32(t.Depth()-1) * scaleZ},
	}
	return t
}

// Width is the number of samples along X.
func (t *TerrainShape) Width() int {
	return len(t.Heights)
}

// Depth is the number of samples along Z.
func (t *TerrainShape) Depth() int {
	if len(t.Heights) == 0 {
		return 0
	}
	return len(t.Heights[0])
}

func (t *TerrainShape) BoundingBox() AABB {
	return t.bounds
}

// HeightAt samples the surface at body-space (x, z). ok is false outside the grid.
func (t *TerrainShape) HeightAt(x, z float32) (float32, bool) {
	w, d := t.Width(), t.Depth()
	if w < 2 || d < 2 {
		return 0, false
	}
	gx := x / t.ScaleX
	gz := z / t.ScaleZ
	if gx < 0 || gz < 0 || gx > float32(w-1) || gz > float32(d-1) {
		return 0, false
	}

	cx := min(int(gx), w-2)
	cz := min(int(gz), d-2)
	u := gx - float32(cx)
	v := gz - float32(cz)

	ll := t.Heights[cx][cz]
	lr := t.Heights[cx+1][cz]
	tl := t.Heights[cx][cz+1]
	tr := t.Heights[cx+1][cz+1]

	if u+v <= 1 {
		return ll + u*(lr-ll) + v*(tl-ll), true
	}
	return tr + (1-u)*(tl-tr) + (1-v)*(lr-tr), true
}

func (t *TerrainShape) vertex(x, z int) rl.Vector3 {
	return rl.Vector3{X: float32(x) * t.ScaleX, Y: t.Heights[x][z], Z: float32(z) * t.ScaleZ}
}

func (t *TerrainShape) raycast(origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	w, d := t.Width(), t.Depth()
	if w < 2 || d < 2 {
		return 0, rl.Vector3{}, false
	}

	tmin, tmax, _, ok := t.bounds.intersectRay(origin, direction)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	if tmin < 0 {
		tmin = 0
	}

	// Walk the cells under the ray in order (2D DDA on the XZ plane).
	start := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	cx := clampInt(int(math.Floor(float64(start.X/t.ScaleX))), 0, w-2)
	cz := clampInt(int(math.Floor(float64(start.Z/t.ScaleZ))), 0, d-2)

	stepX, nextX, deltaX := ddaAxis(origin.X, direction.X, t.ScaleX, cx)
	stepZ, nextZ, deltaZ := ddaAxis(origin.Z, direction.Z, t.ScaleZ, cz)

	for cx >= 0 && cx < w-1 && cz >= 0 && cz < d-1 {
		if frac, normal, ok := t.raycastCell(cx, cz, origin, direction); ok {
			return frac, normal, true
		}
		if nextX < nextZ {
			if nextX > tmax {
				break
			}
			cx += stepX
			nextX += deltaX
		} else {
			if nextZ > tmax {
				break
			}
			cz += stepZ
			nextZ += deltaZ
		}
	}
	return 0, rl.Vector3{}, false
}

func ddaAxis(origin, direction, cellSize float32, cell int) (step int, next, delta float32) {
	switch {
	case direction > 0:
		return 1, (float32(cell+1)*cellSize - origin) / direction, cellSize / direction
	case direction < 0:
		return -1, (float32(cell)*cellSize - origin) / direction, -cellSize / direction
	default:
		return 0, math.MaxFloat32, math.MaxFloat32
	}
}

func (t *TerrainShape) raycastCell(x, z int, origin, direction rl.Vector3) (float32, rl.Vector3, bool) {
	ll := t.vertex(x, z)
	lr := t.vertex(x+1, z)
	tl := t.vertex(x, z+1)
	tr := t.vertex(x+1, z+1)

	var hit rayHit
	hit.consider(raycastTriangle(origin, direction, tl, lr, ll))
	hit.consider(raycastTriangle(origin, direction, tl, tr, lr))
	return hit.fraction, hit.normal, hit.ok
}

// raycastTriangle is Möller–Trumbore without back-face rejection. The normal
// is oriented upwards since terrain is only ever seen from above.
func raycastTriangle(origin, direction, a, b, c rl.Vector3) (float32, rl.Vector3, bool) {
	const epsilon = 1e-7

	e1 := rl.Vector3Subtract(b, a)
	e2 := rl.Vector3Subtract(c, a)
	p := rl.Vector3CrossProduct(direction, e2)
	det := rl.Vector3DotProduct(e1, p)
	if abs(det) < epsilon {
		return 0, rl.Vector3{}, false
	}
	inv := 1 / det

	s := rl.Vector3Subtract(origin, a)
	u := rl.Vector3DotProduct(s, p) * inv
	if u < 0 || u > 1 {
		return 0, rl.Vector3{}, false
	}
	q := rl.Vector3CrossProduct(s, e1)
	v := rl.Vector3DotProduct(direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(e2, q) * inv
	if t < 0 {
		return 0, rl.Vector3{}, false
	}

	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(e1, e2))
	if normal.Y < 0 {
		normal = rl.Vector3Negate(normal)
	}
	return t, normal, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

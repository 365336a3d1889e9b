package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-3

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func nearVec(a, b rl.Vector3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestRaycastShapes(t *testing.T) {
	tests := []struct {
		name         string
		shape        Shape
		origin       rl.Vector3
		direction    rl.Vector3
		wantFraction float32
		wantNormal   rl.Vector3
	}{
		{
			name:         "box face",
			shape:        NewBoxShape(rl.Vector3{X: 2, Y: 2, Z: 2}),
			origin:       rl.Vector3{X: -5},
			direction:    rl.Vector3{X: 1},
			wantFraction: 4,
			wantNormal:   rl.Vector3{X: -1},
		},
		{
			name:         "box with unnormalized direction",
			shape:        NewBoxShape(rl.Vector3{X: 2, Y: 2, Z: 2}),
			origin:       rl.Vector3{X: -5},
			direction:    rl.Vector3{X: 2},
			wantFraction: 2,
			wantNormal:   rl.Vector3{X: -1},
		},
		{
			name:         "sphere",
			shape:        NewSphereShape(1),
			origin:       rl.Vector3{Z: -10},
			direction:    rl.Vector3{Z: 1},
			wantFraction: 9,
			wantNormal:   rl.Vector3{Z: -1},
		},
		{
			name:         "cylinder cap",
			shape:        NewCylinderShape(2, 1),
			origin:       rl.Vector3{Y: 5},
			direction:    rl.Vector3{Y: -1},
			wantFraction: 4,
			wantNormal:   rl.Vector3{Y: 1},
		},
		{
			name:         "cylinder side",
			shape:        NewCylinderShape(2, 1),
			origin:       rl.Vector3{X: -5},
			direction:    rl.Vector3{X: 1},
			wantFraction: 4,
			wantNormal:   rl.Vector3{X: -1},
		},
		{
			name:         "capsule cap",
			shape:        NewCapsuleShape(2, 0.5),
			origin:       rl.Vector3{Y: 5},
			direction:    rl.Vector3{Y: -1},
			wantFraction: 3.5,
			wantNormal:   rl.Vector3{Y: 1},
		},
		{
			name:         "capsule side",
			shape:        NewCapsuleShape(2, 0.5),
			origin:       rl.Vector3{Z: 5},
			direction:    rl.Vector3{Z: -1},
			wantFraction: 4.5,
			wantNormal:   rl.Vector3{Z: 1},
		},
		{
			name:         "cone base",
			shape:        NewConeShape(3, 1),
			origin:       rl.Vector3{Y: -5},
			direction:    rl.Vector3{Y: 1},
			wantFraction: 4,
			wantNormal:   rl.Vector3{Y: -1},
		},
		{
			name:         "cone side at centroid height",
			shape:        NewConeShape(3, 1),
			origin:       rl.Vector3{X: -5},
			direction:    rl.Vector3{X: 1},
			wantFraction: 5 - 2.0/3.0,
			wantNormal:   rl.Vector3Normalize(rl.Vector3{X: -2.0 / 3.0, Y: 2.0 / 9.0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewRigidBody(tt.shape)
			hit, ok := RaycastBody(body, tt.origin, tt.direction)
			if !ok {
				t.Fatal("expected a hit")
			}
			if !near(hit.Fraction, tt.wantFraction) {
				t.Errorf("fraction = %v, want %v", hit.Fraction, tt.wantFraction)
			}
			if !nearVec(hit.Normal, tt.wantNormal) {
				t.Errorf("normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
		})
	}
}

func TestRaycastMisses(t *testing.T) {
	shapes := map[string]Shape{
		"box":      NewBoxShape(rl.Vector3{X: 1, Y: 1, Z: 1}),
		"sphere":   NewSphereShape(1),
		"cylinder": NewCylinderShape(1, 1),
		"capsule":  NewCapsuleShape(1, 1),
		"cone":     NewConeShape(1, 1),
	}
	for name, shape := range shapes {
		body := NewRigidBody(shape)
		// Parallel to the shape, well above it.
		if _, ok := RaycastBody(body, rl.Vector3{X: -10, Y: 10}, rl.Vector3{X: 1}); ok {
			t.Errorf("%s: ray above shape should miss", name)
		}
		// Pointing away.
		if _, ok := RaycastBody(body, rl.Vector3{X: -10}, rl.Vector3{X: -1}); ok {
			t.Errorf("%s: ray pointing away should miss", name)
		}
	}
}

func TestRaycastRespectsOrientationAndPosition(t *testing.T) {
	body := NewRigidBody(NewBoxShape(rl.Vector3{X: 4, Y: 1, Z: 1}))
	body.Orientation = rl.MatrixRotateY(math.Pi / 2)
	body.Position = rl.Vector3{Y: 3}

	hit, ok := RaycastBody(body, rl.Vector3{Y: 3, Z: -5}, rl.Vector3{Z: 1})
	if !ok {
		t.Fatal("expected a hit on the rotated box")
	}
	if !near(hit.Fraction, 3) {
		t.Errorf("fraction = %v, want 3 (long axis now along Z)", hit.Fraction)
	}
	if !nearVec(hit.Normal, rl.Vector3{Z: -1}) {
		t.Errorf("normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestWorldRaycastClosestAndFilter(t *testing.T) {
	w := NewWorld()

	nearBody := NewRigidBody(NewSphereShape(1))
	nearBody.Position = rl.Vector3{Z: 5}
	farBody := NewRigidBody(NewSphereShape(1))
	farBody.Position = rl.Vector3{Z: 10}

	// Add far first so ordering in the body list doesn't decide the result.
	w.AddBody(farBody)
	w.AddBody(nearBody)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Body != nearBody {
		t.Error("expected the nearer body")
	}
	if p := hit.Point(rl.Vector3{}, rl.Vector3{Z: 1}); !nearVec(p, rl.Vector3{Z: 4}) {
		t.Errorf("hit point = %v, want (0,0,4)", p)
	}

	hit, ok = w.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, func(b *RigidBody) bool { return b != nearBody })
	if !ok || hit.Body != farBody {
		t.Error("filter should skip the nearer body")
	}

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{}, nil); ok {
		t.Error("zero direction should never hit")
	}
}

func TestRaycastTerrain(t *testing.T) {
	flat := [][]float32{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	body := NewRigidBody(NewTerrainShape(flat, 1, 1))
	body.IsStatic = true

	hit, ok := RaycastBody(body, rl.Vector3{X: 0.75, Y: 10, Z: 0.6}, rl.Vector3{Y: -1})
	if !ok {
		t.Fatal("vertical ray should hit the terrain")
	}
	if !near(hit.Fraction, 9) || !nearVec(hit.Normal, rl.Vector3{Y: 1}) {
		t.Errorf("got fraction %v normal %v", hit.Fraction, hit.Normal)
	}

	hit, ok = RaycastBody(body, rl.Vector3{X: -0.5, Y: 3, Z: 1.25}, rl.Vector3{X: 1, Y: -1})
	if !ok {
		t.Fatal("oblique ray should hit the terrain")
	}
	if !near(hit.Fraction, 2) {
		t.Errorf("oblique fraction = %v, want 2", hit.Fraction)
	}

	if _, ok := RaycastBody(body, rl.Vector3{X: 5, Y: 10, Z: 5}, rl.Vector3{Y: -1}); ok {
		t.Error("ray outside the grid should miss")
	}
}

func TestRaycastTerrainSlope(t *testing.T) {
	ramp := [][]float32{{0, 0}, {1, 1}}
	body := NewRigidBody(NewTerrainShape(ramp, 1, 1))
	body.Position = rl.Vector3{X: 10}

	hit, ok := RaycastBody(body, rl.Vector3{X: 10.25, Y: 10, Z: 0.5}, rl.Vector3{Y: -1})
	if !ok {
		t.Fatal("expected a hit on the ramp")
	}
	if !near(hit.Fraction, 9.75) {
		t.Errorf("fraction = %v, want 9.75", hit.Fraction)
	}
	want := rl.Vector3Normalize(rl.Vector3{X: -1, Y: 1})
	if !nearVec(hit.Normal, want) {
		t.Errorf("normal = %v, want %v", hit.Normal, want)
	}
}

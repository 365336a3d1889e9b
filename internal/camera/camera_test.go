package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestDirections(t *testing.T) {
	c := New(rl.Vector3{})
	c.Pitch = 0

	forward, right := c.Directions()
	if !near(forward, rl.Vector3{Z: -1}) {
		t.Errorf("forward = %v, want (0,0,-1)", forward)
	}
	if !near(right, rl.Vector3{X: 1}) {
		t.Errorf("right = %v, want (1,0,0)", right)
	}
	// Right-handed: right x forward points up.
	if up := rl.Vector3CrossProduct(right, forward); !near(up, rl.Vector3{Y: 1}) {
		t.Errorf("right x forward = %v, want up", up)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Look(50, -10000)
	if c.Pitch != 89 {
		t.Errorf("pitch = %v, want 89", c.Pitch)
	}
	if c.Yaw != -85 {
		t.Errorf("yaw = %v, want -85", c.Yaw)
	}
	c.Look(0, 10000)
	if c.Pitch != -89 {
		t.Errorf("pitch = %v, want -89", c.Pitch)
	}
}

func TestLookAt(t *testing.T) {
	c := New(rl.Vector3{Y: 10, Z: 10})
	c.LookAt(rl.Vector3{})

	if math.Abs(float64(c.Pitch+45)) > 1e-3 || math.Abs(float64(c.Yaw+90)) > 1e-3 {
		t.Errorf("yaw, pitch = %v, %v; want -90, -45", c.Yaw, c.Pitch)
	}

	cam := c.GetRaylibCamera()
	s := float32(math.Sqrt(0.5))
	if !near(cam.Target, rl.Vector3{Y: 10 - s, Z: 10 - s}) {
		t.Errorf("target = %v", cam.Target)
	}
	if cam.Projection != rl.CameraPerspective || cam.Fovy != 45 {
		t.Errorf("camera = %+v", cam)
	}
}

func TestMove(t *testing.T) {
	c := New(rl.Vector3{})
	c.Pitch = 0
	c.MoveSpeed = 10

	c.Move(1, 0, 0, 0.5)
	if !near(c.Position, rl.Vector3{Z: -5}) {
		t.Errorf("forward move to %v", c.Position)
	}
	c.Move(0, 1, 1, 0.1)
	if !near(c.Position, rl.Vector3{X: 1, Y: 1, Z: -5}) {
		t.Errorf("strafe and climb to %v", c.Position)
	}
}

package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyCamera is a free-flying camera. It looks around only while the right
// mouse button is held so the cursor stays free for picking.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	Fovy      float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     -30.0,
		MoveSpeed: 15.0, // Units per second
		LookSpeed: 0.1,
		Fovy:      45,
	}
}

// LookAt points the camera at target from its current position.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, c.Position))
	c.Pitch = float32(math.Asin(float64(dir.Y))) * rl.Rad2deg
	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X))) * rl.Rad2deg
}

func (c *FlyCamera) Update(deltaTime float32) {
	if !rl.IsMouseButtonDown(rl.MouseRightButton) {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	c.Look(mouseDelta.X, mouseDelta.Y)

	var forwardAxis, rightAxis, upAxis float32
	if rl.IsKeyDown(rl.KeyW) {
		forwardAxis++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forwardAxis--
	}
	if rl.IsKeyDown(rl.KeyD) {
		rightAxis++
	}
	if rl.IsKeyDown(rl.KeyA) {
		rightAxis--
	}
	if rl.IsKeyDown(rl.KeyE) {
		upAxis++
	}
	if rl.IsKeyDown(rl.KeyQ) {
		upAxis--
	}
	c.Move(forwardAxis, rightAxis, upAxis, deltaTime)
}

// Look turns the camera by a mouse delta in pixels.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move flies along the view direction, the horizontal right vector and
// world up. Axes are in -1..1.
func (c *FlyCamera) Move(forwardAxis, rightAxis, upAxis, deltaTime float32) {
	forward, right := c.Directions()
	speed := c.MoveSpeed * deltaTime

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, forwardAxis*speed))
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, rightAxis*speed))
	c.Position.Y += upAxis * speed
}

// Directions returns the unit view direction and the horizontal vector to
// the camera's right.
func (c *FlyCamera) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	forward, _ := c.Directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the per-frame pointer state the engine consumes.
type Input struct {
	MousePosition rl.Vector2
	// MouseRay is the pick ray under the pointer, nil when there is none.
	MouseRay *rl.Ray
	InWindow bool
	OverHUD  bool

	LeftPressed  bool
	RightPressed bool
}

// Capture reads the pointer from raylib. hud lists the screen rectangles
// currently covered by interface panels.
func Capture(camera rl.Camera3D, hud []rl.Rectangle) Input {
	in := Input{
		MousePosition: rl.GetMousePosition(),
		InWindow:      rl.IsWindowFocused() && rl.IsCursorOnScreen(),
		LeftPressed:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		RightPressed:  rl.IsMouseButtonPressed(rl.MouseRightButton),
	}
	in.OverHUD = PointInAny(in.MousePosition, hud)

	if in.InWindow {
		ray := rl.GetScreenToWorldRay(in.MousePosition, camera)
		in.MouseRay = &ray
	}
	return in
}

// PointInAny reports whether p lies inside one of rects.
func PointInAny(p rl.Vector2, rects []rl.Rectangle) bool {
	for _, r := range rects {
		if rl.CheckCollisionPointRec(p, r) {
			return true
		}
	}
	return false
}

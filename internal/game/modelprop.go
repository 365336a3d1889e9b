package game

import (
	"errors"
	"fmt"

	"duckengine/internal/engine"
	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelProp is a Prop whose box body is drawn as a loaded model. The model
// is loaded from the engine's asset cache on first draw; until it loads the
// body is drawn as a wireframe box.
type ModelProp struct {
	*Prop

	Path  string
	Scale float32
}

func (m *ModelProp) Draw3D() {
	model, err := m.owner.Assets.Model(m.Path)
	if err != nil {
		_ = m.owner.Helper3D.DrawBody(m.Body, rl.Magenta, false, false)
		return
	}
	m.owner.Helper3D.DrawModelScaled(model, m.Body, rl.MatrixScale(m.Scale, m.Scale, m.Scale))

	if m.hovered || (m.Settings != nil && m.Settings.BoundingBoxes) {
		m.owner.Helper3D.DrawBoundingBox(m.Body, m.CurrentColor(), false, 1)
	}
}

func init() {
	engine.RegisterComponent("model", func(owner *engine.Engine, props map[string]any) (engine.Component, error) {
		path, _ := props["path"].(string)
		if path == "" {
			return nil, errors.New("model needs a path")
		}
		scale := engine.PropFloat(props, "scale", 1)
		if scale <= 0 {
			return nil, fmt.Errorf("model scale %v must be positive", scale)
		}
		size := engine.PropVector3(props, "size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("model size %v must be positive", size)
		}

		p, err := newPropFromConfig(owner, physics.NewBoxShape(size), props)
		if err != nil {
			return nil, err
		}
		return &ModelProp{Prop: p, Path: path, Scale: scale}, nil
	})
}

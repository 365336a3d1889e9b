package render

import (
	"errors"
	"fmt"
	"unsafe"

	"duckengine/internal/physics"
	"duckengine/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnsupportedShape = errors.New("unsupported shape")

// Capsule bodies are drawn with their own cached geometry at this tessellation.
const capsuleTessellation = primitives.CapsuleTessellation

// boundingBoxScale keeps the box outline off the body surface.
const boundingBoxScale = 1.01

// Helper3D draws physics bodies with the shared primitives.
type Helper3D struct {
	Effect     *Effect
	Primitives *primitives.Registry
}

func NewHelper3D(effect *Effect, prims *primitives.Registry) *Helper3D {
	return &Helper3D{Effect: effect, Primitives: prims}
}

// ShapeTransform picks the primitive kind and the local scale that turns the
// unit primitive into shape. Capsules get their own geometry, so their scale
// is the identity.
func ShapeTransform(shape physics.Shape) (primitives.Kind, rl.Matrix, error) {
	switch s := shape.(type) {
	case *physics.BoxShape:
		return primitives.KindBox, rl.MatrixScale(s.Size.X, s.Size.Y, s.Size.Z), nil
	case *physics.SphereShape:
		return primitives.KindSphere, rl.MatrixScale(s.Radius, s.Radius, s.Radius), nil
	case *physics.CylinderShape:
		return primitives.KindCylinder, rl.MatrixScale(s.Radius, s.Height, s.Radius), nil
	case *physics.CapsuleShape:
		return primitives.KindCapsule, rl.MatrixIdentity(), nil
	case *physics.ConeShape:
		return primitives.KindCone, rl.MatrixScale(s.Radius, s.Height, s.Radius), nil
	}
	return 0, rl.Matrix{}, fmt.Errorf("%T: %w", shape, ErrUnsupportedShape)
}

// BodyTransform is the world matrix a body's primitive is drawn with.
func BodyTransform(body *physics.RigidBody) (rl.Matrix, error) {
	_, scale, err := ShapeTransform(body.Shape)
	if err != nil {
		return rl.Matrix{}, err
	}
	return rl.MatrixMultiply(scale, body.WorldMatrix()), nil
}

// BoundingBoxTransform maps the unit box onto the body's world AABB, slightly
// enlarged.
func BoundingBoxTransform(body *physics.RigidBody) rl.Matrix {
	scale := rl.MatrixScale(boundingBoxScale, boundingBoxScale, boundingBoxScale)
	return rl.MatrixMultiply(scale, body.BoundingBoxWorldMatrix())
}

func (h *Helper3D) primitiveFor(shape physics.Shape) (*primitives.Primitive, rl.Matrix, error) {
	kind, scale, err := ShapeTransform(shape)
	if err != nil {
		return nil, rl.Matrix{}, err
	}
	if capsule, ok := shape.(*physics.CapsuleShape); ok {
		p, err := h.Primitives.CapsuleFor(capsule.Radius*2, capsule.Length, capsuleTessellation)
		if err != nil {
			return nil, rl.Matrix{}, err
		}
		return p, scale, nil
	}
	return h.Primitives.Get(kind), scale, nil
}

// DrawBody draws the primitive for the body's shape at the body's transform.
func (h *Helper3D) DrawBody(body *physics.RigidBody, color rl.Color, solid, lighting bool) error {
	primitive, scale, err := h.primitiveFor(body.Shape)
	if err != nil {
		return fmt.Errorf("draw body: %w", err)
	}

	h.Effect.World = rl.MatrixMultiply(scale, body.WorldMatrix())
	h.Effect.DiffuseColor = color
	h.Effect.LightingEnabled = lighting

	if solid {
		primitive.DrawSolid(h.Effect)
	} else {
		primitive.DrawWireFrame(h.Effect)
	}
	return nil
}

// DrawBoundingBox draws the body's world AABB. alpha only applies to this
// call.
func (h *Helper3D) DrawBoundingBox(body *physics.RigidBody, color rl.Color, solid bool, alpha float32) {
	box := h.Primitives.Get(primitives.KindBox)

	h.Effect.Alpha = alpha
	h.Effect.DiffuseColor = color
	h.Effect.World = BoundingBoxTransform(body)

	if solid {
		box.DrawSolid(h.Effect)
	} else {
		box.DrawWireFrame(h.Effect)
	}
	h.Effect.Alpha = 1
}

// DrawVertices draws a prebuilt mesh at world with the effect's current
// state. Front faces wind counter-clockwise seen from outside.
func (h *Helper3D) DrawVertices(mesh rl.Mesh, world rl.Matrix) {
	h.Effect.World = world
	rl.EnableBackfaceCulling()
	rl.DrawMesh(mesh, h.Effect.Material(), h.Effect.Transform())
}

// DrawModel draws a loaded model at the body's transform with the default
// lighting.
func (h *Helper3D) DrawModel(model rl.Model, body *physics.RigidBody) {
	h.DrawModelScaled(model, body, rl.MatrixIdentity())
}

func (h *Helper3D) DrawModelScaled(model rl.Model, body *physics.RigidBody, scale rl.Matrix) {
	if model.MeshCount == 0 {
		return
	}

	saved := *h.Effect
	defer func() { *h.Effect = saved }()

	h.Effect.SetupLighting()
	world := rl.MatrixMultiply(rl.MatrixMultiply(model.Transform, scale), body.WorldMatrix())
	h.Effect.World = world
	shader, lit := h.Effect.shaderForModel()

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	meshMaterial := unsafe.Slice(model.MeshMaterial, model.MeshCount)

	rl.EnableBackfaceCulling()
	for i, mesh := range meshes {
		material := materials[meshMaterial[i]]
		if lit {
			material.Shader = shader
		}
		rl.DrawMesh(mesh, material, world)
	}
}

package terrain

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"unsafe"

	"duckengine/internal/engine"
	"duckengine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var Khaki = rl.NewColor(240, 230, 140, 255)

// Terrain is a heightmap drawn as a vertex-coloured mesh with a matching
// static collision body. Add it to a GameObject to tag the body.
type Terrain struct {
	engine.BaseComponent

	Width   int
	Depth   int
	Heights [][]float32
	Body    *physics.RigidBody

	owner    *engine.Engine
	vertices []Vertex
	indices  []uint16

	mesh      rl.Mesh
	positions []float32
	colors    []uint8
	uploaded  bool
}

// New builds the collision body and CPU mesh for heights, indexed [x][y],
// and adds the body to the owner's physics world.
func New(owner *engine.Engine, heights [][]float32) (*Terrain, error) {
	width := len(heights)
	depth := 0
	if width > 0 {
		depth = len(heights[0])
	}
	if err := CheckSize(width, depth); err != nil {
		return nil, err
	}
	for x, column := range heights {
		if len(column) != depth {
			return nil, fmt.Errorf("heightmap column %d has %d samples, want %d", x, len(column), depth)
		}
	}

	indices, err := BuildIndices(width, depth)
	if err != nil {
		return nil, err
	}

	body := physics.NewRigidBody(physics.NewTerrainShape(heights, 1, 1))
	body.IsStatic = true
	body.Position = rl.Vector3{X: float32(-width / 2), Y: 0, Z: float32(-depth / 2)}
	owner.Physics.AddBody(body)

	t := &Terrain{
		Width:    width,
		Depth:    depth,
		Heights:  heights,
		Body:     body,
		owner:    owner,
		vertices: BuildVertices(heights),
		indices:  indices,
	}
	log.Printf("Terrain: %dx%d samples, %d triangles", width, depth, len(indices)/3)
	return t, nil
}

// Load reads a heightmap image and builds a terrain from its red channel.
func Load(owner *engine.Engine, path string) (*Terrain, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load heightmap %s: file not found", path)
		}
		return nil, fmt.Errorf("load heightmap %s: %w", path, err)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Data == nil {
		return nil, fmt.Errorf("load heightmap %s: unreadable image", path)
	}
	defer rl.UnloadImage(img)

	width, height := int(img.Width), int(img.Height)
	if err := CheckSize(width, height); err != nil {
		return nil, fmt.Errorf("load heightmap %s: %w", path, err)
	}

	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	heights, err := HeightsFromColors(colors, width, height)
	if err != nil {
		return nil, fmt.Errorf("load heightmap %s: %w", path, err)
	}
	return New(owner, heights)
}

func (t *Terrain) SetGameObject(g *engine.GameObject) {
	t.BaseComponent.SetGameObject(g)
	t.Body.Tag = g
}

func (t *Terrain) Vertices() []Vertex {
	return t.vertices
}

func (t *Terrain) Indices() []uint16 {
	return t.indices
}

// HeightAt samples the surface at a world XZ position.
func (t *Terrain) HeightAt(x, z float32) (float32, bool) {
	shape := t.Body.Shape.(*physics.TerrainShape)
	h, ok := shape.HeightAt(x-t.Body.Position.X, z-t.Body.Position.Z)
	return h + t.Body.Position.Y, ok
}

func (t *Terrain) upload() {
	if t.uploaded {
		return
	}

	t.positions = make([]float32, 0, len(t.vertices)*3)
	t.colors = make([]uint8, 0, len(t.vertices)*4)
	for _, v := range t.vertices {
		t.positions = append(t.positions, v.Position.X, v.Position.Y, v.Position.Z)
		t.colors = append(t.colors, v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	}

	t.mesh = rl.Mesh{
		VertexCount:   int32(len(t.vertices)),
		TriangleCount: int32(len(t.indices) / 3),
	}
	t.mesh.Vertices = unsafe.SliceData(t.positions)
	t.mesh.Colors = unsafe.SliceData(t.colors)
	t.mesh.Indices = unsafe.SliceData(t.indices)

	rl.UploadMesh(&t.mesh, false)
	t.uploaded = true
}

// Draw3D draws unlit with vertex colours, offset by the body position.
func (t *Terrain) Draw3D() {
	t.upload()

	effect := t.owner.Helper3D.Effect
	effect.VertexColorEnabled = true
	effect.LightingEnabled = false
	effect.DiffuseColor = Khaki

	pos := t.Body.Position
	t.owner.Helper3D.DrawVertices(t.mesh, rl.MatrixTranslate(pos.X, pos.Y, pos.Z))

	effect.VertexColorEnabled = false
}

// Unload frees the GPU mesh. Safe to call more than once.
func (t *Terrain) Unload() {
	if !t.uploaded {
		return
	}
	rl.UnloadMesh(&t.mesh)
	t.mesh = rl.Mesh{}
	t.positions = nil
	t.colors = nil
	t.uploaded = false
}

func (t *Terrain) OnDestroy() {
	t.Unload()
	t.owner.ForgetBody(t.Body)
}

// Generated builds a terrain from a procedural heightmap.
func Generated(owner *engine.Engine, width, depth int, seed uint64) (*Terrain, error) {
	samples, err := Generate(width, depth, seed, nil)
	if err != nil {
		return nil, err
	}
	heights, err := HeightsFromColors(GreyColors(samples), width, depth)
	if err != nil {
		return nil, err
	}
	return New(owner, heights)
}

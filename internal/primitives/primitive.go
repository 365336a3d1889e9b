package primitives

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrIndexOutOfRange = errors.New("index out of 16-bit range")
	ErrTessellation    = errors.New("tessellation must be at least 3")
)

// Effect supplies the material and world transform a primitive is drawn with.
type Effect interface {
	Material() rl.Material
	Transform() rl.Matrix
}

type Vertex struct {
	Position rl.Vector3
	Normal   rl.Vector3
}

// Primitive is an indexed triangle list built on the CPU with AddVertex and
// AddIndex, then uploaded to the GPU once on first draw. Front faces wind
// counter-clockwise.
type Primitive struct {
	Name string

	vertices []Vertex
	indices  []uint16
	err      error

	mesh      rl.Mesh
	positions []float32 // backing arrays for mesh, kept alive while uploaded
	normals   []float32
	uploaded  bool
}

func newPrimitive(name string) *Primitive {
	return &Primitive{Name: name}
}

// AddVertex appends a vertex. Only valid before the primitive is uploaded.
func (p *Primitive) AddVertex(position, normal rl.Vector3) {
	p.vertices = append(p.vertices, Vertex{Position: position, Normal: normal})
}

// AddIndex appends an index into the vertex list.
func (p *Primitive) AddIndex(index int) error {
	if index < 0 || index > math.MaxUint16 {
		return fmt.Errorf("%s: index %d: %w", p.Name, index, ErrIndexOutOfRange)
	}
	p.indices = append(p.indices, uint16(index))
	return nil
}

// addTriangle appends three indices, keeping the first error.
func (p *Primitive) addTriangle(a, b, c int) {
	for _, i := range [3]int{a, b, c} {
		if err := p.AddIndex(i); err != nil && p.err == nil {
			p.err = err
		}
	}
}

// CurrentVertex is the index the next AddVertex call will occupy.
func (p *Primitive) CurrentVertex() int {
	return len(p.vertices)
}

func (p *Primitive) Vertices() []Vertex {
	return p.vertices
}

func (p *Primitive) Indices() []uint16 {
	return p.indices
}

func (p *Primitive) TriangleCount() int {
	return len(p.indices) / 3
}

// Upload copies the geometry into a GPU mesh. Later calls do nothing.
func (p *Primitive) Upload() {
	if p.uploaded {
		return
	}

	p.positions = make([]float32, 0, len(p.vertices)*3)
	p.normals = make([]float32, 0, len(p.vertices)*3)
	for _, v := range p.vertices {
		p.positions = append(p.positions, v.Position.X, v.Position.Y, v.Position.Z)
		p.normals = append(p.normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
	}

	p.mesh = rl.Mesh{
		VertexCount:   int32(len(p.vertices)),
		TriangleCount: int32(p.TriangleCount()),
	}
	p.mesh.Vertices = unsafe.SliceData(p.positions)
	p.mesh.Normals = unsafe.SliceData(p.normals)
	p.mesh.Indices = unsafe.SliceData(p.indices)

	rl.UploadMesh(&p.mesh, false)
	p.uploaded = true
}

// Mesh returns the uploaded mesh, uploading it first if needed.
func (p *Primitive) Mesh() rl.Mesh {
	p.Upload()
	return p.mesh
}

// DrawSolid draws filled triangles with back faces culled.
func (p *Primitive) DrawSolid(effect Effect) {
	mesh := p.Mesh()
	rl.EnableBackfaceCulling()
	rl.DrawMesh(mesh, effect.Material(), effect.Transform())
}

// DrawWireFrame draws the triangle edges with culling off.
func (p *Primitive) DrawWireFrame(effect Effect) {
	mesh := p.Mesh()
	rl.DisableBackfaceCulling()
	rl.EnableWireMode()
	rl.DrawMesh(mesh, effect.Material(), effect.Transform())
	rl.DisableWireMode()
	rl.EnableBackfaceCulling()
}

// Unload frees the GPU mesh. Safe to call more than once.
func (p *Primitive) Unload() {
	if !p.uploaded {
		return
	}
	rl.UnloadMesh(&p.mesh)
	p.mesh = rl.Mesh{}
	p.positions = nil
	p.normals = nil
	p.uploaded = false
}

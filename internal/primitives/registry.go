package primitives

import (
	"fmt"
	"log"
)

type Kind int

const (
	KindBox Kind = iota
	KindCapsule
	KindCone
	KindCylinder
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	case KindCone:
		return "cone"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	SphereTessellation   = 16
	CylinderTessellation = 32
	ConeTessellation     = 32
	CapsuleTessellation  = 6
)

type capsuleKey struct {
	diameter     float32
	length       float32
	tessellation int
}

// Registry owns one shared primitive per shape kind plus capsules built on
// demand for each distinct capsule geometry.
type Registry struct {
	shared   map[Kind]*Primitive
	capsules map[capsuleKey]*Primitive
}

func NewRegistry() (*Registry, error) {
	r := &Registry{
		shared:   make(map[Kind]*Primitive),
		capsules: make(map[capsuleKey]*Primitive),
	}

	r.shared[KindBox] = NewBox()

	builders := []struct {
		kind  Kind
		build func() (*Primitive, error)
	}{
		{KindSphere, func() (*Primitive, error) { return NewSphere(SphereTessellation) }},
		{KindCylinder, func() (*Primitive, error) { return NewCylinder(CylinderTessellation) }},
		{KindCone, func() (*Primitive, error) { return NewCone(ConeTessellation) }},
		{KindCapsule, func() (*Primitive, error) { return NewCapsule(1, 1, CapsuleTessellation) }},
	}
	for _, b := range builders {
		p, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s primitive: %w", b.kind, err)
		}
		r.shared[b.kind] = p
	}

	return r, nil
}

// Get returns the shared primitive for kind, or nil for an unknown kind.
func (r *Registry) Get(kind Kind) *Primitive {
	return r.shared[kind]
}

// CapsuleFor returns the capsule primitive for the given geometry, building
// it the first time it is requested.
func (r *Registry) CapsuleFor(diameter, length float32, tessellation int) (*Primitive, error) {
	key := capsuleKey{diameter: diameter, length: length, tessellation: tessellation}
	if p, ok := r.capsules[key]; ok {
		return p, nil
	}

	p, err := NewCapsule(diameter, length, tessellation)
	if err != nil {
		return nil, err
	}
	r.capsules[key] = p
	log.Printf("Primitives: built capsule d=%.2f l=%.2f (%d cached)", diameter, length, len(r.capsules))
	return p, nil
}

// CapsuleCount is the number of cached capsule geometries.
func (r *Registry) CapsuleCount() int {
	return len(r.capsules)
}

// Unload frees every GPU mesh the registry has uploaded.
func (r *Registry) Unload() {
	for _, p := range r.shared {
		p.Unload()
	}
	for _, p := range r.capsules {
		p.Unload()
	}
}

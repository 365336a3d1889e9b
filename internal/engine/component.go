package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Drawer3D is implemented by components that draw inside the 3D pass.
type Drawer3D interface {
	Draw3D()
}

// CollisionHandler is implemented by components that want to know when the
// body tagged with their GameObject starts touching another tagged body.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
}

// Destroyer is implemented by components that release resources when their
// GameObject is untracked.
type Destroyer interface {
	OnDestroy()
}

// mouseHandler mirrors the pointer callbacks the input package dispatches to
// body tags.
type mouseHandler interface {
	OnMouseOver()
	OnMouseOut()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

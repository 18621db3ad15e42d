package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent is embedded by every component for the no-op lifecycle and
// the owner pointer. The owner is nil until AddComponent runs, so Update
// implementations check GetGameObject before touching the transform.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

// GetGameObject returns the owner, or nil for a detached or nil component.
func (b *BaseComponent) GetGameObject() *GameObject {
	if b == nil {
		return nil
	}
	return b.gameObject
}

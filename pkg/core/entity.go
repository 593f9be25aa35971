package core

import "alife/pkg/resource"

// Entity is anything that can be placed into an Environment. Each entity
// exclusively owns the resources in its container. Environments track
// entities by identity, so implementations must be pointer types.
type Entity interface {
	// Kind is the type tag reported in environment snapshots.
	Kind() string
	Resources() *resource.Container
	Interact(env Environment) error
}

// Organism is a living Entity. Liveness is derived from resource levels on
// every call.
type Organism interface {
	Entity
	Alive() bool
	Act(env Environment) error
	Reproduce() (Organism, bool)
}

// Body is an embeddable Entity implementation holding a kind tag and a
// resource container. Its Interact hook does nothing.
type Body struct {
	kind      string
	resources resource.Container
}

// NewBody returns a Body reporting the given kind.
func NewBody(kind string) Body {
	return Body{kind: kind}
}

// Kind returns the type tag.
func (b *Body) Kind() string { return b.kind }

// Resources exposes the owned resources.
func (b *Body) Resources() *resource.Container { return &b.resources }

// AddResource registers r under name.
func (b *Body) AddResource(name string, r resource.Resource) {
	b.resources.Add(name, r)
}

// Interact is a no-op hook.
func (b *Body) Interact(Environment) error { return nil }

// Alive reports whether every owned resource is above zero.
func (b *Body) Alive() bool { return Alive(b) }

// Alive reports whether every resource owned by e has a level strictly
// greater than zero. An entity without resources is alive.
func Alive(e Entity) bool {
	res := e.Resources()
	if res == nil {
		return true
	}
	alive := true
	res.Each(func(_ string, r resource.Resource) {
		if r.Level() <= 0 {
			alive = false
		}
	})
	return alive
}

// RegenerateAll calls Regenerate on every resource of e that supports it.
func RegenerateAll(e Entity) error {
	res := e.Resources()
	if res == nil {
		return nil
	}
	var firstErr error
	res.Each(func(_ string, r resource.Resource) {
		if g, ok := r.(resource.Regenerator); ok {
			if err := g.Regenerate(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}

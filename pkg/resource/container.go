package resource

import "sort"

// Container maps unique names to resources.
type Container struct {
	items map[string]Resource
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{items: map[string]Resource{}}
}

// Add stores r under name, replacing any resource already registered there.
func (c *Container) Add(name string, r Resource) {
	if r == nil {
		return
	}
	if c.items == nil {
		c.items = map[string]Resource{}
	}
	c.items[name] = r
}

// Get returns the resource stored under name. The boolean is false when the
// name is absent.
func (c *Container) Get(name string) (Resource, bool) {
	r, ok := c.items[name]
	return r, ok
}

// Has reports whether name is registered.
func (c *Container) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Names lists the registered names in sorted order.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of resources held.
func (c *Container) Len() int { return len(c.items) }

// Each calls fn for every resource in name order.
func (c *Container) Each(fn func(name string, r Resource)) {
	for _, name := range c.Names() {
		fn(name, c.items[name])
	}
}

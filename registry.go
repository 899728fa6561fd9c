package fontload

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Registry receives loaded faces. It is the loader's only write interface.
// Add may be called from several goroutines at once.
type Registry interface {
	Add(ctx context.Context, f *Face) error
}

// RegistryFunc adapts a function to Registry.
type RegistryFunc func(ctx context.Context, f *Face) error

// Add calls fn(ctx, f).
func (fn RegistryFunc) Add(ctx context.Context, f *Face) error {
	return fn(ctx, f)
}

// faceKey identifies a registered face. Family matching is case-insensitive,
// like CSS font-family matching.
type faceKey struct {
	family string
	weight Weight
	style  string
}

func keyOf(family string, w Weight, style string) faceKey {
	return faceKey{family: strings.ToLower(family), weight: w, style: style}
}

// Collection is an in-memory Registry.
// Adding a face with the same family, weight and style replaces the previous one.
// Collection is safe for concurrent use.
type Collection struct {
	mu    sync.RWMutex
	faces map[faceKey]*Face
	order []faceKey
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{faces: make(map[faceKey]*Face)}
}

// Add implements Registry.
func (c *Collection) Add(_ context.Context, f *Face) error {
	if f == nil || f.Descriptor == nil {
		return ErrNilFace
	}
	k := keyOf(f.Family, f.Weight, f.Style)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.faces[k]; !ok {
		c.order = append(c.order, k)
	}
	c.faces[k] = f
	return nil
}

// Lookup returns the face registered for family at weight w in the normal style.
func (c *Collection) Lookup(family string, w Weight) (*Face, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.faces[keyOf(family, w, StyleNormal)]
	return f, ok
}

// Faces returns the registered faces in registration order.
func (c *Collection) Faces() []*Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Face, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.faces[k])
	}
	return out
}

// Families returns the sorted, de-duplicated family names.
func (c *Collection) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool, len(c.order))
	var out []string
	for _, k := range c.order {
		name := c.faces[k].Family
		if seen[k.family] {
			continue
		}
		seen[k.family] = true
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registered faces.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.faces)
}

// Compile-time interface checks.
var (
	_ Registry = (*Collection)(nil)
	_ Registry = RegistryFunc(nil)
)

package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vk/defpeek/internal/ctxlog"
)

// ErrUnknownCollection is returned by Get for a name nothing was registered under.
var ErrUnknownCollection = errors.New("unknown collection")

// Loader computes a collection. It must have no side effects beyond reads.
type Loader func(ctx context.Context) (any, error)

type cell struct {
	loader Loader

	mu       sync.RWMutex
	computed bool
	value    any
}

func (c *cell) load() (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.computed
}

func (c *cell) store(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.computed = true
}

// Registry holds one compute-once cell per collection name.
type Registry struct {
	mu    sync.RWMutex
	cells map[string]*cell
	group singleflight.Group
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{cells: make(map[string]*cell)}
}

// Register binds name to loader. Registering a name twice or a nil loader is a
// programming error and panics.
func (r *Registry) Register(name string, loader Loader) {
	if loader == nil {
		panic(fmt.Sprintf("collection '%s' registered with a nil loader", name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cells[name]; exists {
		panic(fmt.Sprintf("collection with name '%s' already registered", name))
	}
	r.cells[name] = &cell{loader: loader}
}

func (r *Registry) cell(name string) (*cell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// Get returns the collection registered under name, computing it on first use.
func (r *Registry) Get(ctx context.Context, name string) (any, error) {
	c, err := r.cell(name)
	if err != nil {
		return nil, err
	}
	if v, ok := c.load(); ok {
		return v, nil
	}

	v, err, _ := r.group.Do(name, func() (any, error) {
		// A caller that raced past the first check may arrive after the
		// value was stored.
		if v, ok := c.load(); ok {
			return v, nil
		}

		logger := ctxlog.FromContext(ctx)
		logger.Debug("Computing collection.", "collection", name)
		start := time.Now()

		v, err := c.loader(ctx)
		if err != nil {
			logger.Debug("Collection load failed.", "collection", name, "error", err)
			return nil, err
		}
		c.store(v)
		logger.Debug("Collection computed.", "collection", name, "elapsed", time.Since(start))
		return v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", name, err)
	}
	return v, nil
}

// Lookup is Get with the result asserted to T.
func Lookup[T any](ctx context.Context, r *Registry, name string) (T, error) {
	var zero T
	v, err := r.Get(ctx, name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("collection %q holds %T, not %T", name, v, zero)
	}
	return t, nil
}

// Computed reports whether name has already been loaded.
func (r *Registry) Computed(name string) bool {
	c, err := r.cell(name)
	if err != nil {
		return false
	}
	_, ok := c.load()
	return ok
}

// Names lists the registered collection names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cells))
	for name := range r.cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

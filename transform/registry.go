package transform

import (
	"sort"
	"sync"
)

// customEntry pairs a registered custom transform with its display
// description.
type customEntry struct {
	tr   Transform
	desc string
}

// Registry resolves transforms by name and stores pipeline presets.
// All methods are safe for concurrent use. Custom entries shadow
// built-in kind names during lookup, and registering a name that is
// already present silently replaces the prior entry.
type Registry struct {
	mu        sync.Mutex
	custom    map[string]customEntry
	pipelines map[string]Pipeline
}

// NewRegistry creates a registry pre-populated with the named
// convenience transforms (square, sqrt, reciprocal, exp, sin, cos).
func NewRegistry() *Registry {
	r := &Registry{
		custom:    make(map[string]customEntry),
		pipelines: make(map[string]Pipeline),
	}
	r.registerDefaults()
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns a lazily-initialized process-wide registry for
// callers that do not need their own instance.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register stores a scalar custom transform under name, replacing any
// existing entry with the same name.
func (r *Registry) Register(name string, fn ScalarFunc, desc string) {
	tr := NewScalar(name, fn)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[name] = customEntry{tr: tr, desc: desc}
}

// RegisterXY stores a whole-series custom transform under name,
// replacing any existing entry with the same name.
func (r *Registry) RegisterXY(name string, fn XYFunc, desc string) {
	tr := NewXY(name, fn)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[name] = customEntry{tr: tr, desc: desc}
}

// Get resolves a transform by name, checking custom entries before
// built-in kind names. The returned transform is an independent copy;
// adjusting its parameters does not affect the registry. The second
// result reports whether the name was found.
func (r *Registry) Get(name string) (Transform, bool) {
	r.mu.Lock()
	entry, ok := r.custom[name]
	r.mu.Unlock()
	if ok {
		return entry.tr, true
	}

	kind, ok := ParseKind(name)
	if !ok {
		return Transform{}, false
	}
	return New(kind), true
}

// Describe returns the human-readable description for name: the
// registered description for custom entries, or the transform's own
// description for built-in kind names.
func (r *Registry) Describe(name string) (string, bool) {
	r.mu.Lock()
	entry, ok := r.custom[name]
	r.mu.Unlock()
	if ok {
		return entry.desc, true
	}

	kind, ok := ParseKind(name)
	if !ok {
		return "", false
	}
	tr := New(kind)
	return tr.Description(), true
}

// Available lists every resolvable transform name: the built-in kinds
// in declaration order followed by the custom names. The custom
// portion is in map iteration order, so callers wanting a stable
// listing should sort it themselves.
func (r *Registry) Available() []string {
	kinds := Kinds()

	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(kinds)+len(r.custom))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	for name := range r.custom {
		names = append(names, name)
	}
	return names
}

// SavePipeline stores a snapshot of the pipeline under name, replacing
// any existing preset. Later changes to the pipeline do not affect the
// stored copy. A nil pipeline is ignored.
func (r *Registry) SavePipeline(name string, p *Pipeline) {
	if p == nil {
		return
	}
	snapshot := p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelines[name] = *snapshot
}

// LoadPipeline returns an independent copy of the stored preset. The
// second result reports whether a preset with that name exists.
func (r *Registry) LoadPipeline(name string) (*Pipeline, bool) {
	r.mu.Lock()
	stored, ok := r.pipelines[name]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// RemovePipeline deletes the preset and reports whether it existed.
func (r *Registry) RemovePipeline(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pipelines[name]
	if ok {
		delete(r.pipelines, name)
	}
	return ok
}

// SavedPipelines returns the stored preset names in sorted order.
func (r *Registry) SavedPipelines() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

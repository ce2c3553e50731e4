package odm

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/dmitrymomot/mongotypes/pkg/logger"
)

// Registry maps model names to models. It is append-only: models are never
// removed or replaced once registered.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Model
	byType map[reflect.Type]*Model
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report registrations. Nil is ignored.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry that logs nowhere unless WithLogger is given.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName: make(map[string]*Model),
		byType: make(map[reflect.Type]*Model),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a top-level model whose documents have the concrete type of prototype.
func (r *Registry) Register(name string, prototype Document) (*Model, error) {
	return r.register(name, prototype, nil)
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, prototype Document) *Model {
	m, err := r.Register(name, prototype)
	if err != nil {
		panic(err)
	}
	return m
}

// Discriminator registers a child model of parent.
func (r *Registry) Discriminator(parent *Model, name string, prototype Document) (*Model, error) {
	if parent == nil {
		return nil, fmt.Errorf("discriminator %q: %w", name, ErrModelNotFound)
	}
	return r.register(name, prototype, parent)
}

func (r *Registry) register(name string, prototype Document, parent *Model) (*Model, error) {
	if name == "" {
		return nil, ErrEmptyModelName
	}
	if isNil(prototype) {
		return nil, fmt.Errorf("model %q: %w", name, ErrNilDocument)
	}
	typ := concreteType(prototype)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("model %q: %w", name, ErrDuplicateModel)
	}
	if existing, ok := r.byType[typ]; ok {
		return nil, fmt.Errorf("type %s already bound to model %q: %w", typ, existing.name, ErrDuplicateModel)
	}

	m := newModel(name, typ, parent)
	r.byName[name] = m
	r.byType[typ] = m
	if parent != nil {
		parent.addChild(m)
	}

	attrs := []any{logger.Model(name), slog.String("type", typ.String())}
	if parent != nil {
		attrs = append(attrs, slog.String("parent", parent.name))
	}
	r.logger.Debug("model registered", attrs...)

	return m, nil
}

// Lookup returns the model registered under name.
func (r *Registry) Lookup(name string) (*Model, error) {
	r.mu.RLock()
	m, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("model %q: %w", name, ErrModelNotFound)
	}
	return m, nil
}

// ModelFor returns the registered model for the concrete type of doc.
func (r *Registry) ModelFor(doc Document) (*Model, error) {
	if isNil(doc) {
		return nil, ErrNilDocument
	}
	typ := concreteType(doc)
	r.mu.RLock()
	m, ok := r.byType[typ]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("type %s: %w", typ, ErrModelNotFound)
	}
	return m, nil
}

// Names returns registered model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

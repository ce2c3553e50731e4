package odm

import (
	"reflect"
	"sync"
)

// Model is a class handle for a mapped document type. Models registered as
// discriminators of another model form a hierarchy: a document of a child
// model is also a document of every ancestor.
type Model struct {
	name   string
	typ    reflect.Type
	parent *Model

	mu       sync.RWMutex
	children []*Model
}

func newModel(name string, typ reflect.Type, parent *Model) *Model {
	return &Model{name: name, typ: typ, parent: parent}
}

// ModelOf returns an unregistered model describing the concrete type of doc.
// It has no discriminators, so it matches documents of exactly that type.
func ModelOf(doc Document) *Model {
	if isNil(doc) {
		return nil
	}
	t := concreteType(doc)
	return newModel(t.Name(), t, nil)
}

// Name returns the registered name, or the Go type name for detached models.
func (m *Model) Name() string { return m.name }

// Type returns the Go struct type behind the model, never a pointer type.
func (m *Model) Type() reflect.Type { return m.typ }

// Parent returns the model this one discriminates, or nil for top-level models.
func (m *Model) Parent() *Model { return m.parent }

func (m *Model) String() string { return m.name }

// Discriminators returns a snapshot of the direct child models.
func (m *Model) Discriminators() []*Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Model, len(m.children))
	copy(out, m.children)
	return out
}

// Has reports whether doc is an instance of the model or of one of its
// discriminators.
func (m *Model) Has(doc Document) bool {
	if m == nil || isNil(doc) {
		return false
	}
	return m.hasType(concreteType(doc))
}

func (m *Model) hasType(t reflect.Type) bool {
	if m.typ == t {
		return true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, child := range m.children {
		if child.hasType(t) {
			return true
		}
	}
	return false
}

// IsA reports whether m is other or descends from it.
func (m *Model) IsA(other *Model) bool {
	for cur := m; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

func (m *Model) addChild(child *Model) {
	m.mu.Lock()
	m.children = append(m.children, child)
	m.mu.Unlock()
}

func concreteType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsNil reports whether v is nil or a typed nil pointer.
func IsNil(v any) bool { return isNil(v) }

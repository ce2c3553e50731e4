package mongotypes

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// ModelLookup resolves model names. *odm.Registry satisfies it.
type ModelLookup interface {
	Lookup(name string) (*odm.Model, error)
}

// TypeLookup is implemented by lookups that also map a document to its
// registered model. *odm.Registry satisfies it. Resolve uses it for document
// references so that the resolved model carries its discriminators.
type TypeLookup interface {
	ModelFor(doc odm.Document) (*odm.Model, error)
}

// RefKind tags the variant held by a ModelRef.
type RefKind uint8

const (
	RefName RefKind = iota + 1
	RefDocument
	RefModel
)

func (k RefKind) String() string {
	switch k {
	case RefName:
		return "name"
	case RefDocument:
		return "document"
	case RefModel:
		return "model"
	default:
		return "invalid"
	}
}

// ModelRef points at a model by name, by an instance of it, or directly.
type ModelRef struct {
	kind  RefKind
	name  string
	doc   odm.Document
	model *odm.Model
}

// ByName references a registered model by name.
func ByName(name string) ModelRef { return ModelRef{kind: RefName, name: name} }

// ByDocument references the model of doc's concrete type.
func ByDocument(doc odm.Document) ModelRef { return ModelRef{kind: RefDocument, doc: doc} }

// ByModel references m directly.
func ByModel(m *odm.Model) ModelRef { return ModelRef{kind: RefModel, model: m} }

// Kind reports which variant r holds. The zero ModelRef has no valid kind.
func (r ModelRef) Kind() RefKind { return r.kind }

func (r ModelRef) String() string {
	switch r.kind {
	case RefName:
		return r.name
	case RefDocument:
		if odm.IsNil(r.doc) {
			return "<nil document>"
		}
		return reflect.TypeOf(r.doc).String()
	case RefModel:
		if r.model == nil {
			return "<nil model>"
		}
		return r.model.Name()
	}
	return "<invalid>"
}

// RefOf wraps v into a ModelRef. Accepted shapes are a model name, a
// document, a *odm.Model and an existing ModelRef.
func RefOf(v any) (ModelRef, error) {
	switch x := v.(type) {
	case ModelRef:
		if x.kind == 0 {
			return ModelRef{}, ErrInvalidModelRef
		}
		return x, nil
	case string:
		return ByName(x), nil
	case *odm.Model:
		if x == nil {
			return ModelRef{}, fmt.Errorf("nil model: %w", ErrInvalidModelRef)
		}
		return ByModel(x), nil
	}
	if Classify(v) == KindDocument {
		return ByDocument(v.(odm.Document)), nil
	}
	return ModelRef{}, fmt.Errorf("%T: %w", v, ErrInvalidModelRef)
}

// Resolve turns a reference into a model. Names are looked up through lookup.
// Documents resolve to their registered model when lookup is a TypeLookup that
// knows the type, and to a detached model of their concrete type otherwise.
// Models resolve to themselves.
func Resolve(lookup ModelLookup, ref ModelRef) (*odm.Model, error) {
	switch ref.kind {
	case RefName:
		if lookup == nil {
			return nil, fmt.Errorf("model %q: no lookup configured: %w", ref.name, ErrModelResolution)
		}
		m, err := lookup.Lookup(ref.name)
		if err != nil {
			return nil, errors.Join(ErrModelResolution, err)
		}
		if m == nil {
			return nil, fmt.Errorf("model %q: %w", ref.name, ErrModelResolution)
		}
		return m, nil
	case RefDocument:
		if odm.IsNil(ref.doc) {
			return nil, fmt.Errorf("nil document: %w", ErrInvalidModelRef)
		}
		if tl, ok := lookup.(TypeLookup); ok {
			m, err := tl.ModelFor(ref.doc)
			switch {
			case err == nil && m != nil:
				return m, nil
			case err != nil && !errors.Is(err, odm.ErrModelNotFound):
				return nil, errors.Join(ErrModelResolution, err)
			}
		}
		return odm.ModelOf(ref.doc), nil
	case RefModel:
		if ref.model == nil {
			return nil, fmt.Errorf("nil model: %w", ErrInvalidModelRef)
		}
		return ref.model, nil
	}
	return nil, ErrInvalidModelRef
}

// ResolveAll normalizes refs like Targets does and resolves every element.
// The first failure is returned.
func ResolveAll(lookup ModelLookup, refs any) ([]*odm.Model, error) {
	list := modelRefs(refs)
	if len(list) == 0 {
		return nil, ErrNoModelRefs
	}
	models := make([]*odm.Model, 0, len(list))
	for _, v := range list {
		ref, err := RefOf(v)
		if err != nil {
			return nil, err
		}
		m, err := Resolve(lookup, ref)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// modelRefs expands a reference set. ModelRef and *odm.Model are values of
// their own, so they are wrapped before Targets inspects them.
func modelRefs(refs any) []any {
	switch x := refs.(type) {
	case nil:
		return nil
	case ModelRef, *odm.Model:
		return []any{x}
	default:
		return Targets(refs)
	}
}

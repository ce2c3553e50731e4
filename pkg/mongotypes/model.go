package mongotypes

import (
	"slices"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// CheckModel reports ErrNotDocument when subject is not a document and
// ErrModelMismatch when it belongs to none of models.
func CheckModel(subject any, models []*odm.Model) error {
	if Classify(subject) != KindDocument {
		return ErrNotDocument
	}
	doc := subject.(odm.Document)
	for _, m := range models {
		if m.Has(doc) {
			return nil
		}
	}
	return ErrModelMismatch
}

// MatchesModel reports whether subject is a document of any of models.
func MatchesModel(subject any, models []*odm.Model) bool {
	return CheckModel(subject, models) == nil
}

// ModelMatcher holds a model set resolved once at configuration time.
type ModelMatcher struct {
	models []*odm.Model
}

// NewModelMatcher resolves refs eagerly. Unknown names and unsupported
// reference shapes are returned as errors here rather than at check time.
func NewModelMatcher(lookup ModelLookup, refs any) (*ModelMatcher, error) {
	models, err := ResolveAll(lookup, refs)
	if err != nil {
		return nil, err
	}
	return &ModelMatcher{models: models}, nil
}

// MustModelMatcher is like NewModelMatcher but panics on error.
func MustModelMatcher(lookup ModelLookup, refs any) *ModelMatcher {
	m, err := NewModelMatcher(lookup, refs)
	if err != nil {
		panic(err)
	}
	return m
}

// Check is CheckModel against the matcher's models.
func (m *ModelMatcher) Check(subject any) error {
	return CheckModel(subject, m.models)
}

// Match reports whether Check returns nil.
func (m *ModelMatcher) Match(subject any) bool {
	return m.Check(subject) == nil
}

// Models returns the resolved models in reference order.
func (m *ModelMatcher) Models() []*odm.Model {
	return slices.Clone(m.models)
}

// Names returns the names of the resolved models.
func (m *ModelMatcher) Names() []string {
	names := make([]string, len(m.models))
	for i, model := range m.models {
		names[i] = model.Name()
	}
	return names
}

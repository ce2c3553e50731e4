package mongotypes

import (
	"reflect"
	"slices"
)

// Targets normalizes a comparison target set. A recognized value or any
// non-sequence becomes a one-element slice; slices and arrays are expanded.
// bson.ObjectID is itself an array, so recognized values are never expanded.
func Targets(v any) []any {
	if v == nil {
		return nil
	}
	if Classify(v) != KindUnknown {
		return []any{v}
	}
	if list, ok := v.([]any); ok {
		return list
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return []any{v}
	}
}

// CompareID checks whether subject carries the same identifier as at least
// one of targets. It returns ErrNoIdentifier when the subject has no
// identifier and ErrIdentifierMismatch when nothing matches.
func CompareID(subject, targets any) error {
	id, ok := ExtractID(subject)
	if !ok {
		return ErrNoIdentifier
	}
	for _, t := range Targets(targets) {
		if tid, ok := ExtractID(t); ok && tid == id {
			return nil
		}
	}
	return ErrIdentifierMismatch
}

// SameID reports whether subject matches any of targets.
// An identifier-less subject never matches.
func SameID(subject, targets any) bool {
	return CompareID(subject, targets) == nil
}

// IDSet is a precomputed set of target identifiers for rules whose targets
// are fixed at configuration time. Targets without an identifier, or with an
// empty one, are dropped.
type IDSet struct {
	ids []string
}

// NewIDSet extracts the identifiers of targets once.
func NewIDSet(targets any) *IDSet {
	list := Targets(targets)
	ids := make([]string, 0, len(list))
	for _, t := range list {
		if id, ok := ExtractID(t); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return &IDSet{ids: ids}
}

// IDs returns a copy of the extracted target identifiers in input order.
func (s *IDSet) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of usable targets.
func (s *IDSet) Len() int { return len(s.ids) }

// Contains has the same semantics as CompareID against the configured targets.
func (s *IDSet) Contains(subject any) error {
	id, ok := ExtractID(subject)
	if !ok {
		return ErrNoIdentifier
	}
	if slices.Contains(s.ids, id) {
		return nil
	}
	return ErrIdentifierMismatch
}

package odm

import "go.mongodb.org/mongo-driver/v2/bson"

// Document is implemented by every mapped record. Both accessors are
// optional in the sense that they may report nothing.
type Document interface {
	// RawID returns the value stored in the document's _id field, whatever its type.
	RawID() any
	// IDString returns the precomputed string form of the identifier, if any.
	IDString() (string, bool)
}

// Base is meant to be embedded into model structs. It stores the _id field and
// exposes it through the Document accessors.
//
//	type Person struct {
//		odm.Base `bson:",inline"`
//		Name string `bson:"name"`
//	}
type Base struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
}

// NewBase returns a Base with a freshly generated identifier.
func NewBase() Base {
	return Base{ID: bson.NewObjectID()}
}

// RawID returns nil for an unset identifier so it is not mistaken for a real one.
func (b Base) RawID() any {
	if b.ID.IsZero() {
		return nil
	}
	return b.ID
}

// IDString returns the hex form of the ID, or false while it is unset.
func (b Base) IDString() (string, bool) {
	if b.ID.IsZero() {
		return "", false
	}
	return b.ID.Hex(), true
}

package odm

import (
	"github.com/invopop/jsonschema"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ObjectID is the ODM's own identifier type. It shares the binary layout of
// the driver's bson.ObjectID and converts to it without copying.
type ObjectID bson.ObjectID

// NilObjectID is the zero value of ObjectID.
var NilObjectID ObjectID

// NewObjectID generates a new ObjectID.
func NewObjectID() ObjectID {
	return ObjectID(bson.NewObjectID())
}

// ObjectIDFromHex parses a 24 character hex string.
func ObjectIDFromHex(s string) (ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return NilObjectID, err
	}
	return ObjectID(id), nil
}

// Hex returns the canonical lowercase hex encoding.
func (id ObjectID) Hex() string {
	return bson.ObjectID(id).Hex()
}

func (id ObjectID) String() string {
	return id.Hex()
}

// IsZero reports whether the id is unset.
func (id ObjectID) IsZero() bool {
	return bson.ObjectID(id).IsZero()
}

// BSON returns the driver representation.
func (id ObjectID) BSON() bson.ObjectID {
	return bson.ObjectID(id)
}

// JSONSchema describes an ObjectID as its hex string form.
func (ObjectID) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     "^[0-9a-fA-F]{24}$",
		MinLength:   ptr(uint64(24)),
		MaxLength:   ptr(uint64(24)),
		Title:       "ObjectID",
		Description: "MongoDB ObjectID in 24 character hex form",
	}
}

func ptr[T any](v T) *T { return &v }

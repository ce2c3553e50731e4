package mongotypes

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// Kind is the recognized shape of a value.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindString
	KindObjectID
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindObjectID:
		return "objectid"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Classify reports the shape of v. It never panics; nil values and typed nil
// pointers are KindUnknown.
func Classify(v any) Kind {
	switch x := v.(type) {
	case string:
		return KindString
	case bson.ObjectID, odm.ObjectID:
		return KindObjectID
	case *bson.ObjectID:
		if x != nil {
			return KindObjectID
		}
		return KindUnknown
	case *odm.ObjectID:
		if x != nil {
			return KindObjectID
		}
		return KindUnknown
	case odm.Document:
		if odm.IsNil(x) {
			return KindUnknown
		}
		return KindDocument
	default:
		return KindUnknown
	}
}

// objectIDHex converts a value already classified as KindObjectID.
func objectIDHex(v any) string {
	switch x := v.(type) {
	case bson.ObjectID:
		return x.Hex()
	case *bson.ObjectID:
		return x.Hex()
	case odm.ObjectID:
		return x.Hex()
	case *odm.ObjectID:
		return x.Hex()
	}
	return ""
}

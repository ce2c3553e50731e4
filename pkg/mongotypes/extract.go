package mongotypes

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

// ExtractID returns the canonical identifier carried by v.
//
// Strings are returned unchanged. ObjectIDs are converted to hex. Documents
// yield their _id when it is an ObjectID, falling back to the precomputed
// string id; the _id field wins when both are present.
func ExtractID(v any) (string, bool) {
	switch Classify(v) {
	case KindString:
		return v.(string), true
	case KindObjectID:
		return objectIDHex(v), true
	case KindDocument:
		doc := v.(odm.Document)
		if raw := doc.RawID(); Classify(raw) == KindObjectID {
			return objectIDHex(raw), true
		}
		if s, ok := doc.IDString(); ok {
			return s, true
		}
		return "", false
	case KindUnknown:
		return "", false
	}
	return "", false
}

// IsObjectIDHex reports whether s is a 24 character hex string. Both letter
// cases are accepted, matching what the driver parses.
func IsObjectIDHex(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}

// ObjectIDOf extracts the identifier of a rule subject and checks its form.
// Unset ObjectIDs and values without an identifier yield ErrNoIdentifier;
// identifiers not in hex form yield ErrInvalidObjectID. Equality rules call
// it before comparing so that two unset or malformed values never match.
func ObjectIDOf(v any) (string, error) {
	if isZeroObjectID(v) {
		return "", ErrNoIdentifier
	}
	id, ok := ExtractID(v)
	if !ok {
		return "", ErrNoIdentifier
	}
	if !IsObjectIDHex(id) {
		return "", ErrInvalidObjectID
	}
	return id, nil
}

func isZeroObjectID(v any) bool {
	switch x := v.(type) {
	case bson.ObjectID:
		return x.IsZero()
	case *bson.ObjectID:
		return x != nil && x.IsZero()
	case odm.ObjectID:
		return x.IsZero()
	case *odm.ObjectID:
		return x != nil && x.IsZero()
	}
	return false
}

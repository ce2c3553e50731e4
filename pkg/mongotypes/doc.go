// Package mongotypes decides what "the same identifier" and "a document of
// this model" mean when values arrive in different representations.
//
// An identifier may be a raw hex string, a driver bson.ObjectID, the ODM's
// odm.ObjectID, or a document carrying one of those in its _id field.
// Classify tags a value with its Kind, ExtractID converts any recognized value
// to the canonical 24 character hex string, and CompareID / SameID compare a
// subject with one or more targets.
//
// Model checks work on *odm.Model class handles. References may be given as a
// model name, as a document (meaning its own type) or as a model; ResolveAll
// resolves them once and ModelMatcher keeps the result for repeated checks.
//
// # Usage
//
//	if mongotypes.SameID(req.OwnerID, []any{user, admin.ID}) {
//		// owner is the user or the admin
//	}
//
//	people, err := mongotypes.NewModelMatcher(registry, []string{"person", "robot"})
//	if err != nil {
//		// configuration fault: unknown model name
//	}
//	ok := people.Match(doc)
//
// # Error Handling
//
// Per-value checks return ErrNoIdentifier, ErrIdentifierMismatch,
// ErrNotDocument or ErrModelMismatch. Setup returns ErrModelResolution,
// ErrInvalidModelRef or ErrNoModelRefs. All are sentinels for errors.Is.
//
// Everything in the package is stateless or immutable after construction and
// safe for concurrent use.
package mongotypes

// Package validator provides declarative validation rules for MongoDB
// identifiers and mapped documents.
//
// Every exported rule function constructs a Rule: a boolean Check function
// together with translation-friendly error metadata. Rules are evaluated with
// Apply, which aggregates failures into a ValidationErrors slice that
// satisfies the error interface.
//
// # Rules
//
//   - ValidObjectID  – value carries an identifier in 24 character hex form
//   - SameObjectID   – value has the same identifier as one of the targets
//   - SameObjectIDIn – same, against a mongotypes.IDSet prepared in advance
//   - DocumentOf     – value is a document of one of the models of a matcher
//
// Values may be raw hex strings, bson.ObjectID, odm.ObjectID or documents;
// see package mongotypes for how each representation is interpreted.
//
// # Usage
//
//	people := mongotypes.MustModelMatcher(registry, "person")
//
//	err := validator.Apply(
//	    validator.ValidObjectID("owner_id", req.OwnerID),
//	    validator.SameObjectID("owner_id", req.OwnerID, []any{user, team.OwnerID}),
//	    validator.DocumentOf("author", req.Author, people),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    verrs = validator.Translate(verrs, "pt")
//	}
//
// # Messages
//
// Messages are keyed by translation key in an embedded YAML table with one
// section per language (en and pt). Translate renders them, substituting
// %{name} placeholders from TranslationValues. Every rule stores the raw
// validated value under "value" for diagnostics.
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err,
// ErrValidationFailed) detects validation problems while errors.As exposes
// the details.
package validator

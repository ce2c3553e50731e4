// Package extension teaches github.com/go-playground/validator/v10 about
// MongoDB identifiers and mapped documents.
//
// New registers a coercion hook and three tags on a validator instance:
//
//   - objectid           – the field carries an identifier in 24 character hex form
//   - objectid_eqfield=F – the field has the same identifier as field F, which
//     may hold any accepted representation or a slice of them
//   - document=a b       – the field is a document of model a or b; without a
//     param any document passes
//
// The coercion hook converts bson.ObjectID and odm.ObjectID fields to their
// hex form before any tag runs, so built-in string tags (required, len, ...)
// apply to them as well. Zero identifiers become the empty string.
//
// Tag names come from Config and may be loaded from the environment with
// LoadConfig (MONGOTYPES_OBJECTID_TAG, MONGOTYPES_DOCUMENT_TAG).
//
// # Usage
//
//	validate := validator.New()
//	ext, err := extension.New(validate, registry,
//	    extension.WithLogger(log),
//	    extension.WithRecorder(metrics.New(prometheus.DefaultRegisterer)),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := ext.RegisterModel("vehicle", []string{"car", "truck"}); err != nil {
//	    return err // unknown model name
//	}
//
//	type Trip struct {
//	    DriverID bson.ObjectID `validate:"required,objectid"`
//	    Car      *Car          `validate:"vehicle"`
//	}
//	if err := validate.Struct(trip); err != nil {
//	    verrs := ext.ToValidationErrors(err)
//	    // verrs carries the same translation keys as package validator
//	}
//
// # Configuration faults
//
// Model names passed to RegisterModel are resolved immediately and errors are
// returned. Names in a document tag param can only be resolved when the tag
// first runs; an unknown name there panics, as go-playground does for
// malformed params of its own tags.
package extension

// Package mongotypes is the root of a toolkit for validating MongoDB
// identifiers and documents in Go.
//
// The toolkit checks that a value carries a valid ObjectID, that two values
// refer to the same document, and that a value is a document of a given
// model. Values may be hex strings, driver ObjectIDs or documents.
//
// Key Features:
//
//   - Explicit representation kinds instead of duck typing
//   - Model references resolved once, when rules are configured
//   - Discriminator-aware model matching
//   - Rules with translation keys and message tables
//   - go-playground/validator tags for struct validation
//
// Packages:
//
//   - pkg/odm: document contract, model registry and ObjectID type
//   - pkg/mongotypes: classification, extraction, comparison and model resolution
//   - pkg/validator: Rule constructors and translated messages
//   - pkg/extension: validator tags objectid, objectid_eqfield and document
//   - pkg/config, pkg/logger, pkg/metrics: configuration, logging and counters
//
// Basic Usage:
//
//	reg := odm.NewRegistry()
//	reg.MustRegister("person", Person{})
//
//	v := playground.New()
//	ext, err := extension.New(v, reg)
//	if err != nil {
//		// handle error
//	}
//
//	type Input struct {
//		OwnerID string `validate:"objectid"`
//		Owner   Person `validate:"document=person"`
//	}
//
//	if err := v.Struct(in); err != nil {
//		errs := ext.ToValidationErrors(err)
//		// errs carry translation keys and rendered messages
//	}
//
// The cmd/mongotypes binary exposes classify, check and same for shell use.
package mongotypes

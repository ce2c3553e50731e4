// Package odm holds the small slice of an object-document mapping layer that
// identifier and model validation needs: a Document capability contract, an
// embeddable Base with an ObjectID primary key, the ODM's own ObjectID type,
// and a Registry of named models.
//
// The package performs no I/O. Models are class handles over Go struct types;
// discriminator models form a hierarchy so that a document of a child model
// also counts as a document of its parent.
//
// # Usage
//
//	type Person struct {
//		odm.Base `bson:",inline"`
//		Name     string `bson:"name"`
//	}
//
//	reg := odm.NewRegistry(odm.WithLogger(log))
//	person := reg.MustRegister("person", Person{})
//
//	m, err := reg.Lookup("person")
//	if errors.Is(err, odm.ErrModelNotFound) {
//		// unknown model name
//	}
//	_ = person.Has(&Person{Base: odm.NewBase()}) // true
//
// # Concurrency
//
// Registry and Model are safe for concurrent use. Registration is append-only.
package odm

package mongotypes_test

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

const scenarioHex = "507f1f77bcf86cd799439011"

type Person struct {
	odm.Base `bson:",inline"`
	Name     string
	Father   *bson.ObjectID
}

type Car struct {
	odm.Base `bson:",inline"`
	Model    string
}

// Employee is registered as a discriminator of person.
type Employee struct {
	odm.Base `bson:",inline"`
	Company  string
}

// slugDoc uses a string primary key and exposes it only through IDString.
type slugDoc struct {
	Slug string
}

func (d slugDoc) RawID() any               { return d.Slug }
func (d slugDoc) IDString() (string, bool) { return d.Slug, d.Slug != "" }

// idlessDoc carries no identifier at all.
type idlessDoc struct{}

func (idlessDoc) RawID() any               { return nil }
func (idlessDoc) IDString() (string, bool) { return "", false }

// splitDoc reports different values through its two accessors.
type splitDoc struct {
	id  bson.ObjectID
	str string
}

func (d splitDoc) RawID() any               { return d.id }
func (d splitDoc) IDString() (string, bool) { return d.str, true }

func mustOID(hex string) bson.ObjectID {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func newRegistry() (*odm.Registry, *odm.Model, *odm.Model, *odm.Model) {
	reg := odm.NewRegistry()
	person := reg.MustRegister("person", Person{})
	car := reg.MustRegister("car", Car{})
	employee, err := reg.Discriminator(person, "employee", Employee{})
	if err != nil {
		panic(err)
	}
	return reg, person, car, employee
}

package odm_test

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongotypes/pkg/odm"
)

func TestObjectID(t *testing.T) {
	t.Parallel()

	t.Run("hex round trip", func(t *testing.T) {
		id, err := odm.ObjectIDFromHex("507f1f77bcf86cd799439011")
		require.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
		assert.Equal(t, "507f1f77bcf86cd799439011", id.String())
		assert.False(t, id.IsZero())
		assert.Equal(t, id.Hex(), id.BSON().Hex())
	})

	t.Run("invalid hex", func(t *testing.T) {
		id, err := odm.ObjectIDFromHex("nope")
		assert.Error(t, err)
		assert.True(t, id.IsZero())
	})

	t.Run("shares the driver layout", func(t *testing.T) {
		driver := bson.NewObjectID()
		assert.Equal(t, driver.Hex(), odm.ObjectID(driver).Hex())
		assert.NotEqual(t, odm.NewObjectID(), odm.NewObjectID())
		assert.True(t, odm.NilObjectID.IsZero())
	})
}

func TestObjectIDJSONSchema(t *testing.T) {
	t.Parallel()

	type ref struct {
		Owner odm.ObjectID `json:"owner"`
	}

	r := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	schema := r.Reflect(&ref{})
	raw, err := json.Marshal(schema)
	require.NoError(t, err)

	var doc struct {
		Properties map[string]struct {
			Type      string `json:"type"`
			Pattern   string `json:"pattern"`
			MinLength int    `json:"minLength"`
			MaxLength int    `json:"maxLength"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	owner, ok := doc.Properties["owner"]
	require.True(t, ok)
	assert.Equal(t, "string", owner.Type)
	assert.Equal(t, "^[0-9a-fA-F]{24}$", owner.Pattern)
	assert.Equal(t, 24, owner.MinLength)
	assert.Equal(t, 24, owner.MaxLength)
}

func TestBase(t *testing.T) {
	t.Parallel()

	var empty odm.Base
	assert.Nil(t, empty.RawID())
	_, ok := empty.IDString()
	assert.False(t, ok)

	b := odm.NewBase()
	assert.Equal(t, b.ID, b.RawID())
	s, ok := b.IDString()
	assert.True(t, ok)
	assert.Equal(t, b.ID.Hex(), s)
}

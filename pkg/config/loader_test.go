package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongotypes/pkg/config"
)

type tagConfig struct {
	Name   string   `env:"TEST_TAG_NAME" envDefault:"objectid"`
	Count  int      `env:"TEST_TAG_COUNT" envDefault:"1"`
	List   []string `env:"TEST_TAG_LIST" envSeparator:","`
	Quoted string   `env:"TEST_QUOTED"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

func unsetAll() {
	for _, k := range []string{"TEST_TAG_NAME", "TEST_TAG_COUNT", "TEST_TAG_LIST", "TEST_QUOTED", "TEST_REQUIRED_VALUE"} {
		os.Unsetenv(k)
	}
	config.ResetCache()
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetAll()
		var cfg tagConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "objectid", cfg.Name)
		assert.Equal(t, 1, cfg.Count)
	})

	t.Run("environment values", func(t *testing.T) {
		unsetAll()
		t.Setenv("TEST_TAG_NAME", "oid")
		t.Setenv("TEST_TAG_LIST", "a,b")

		var cfg tagConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "oid", cfg.Name)
		assert.Equal(t, []string{"a", "b"}, cfg.List)
	})

	t.Run("cached per type", func(t *testing.T) {
		unsetAll()
		t.Setenv("TEST_TAG_NAME", "first")
		var first tagConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_TAG_NAME", "second")
		var second tagConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		require.NoError(t, config.ForceReload(&second))
		assert.Equal(t, "second", second.Name)
	})

	t.Run("missing required value", func(t *testing.T) {
		unsetAll()
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[tagConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.ForceReload[tagConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		unsetAll()
		t.Cleanup(unsetAll)
		require.NoError(t, config.LoadEnv("testdata/.env.custom"))

		var cfg tagConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "oid", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, []string{"person", "car"}, cfg.List)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("later files win", func(t *testing.T) {
		unsetAll()
		t.Cleanup(unsetAll)
		require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

		var cfg tagConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})
}

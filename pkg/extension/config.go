package extension

import (
	"fmt"

	"github.com/dmitrymomot/mongotypes/pkg/config"
)

// Config names the validation tags the extension registers. The names are
// cosmetic; they do not change how values are validated.
type Config struct {
	ObjectIDTag string `env:"MONGOTYPES_OBJECTID_TAG" envDefault:"objectid"`
	DocumentTag string `env:"MONGOTYPES_DOCUMENT_TAG" envDefault:"document"`
}

// DefaultConfig returns the objectid and document tag names.
func DefaultConfig() Config {
	return Config{
		ObjectIDTag: "objectid",
		DocumentTag: "document",
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SameFieldTag is the cross-field identifier tag, e.g. "objectid_eqfield".
func (c Config) SameFieldTag() string {
	return c.ObjectIDTag + "_eqfield"
}

func (c Config) validate() error {
	if c.ObjectIDTag == "" || c.DocumentTag == "" {
		return fmt.Errorf("tag names must not be empty: %w", ErrInvalidConfig)
	}
	if c.ObjectIDTag == c.DocumentTag || c.SameFieldTag() == c.DocumentTag {
		return fmt.Errorf("tag names %q and %q collide: %w", c.ObjectIDTag, c.DocumentTag, ErrInvalidConfig)
	}
	return nil
}

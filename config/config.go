package config

import (
	"io"
	"os"

	"github.com/zeebo/errs"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/8SOAT-Team/use-case-lib/usecase"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("config")

// Config collects all configuration options.
type Config struct {
	Logger   Logger             `yaml:"logger"`
	Renderer Renderer           `yaml:"renderer"`
	Defaults UseCase            `yaml:"defaults"`
	UseCases map[string]UseCase `yaml:"useCases"`
}

// UseCase is the configuration of a single use case.
type UseCase struct {
	ThrowOnFailure bool `yaml:"throwOnFailure"`
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if c.Renderer.Config != nil {
		if err := c.Renderer.Config.Validate(); err != nil {
			return err
		}
	}

	for name := range c.UseCases {
		if name == "" {
			return Error.New("use cases: name is required")
		}
	}

	return nil
}

// Settings returns the settings of the named use case.
// Use cases missing from the configuration get the defaults.
func (c Config) Settings(name string) usecase.Settings {
	uc, ok := c.UseCases[name]
	if !ok {
		uc = c.Defaults
	}

	return usecase.Settings{
		ThrowOnFailure: uc.ThrowOnFailure,
	}
}

// UseCaseNames returns the names of the configured use cases.
func (c Config) UseCaseNames() []string {
	return maps.Keys(c.UseCases)
}

// Load reads and validates a YAML configuration.
func Load(r io.Reader) (Config, error) {
	var c Config

	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && err != io.EOF {
		return Config{}, Error.Wrap(err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile reads and validates a YAML configuration file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}
	defer f.Close()

	return Load(f)
}

// rawConfig is a general struct to be used by other config structs to unmarshal yaml config first.
type rawConfig struct {
	Type   string                 `yaml:"type"`
	Config map[string]interface{} `yaml:"config"`
}

package config

import (
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/8SOAT-Team/use-case-lib/pkg/render"
)

var (
	rendererFactoriesMu sync.RWMutex
	rendererFactories   = make(map[string]RendererFactory)
)

// RegisterRendererFactory makes a RendererFactory available by the provided name in configuration.
//
// If RegisterRendererFactory is called twice with the same name or if factory is nil,
// it panics.
func RegisterRendererFactory(name string, factory RendererFactory) {
	rendererFactoriesMu.Lock()
	defer rendererFactoriesMu.Unlock()

	if factory == nil {
		panic("registering renderer factory: factory is nil")
	}

	if _, dup := rendererFactories[name]; dup {
		panic("registering renderer factory: registration called twice for factory " + name)
	}

	rendererFactories[name] = factory
}

func init() {
	RegisterRendererFactory("json", &jsonRenderer{})
	RegisterRendererFactory("yaml", &yamlRenderer{})
}

// Renderer is the configuration for the render.Renderer used in log payloads.
type Renderer struct {
	Type   string
	Config RendererFactory
}

func (c *Renderer) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	rendererFactoriesMu.RLock()
	factory, ok := rendererFactories[rawConfig.Type]
	rendererFactoriesMu.RUnlock()

	if !ok {
		return Error.New("unknown renderer type: %s", rawConfig.Type)
	}

	factory = factory.New()

	err = decode(rawConfig.Config, factory)
	if err != nil {
		return Error.New("renderer: %s: %v", rawConfig.Type, err)
	}

	c.Type = rawConfig.Type
	c.Config = factory

	return nil
}

// CreateRenderer creates the configured renderer. It defaults to indented JSON.
func (c Renderer) CreateRenderer() (render.Renderer, error) {
	if c.Config == nil {
		return render.JSON{}, nil
	}

	return c.Config.CreateRenderer()
}

// RendererFactory creates a new render.Renderer.
//
// New must return a pointer so that the configuration can be decoded into it.
type RendererFactory interface {
	New() RendererFactory
	CreateRenderer() (render.Renderer, error)
	Validate() error
}

type jsonRenderer struct {
	Indent  string `mapstructure:"indent"`
	Compact bool   `mapstructure:"compact"`
}

func (c *jsonRenderer) New() RendererFactory {
	return &jsonRenderer{}
}

func (c *jsonRenderer) CreateRenderer() (render.Renderer, error) {
	return render.JSON{
		Indent:  c.Indent,
		Compact: c.Compact,
	}, nil
}

func (c *jsonRenderer) Validate() error {
	if c.Compact && c.Indent != "" {
		return Error.New("renderer: json: indent and compact are mutually exclusive")
	}

	return nil
}

type yamlRenderer struct{}

func (c *yamlRenderer) New() RendererFactory {
	return &yamlRenderer{}
}

func (c *yamlRenderer) CreateRenderer() (render.Renderer, error) {
	return render.YAML{}, nil
}

func (c *yamlRenderer) Validate() error {
	return nil
}

package usecase

import (
	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
)

// Settings are the per-use-case knobs that can come from configuration.
type Settings struct {
	// ThrowOnFailure makes Run propagate unexpected failures after recording them.
	ThrowOnFailure bool
}

// IDGenerator generates execution IDs.
type IDGenerator interface {
	GenerateID() (string, error)
}

type uuidGenerator struct{}

func (uuidGenerator) GenerateID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// Option configures a UseCase.
type Option interface {
	apply(s *settings)
}

type settings struct {
	Settings

	logger      Logger
	renderer    Renderer
	clock       clockwork.Clock
	idGenerator IDGenerator
}

type optionFunc func(s *settings)

func (fn optionFunc) apply(s *settings) {
	fn(s)
}

// WithLogger sets the logger a use case writes its execution timeline to.
func WithLogger(logger Logger) Option {
	return optionFunc(func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithRenderer sets the renderer used for command and result log payloads.
func WithRenderer(renderer Renderer) Option {
	return optionFunc(func(s *settings) {
		if renderer != nil {
			s.renderer = renderer
		}
	})
}

// WithThrowOnFailure makes Run propagate unexpected failures to the caller.
// Business errors are never propagated.
func WithThrowOnFailure(throw bool) Option {
	return optionFunc(func(s *settings) {
		s.ThrowOnFailure = throw
	})
}

// WithSettings applies settings, usually loaded from configuration.
func WithSettings(st Settings) Option {
	return optionFunc(func(s *settings) {
		s.Settings = st
	})
}

// WithClock sets the clock used to measure execution time.
func WithClock(clock clockwork.Clock) Option {
	return optionFunc(func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	})
}

// WithIDGenerator sets the generator of execution IDs.
func WithIDGenerator(g IDGenerator) Option {
	return optionFunc(func(s *settings) {
		if g != nil {
			s.idGenerator = g
		}
	})
}

func newSettings(opts []Option) settings {
	s := settings{}

	for _, opt := range opts {
		if opt != nil {
			opt.apply(&s)
		}
	}

	if s.logger == nil {
		s.logger = defaultLogger()
	}

	if s.renderer == nil {
		s.renderer = defaultRenderer()
	}

	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}

	if s.idGenerator == nil {
		s.idGenerator = uuidGenerator{}
	}

	return s
}

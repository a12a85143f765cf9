package forms

import (
	"time"

	"github.com/dmitrymomot/formlab/pkg/ratelimiter"
)

// Config is loaded from the environment with pkg/config.
type Config struct {
	// MockLatency is how long the echo step of an accepted submission waits,
	// standing in for a round trip to a real user service.
	MockLatency time.Duration `env:"FORMS_MOCK_LATENCY" envDefault:"300ms"`

	// MaxBodySize caps JSON submissions to the API.
	MaxBodySize int64 `env:"FORMS_MAX_BODY_SIZE" envDefault:"65536"`

	// RateLimit throttles submissions per client address on every surface.
	// A zero Capacity turns throttling off.
	RateLimit ratelimiter.Config `envPrefix:"FORMS_RATE_"`
}

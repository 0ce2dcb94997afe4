package stdhttp

import "github.com/plumeframe/plume/pkg/clientip"

// DefaultMaxBodyBytes caps buffered request bodies at 1MB.
const DefaultMaxBodyBytes = 1 << 20

// Config holds transport configuration with environment variable support.
type Config struct {
	// TrustProxy selects the client IP trust policy: "none", "all", a hop
	// count, or a comma-separated CIDR list.
	TrustProxy string `env:"HTTP_TRUST_PROXY" envDefault:"none"`

	// MaxBodyBytes limits how much request body is buffered before decoding.
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
}

// Option configures the binding.
type Option func(*binding)

// WithTrustPolicy sets the client IP resolution policy.
func WithTrustPolicy(p clientip.Policy) Option {
	return func(b *binding) {
		b.trust = p
	}
}

// WithMaxBodyBytes overrides the buffered body limit.
func WithMaxBodyBytes(n int64) Option {
	return func(b *binding) {
		if n > 0 {
			b.maxBodyBytes = n
		}
	}
}

package axpy

import "github.com/xyproto/env/v2"

const (
	defaultMaxDepth = 64
	defaultMaxTerms = 512
)

// config carries parse budgets and Bind behavior.
type config struct {
	maxDepth      int
	maxTerms      int
	strictLengths bool
}

// Option configures Compile.
type Option func(*config)

// defaultConfig reads budget overrides from the environment
// (AXPY_MAX_DEPTH, AXPY_MAX_TERMS); explicit options take precedence.
func defaultConfig() config {
	return config{
		maxDepth: env.Int("AXPY_MAX_DEPTH", defaultMaxDepth),
		maxTerms: env.Int("AXPY_MAX_TERMS", defaultMaxTerms),
	}
}

// WithMaxDepth bounds expression nesting (parentheses and unary minus
// chains).
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithMaxTerms bounds the total node count of the parsed expression.
func WithMaxTerms(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTerms = n
		}
	}
}

// WithStrictLengths makes Bind fail with ErrLengthMismatch unless every
// referenced sequence, destination included, has the same length. The
// default is the zip policy: a pass covers the common prefix and leaves
// the excess elements of longer operands untouched.
func WithStrictLengths() Option {
	return func(c *config) {
		c.strictLengths = true
	}
}

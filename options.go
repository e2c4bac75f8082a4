package fieldkit

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/otissv/fieldkit/pkg/field"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	registry    *field.Registry
	maxPageSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRegistry sets the field kind registry used for validation.
// Defaults to the built-in thirteen kinds.
func WithRegistry(r *field.Registry) Option {
	return optionFunc(func(c *clientConfig) {
		c.registry = r
	})
}

// WithMaxPageSize caps the page size accepted when listing documents.
// Default: 100.
func WithMaxPageSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxPageSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

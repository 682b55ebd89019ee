package eventio

import (
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-eventio/internal/binary"
	"github.com/robert-malhotra/go-eventio/internal/filter"
)

// Option configures how a stream is opened.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	registry   *Registry
	bufferSize int
	filters    []filter.Filter
}

func defaultOptions() *options {
	return &options{
		logger:     zap.NewNop(),
		registry:   DefaultRegistry(),
		bufferSize: binary.DefaultBufferSize,
		filters:    filter.Registry,
	}
}

// WithLogger sets the logger used for debug records. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry sets the registry used to turn headers into objects.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithBufferSize sets the read-ahead buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithoutDecompression disables gzip/zstd detection; the transport is read raw.
func WithoutDecompression() Option {
	return func(o *options) {
		o.filters = nil
	}
}

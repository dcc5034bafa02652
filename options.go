package balltree

import (
	"github.com/hupe1980/balltree/codec"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	codec       codec.Codec
	compression CompressionType
}

func defaultOptions() options {
	return options{
		logger:      NewNoopLogger(),
		metrics:     NoopMetricsCollector{},
		codec:       codec.Default,
		compression: CompressionZSTD,
	}
}

// Option configures tree construction and snapshot behavior.
type Option func(*options)

// WithLogger sets the structured logger. If nil is passed, the no-op
// logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewNoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, the no-op
// collector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used. Snapshots record the codec
// name in their header, so LoadSnapshot selects the right codec
// regardless of this option.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied to snapshot
// payloads. The default is CompressionZSTD.
func WithCompression(ct CompressionType) Option {
	return func(o *options) {
		o.compression = ct
	}
}

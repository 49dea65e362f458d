package vox

import "go.uber.org/zap"

type readConfig struct {
	limits      Limits
	compression Compression
	logger      *zap.Logger
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithCompression selects how the byte source is unwrapped before the .vox
// header is read. The default, CompAuto, detects zstd, LZ4 and gzip by their
// frame magic and reads anything else as a plain .vox stream. Brotli has no
// magic and must be requested with CompBR.
func WithCompression(comp Compression) ReadOption {
	return func(c *readConfig) { c.compression = comp }
}

// WithLogger sets the logger used for this decode. It defaults to Logger().
func WithLogger(l *zap.Logger) ReadOption {
	return func(c *readConfig) { c.logger = l }
}

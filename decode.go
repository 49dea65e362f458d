package vox

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Decode reads a .vox document from r.
//
// The decoding process:
//  1. Unwraps a compressed source (see [WithCompression])
//  2. Checks the "VOX " magic and version 150
//  3. Reads the whole chunk tree below the root chunk
//  4. Builds models, palette, scene graph, layers and materials from the
//     root's children in file order
//
// Decode returns ErrMagicMismatch if the source is not a .vox file,
// ErrUnsupportedVersion for any version other than 150, ErrTruncated if the
// source ends early, ErrChunkSizeMismatch if a chunk's children do not add up
// to its declared size, and ErrLimitExceeded if any [Limits] bound is hit.
// Errors from the entity decoders (ErrUnpairedSize, ErrPaletteSize,
// ErrReservedField, ErrDuplicateNode, ErrStringLength, ErrInvalidModelSize)
// abort the decode; no partial document is returned.
func Decode(r io.Reader, opts ...ReadOption) (*Document, error) {
	cfg := readConfig{limits: defaultLimits(), compression: CompAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	if cfg.logger == nil {
		cfg.logger = Logger()
	}

	src, comp, release, err := openSource(r, cfg.compression, cfg.limits.MaxDecompressedLen)
	if err != nil {
		return nil, err
	}
	defer release()
	if comp != CompNone {
		cfg.logger.Debug("reading compressed source", zap.Stringer("compression", comp))
	}

	h, err := readFileHeader(src)
	if err != nil {
		return nil, err
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: %q", ErrMagicMismatch, h.Magic[:])
	}
	if h.Version != Version150 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	cr := &chunkReader{r: src, limits: cfg.limits, offset: fileHeaderSize}
	root, _, err := cr.read(noBudget, 0)
	if err != nil {
		return nil, err
	}
	if root.tag != TagMain {
		cfg.logger.Debug("root chunk is not MAIN", zap.Stringer("tag", root.tag))
	}
	return build(root, cfg)
}

package vox

import "errors"

var (
	ErrMagicMismatch      = errors.New("vox: invalid magic")
	ErrUnsupportedVersion = errors.New("vox: unsupported version")
	ErrTruncated          = errors.New("vox: unexpected end of data")
	ErrChunkSizeMismatch  = errors.New("vox: chunk children size mismatch")
	ErrUnpairedSize       = errors.New("vox: SIZE chunk not followed by XYZI")
	ErrInvalidModelSize   = errors.New("vox: invalid model size")
	ErrPaletteSize        = errors.New("vox: palette size mismatch")
	ErrReservedField      = errors.New("vox: reserved field violation")
	ErrDuplicateNode      = errors.New("vox: duplicate scene node id")
	ErrStringLength       = errors.New("vox: string length out of bounds")
	ErrUnknownViewport    = errors.New("vox: unknown viewport")
	ErrModelIndex         = errors.New("vox: model index out of range")
	ErrLimitExceeded      = errors.New("vox: limit exceeded")
	ErrCompression        = errors.New("vox: invalid compressed stream")
)

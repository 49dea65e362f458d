package vox

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the wrapping applied to a .vox byte source.
type Compression uint16

const (
	CompAuto Compression = 0x0
	CompNone Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
	CompGZIP Compression = 0x5
)

func (c Compression) String() string {
	switch c {
	case CompAuto:
		return "auto"
	case CompNone:
		return "none"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	case CompGZIP:
		return "gzip"
	}
	return fmt.Sprintf("Compression(%d)", uint16(c))
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	gzipMagic = []byte{0x1F, 0x8B}
)

// Function variables for testing injection.
var (
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	newGzipReader = func(r io.Reader) (*gzip.Reader, error) { return gzip.NewReader(r) }
)

// sniffCompression inspects the first bytes of the source without consuming them.
func sniffCompression(br *bufio.Reader) Compression {
	head, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompZSTD
	case bytes.HasPrefix(head, lz4Magic):
		return CompLZ4
	case bytes.HasPrefix(head, gzipMagic):
		return CompGZIP
	}
	return CompNone
}

// openSource unwraps r according to comp. The returned release func must be
// called once decoding is done.
func openSource(r io.Reader, comp Compression, maxLen int64) (io.Reader, Compression, func(), error) {
	br := bufio.NewReader(r)
	if comp == CompAuto {
		comp = sniffCompression(br)
	}
	var (
		src     io.Reader
		release = func() {}
	)
	switch comp {
	case CompNone:
		return br, comp, release, nil
	case CompZSTD:
		dec, err := newZstdReader(br)
		if err != nil {
			return nil, comp, nil, fmt.Errorf("%w: zstd: %v", ErrCompression, err)
		}
		src, release = dec, dec.Close
	case CompLZ4:
		src = lz4.NewReader(br)
	case CompGZIP:
		zr, err := newGzipReader(br)
		if err != nil {
			return nil, comp, nil, fmt.Errorf("%w: gzip: %v", ErrCompression, err)
		}
		src, release = zr, func() { _ = zr.Close() }
	case CompBR:
		src = brotli.NewReader(br)
	default:
		return nil, comp, nil, fmt.Errorf("%w: unknown compression %d", ErrCompression, comp)
	}
	return &cappedReader{r: src, comp: comp, max: maxLen, left: maxLen}, comp, release, nil
}

// cappedReader stops a decompressed stream at max bytes and tags decoder
// failures with ErrCompression.
type cappedReader struct {
	r    io.Reader
	comp Compression
	max  int64
	left int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.left <= 0 {
		var probe [1]byte
		n, err := c.r.Read(probe[:])
		if n > 0 {
			return 0, fmt.Errorf("%w: decompressed %s source exceeds %d bytes", ErrLimitExceeded, c.comp, c.max)
		}
		return 0, c.wrap(err)
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	return n, c.wrap(err)
}

func (c *cappedReader) wrap(err error) error {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrCompression, c.comp, err)
}

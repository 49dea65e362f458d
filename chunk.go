package vox

import (
	"fmt"
	"io"
)

// chunk is one record of the .vox chunk tree. Chunks only live while a
// Document is being built.
type chunk struct {
	tag      Tag
	content  []byte
	children []chunk
}

// chunkReader decodes chunk records from a stream, tracking the absolute
// stream offset for error messages.
type chunkReader struct {
	r      io.Reader
	limits Limits
	offset int64
}

// noBudget marks a chunk that is not nested inside a parent's children region.
const noBudget = -1

// read decodes one chunk and its descendants. budget is the number of bytes
// left in the parent's children region, or noBudget for the root. It returns
// the chunk and the number of bytes it occupied.
func (cr *chunkReader) read(budget int64, depth int) (chunk, int64, error) {
	if depth > cr.limits.MaxChunkDepth {
		return chunk{}, 0, fmt.Errorf("%w: chunk nesting deeper than %d at offset %d", ErrLimitExceeded, cr.limits.MaxChunkDepth, cr.offset)
	}
	if budget != noBudget && budget < chunkHeaderSize {
		return chunk{}, 0, fmt.Errorf("%w: %d bytes left in children region at offset %d, too few for a chunk header", ErrChunkSizeMismatch, budget, cr.offset)
	}
	start := cr.offset
	h, err := readChunkHeader(cr.r, cr.offset)
	if err != nil {
		return chunk{}, 0, err
	}
	cr.offset += chunkHeaderSize
	if budget != noBudget && h.encodedLen() > budget {
		return chunk{}, 0, fmt.Errorf("%w: %s at offset %d occupies %d bytes, parent has %d left", ErrChunkSizeMismatch, h.Tag, start, h.encodedLen(), budget)
	}
	if h.ContentLen > cr.limits.MaxChunkContentLen {
		return chunk{}, 0, fmt.Errorf("%w: %s content length %d", ErrLimitExceeded, h.Tag, h.ContentLen)
	}

	c := chunk{tag: h.Tag, content: make([]byte, h.ContentLen)}
	if err := readFull(cr.r, c.content, h.Tag.String()+" content", cr.offset); err != nil {
		return chunk{}, 0, err
	}
	cr.offset += int64(h.ContentLen)

	childrenLen := int64(h.ChildrenLen)
	var consumed int64
	for consumed < childrenLen {
		child, n, err := cr.read(childrenLen-consumed, depth+1)
		if err != nil {
			return chunk{}, 0, err
		}
		consumed += n
		c.children = append(c.children, child)
	}
	if consumed != childrenLen {
		return chunk{}, 0, fmt.Errorf("%w: %s children occupy %d bytes, header declares %d", ErrChunkSizeMismatch, h.Tag, consumed, childrenLen)
	}
	return c, cr.offset - start, nil
}

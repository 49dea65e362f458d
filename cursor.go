package vox

import (
	"encoding/binary"
	"fmt"
)

// cursor reads little-endian primitives from a chunk's content buffer.
// Every read is bounds-checked against the buffer end.
type cursor struct {
	tag Tag
	buf []byte
	pos int
}

func newCursor(c chunk) *cursor {
	return &cursor{tag: c.tag, buf: c.content}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) truncated(need int) error {
	return fmt.Errorf("%w: %s content at offset %d needs %d bytes, %d left", ErrTruncated, c.tag, c.pos, need, c.remaining())
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, c.truncated(n)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}

// count reads a uint32 element count and rejects it when count elements of
// at least minSize bytes each cannot fit in the rest of the buffer.
func (c *cursor) count(minSize int) (int, error) {
	n, err := c.u32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minSize) > uint64(c.remaining()) {
		return 0, fmt.Errorf("%w: %s declares %d entries, only %d bytes left", ErrTruncated, c.tag, n, c.remaining())
	}
	return int(n), nil
}

// str reads a uint32 length followed by that many raw bytes.
func (c *cursor) str() (string, error) {
	n, err := c.u32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(c.remaining()) {
		return "", fmt.Errorf("%w: %s string of %d bytes at offset %d, %d left", ErrStringLength, c.tag, n, c.pos, c.remaining())
	}
	b, _ := c.bytes(int(n))
	return string(b), nil
}

// dictionary reads a uint32 pair count followed by that many key/value strings.
func (c *cursor) dictionary() (Dictionary, error) {
	n, err := c.count(8)
	if err != nil {
		return nil, err
	}
	d := make(Dictionary, 0, n)
	for i := 0; i < n; i++ {
		k, err := c.str()
		if err != nil {
			return nil, err
		}
		v, err := c.str()
		if err != nil {
			return nil, err
		}
		d = append(d, KeyValue{Key: k, Value: v})
	}
	return d, nil
}

package vox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const chunkHeaderSize = 12

type fileHeader struct {
	Magic   [4]byte
	Version uint32
}

type chunkHeader struct {
	Tag         Tag
	ContentLen  uint32
	ChildrenLen uint32
}

// readFull is io.ReadFull with end-of-stream reported as ErrTruncated.
func readFull(r io.Reader, buf []byte, what string, offset int64) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %s at offset %d", ErrTruncated, what, offset)
		}
		return fmt.Errorf("%s at offset %d: %w", what, offset, err)
	}
	return nil
}

func readFileHeader(r io.Reader) (fileHeader, error) {
	var buf [fileHeaderSize]byte
	if err := readFull(r, buf[:], "file header", 0); err != nil {
		return fileHeader{}, err
	}
	var h fileHeader
	copy(h.Magic[:], buf[0:4])
	h.Version = binary.LittleEndian.Uint32(buf[4:8])
	return h, nil
}

func readChunkHeader(r io.Reader, offset int64) (chunkHeader, error) {
	var buf [chunkHeaderSize]byte
	if err := readFull(r, buf[:], "chunk header", offset); err != nil {
		return chunkHeader{}, err
	}
	var h chunkHeader
	copy(h.Tag[:], buf[0:4])
	h.ContentLen = binary.LittleEndian.Uint32(buf[4:8])
	h.ChildrenLen = binary.LittleEndian.Uint32(buf[8:12])
	return h, nil
}

// encodedLen is the number of bytes the whole record occupies in the stream.
func (h chunkHeader) encodedLen() int64 {
	return chunkHeaderSize + int64(h.ContentLen) + int64(h.ChildrenLen)
}

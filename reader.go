package vox

import (
	"fmt"
	"io"
	"sync"
)

// Reader holds the most recently loaded document.
//
// Load decodes into a fresh Document and only replaces the held one when the
// decode succeeds, so a failed Load leaves the previous document in place.
type Reader struct {
	mu   sync.RWMutex
	doc  *Document
	opts []ReadOption
}

// NewReader returns a Reader with no document loaded. opts apply to every Load.
func NewReader(opts ...ReadOption) *Reader {
	return &Reader{opts: opts}
}

// Load decodes r and makes the result the current document.
func (rd *Reader) Load(r io.Reader, opts ...ReadOption) error {
	all := append(append([]ReadOption(nil), rd.opts...), opts...)
	doc, err := Decode(r, all...)
	if err != nil {
		return err
	}
	rd.mu.Lock()
	rd.doc = doc
	rd.mu.Unlock()
	return nil
}

// Document returns the current document, or nil before the first successful Load.
func (rd *Reader) Document() *Document {
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	return rd.doc
}

// View2D projects a model of the current document. See [Document.View2D].
func (rd *Reader) View2D(modelIndex int, viewport Viewport, flags ViewFlags) (*Grid, error) {
	doc := rd.Document()
	if doc == nil {
		return nil, fmt.Errorf("%w: no document loaded", ErrModelIndex)
	}
	return doc.View2D(modelIndex, viewport, flags)
}

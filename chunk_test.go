package vox

import (
	"bytes"
	"errors"
	"testing"
)

func readTree(t *testing.T, b []byte) (chunk, int64, error) {
	t.Helper()
	cr := &chunkReader{r: bytes.NewReader(b), limits: defaultLimits()}
	return cr.read(noBudget, 0)
}

func TestChunkReader_NestedTree(t *testing.T) {
	b := chunkBytes("ROOT", []byte{1, 2, 3},
		chunkBytes("AAAA", []byte{4}),
		chunkBytes("BBBB", nil,
			chunkBytes("CCCC", []byte{5, 6}),
			chunkBytes("DDDD", nil),
		),
		chunkBytes("EEEE", nil),
	)
	root, n, err := readTree(t, b)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(b)) {
		t.Fatalf("consumed %d bytes, want %d", n, len(b))
	}
	if root.tag.String() != "ROOT" || !bytes.Equal(root.content, []byte{1, 2, 3}) {
		t.Fatalf("root = %s %v", root.tag, root.content)
	}
	var tags []string
	for _, c := range root.children {
		tags = append(tags, c.tag.String())
	}
	if got := len(tags); got != 3 || tags[0] != "AAAA" || tags[1] != "BBBB" || tags[2] != "EEEE" {
		t.Fatalf("children = %v", tags)
	}
	inner := root.children[1].children
	if len(inner) != 2 || inner[0].tag.String() != "CCCC" || !bytes.Equal(inner[0].content, []byte{5, 6}) {
		t.Fatalf("grandchildren = %#v", inner)
	}
}

func TestChunkReader_ChildOverrunsParent(t *testing.T) {
	child := chunkBytes("KID_", []byte{1, 2, 3, 4})
	parent := chunkBytes("PRNT", nil, child)
	// Shrink the parent's children size so the child no longer fits.
	parent[8] = byte(len(child) - 1)
	parent = append(parent, 0)
	_, _, err := readTree(t, parent)
	if !errors.Is(err, ErrChunkSizeMismatch) {
		t.Fatalf("expected ErrChunkSizeMismatch, got %v", err)
	}
}

func TestChunkReader_Truncated(t *testing.T) {
	b := chunkBytes("ROOT", []byte{1, 2, 3, 4})
	_, _, err := readTree(t, b[:len(b)-2])
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestChunkReader_EmptyChildRegion(t *testing.T) {
	root, n, err := readTree(t, chunkBytes("LEAF", nil))
	if err != nil {
		t.Fatal(err)
	}
	if n != chunkHeaderSize || len(root.children) != 0 || len(root.content) != 0 {
		t.Fatalf("n=%d root=%#v", n, root)
	}
}

package vox

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReader_FailedLoadKeepsPreviousDocument(t *testing.T) {
	rd := NewReader()
	if rd.Document() != nil {
		t.Fatal("expected no document before Load")
	}
	if _, err := rd.View2D(0, ViewXY, 0); !errors.Is(err, ErrModelIndex) {
		t.Fatalf("expected ErrModelIndex without a document, got %v", err)
	}

	if err := rd.Load(bytes.NewReader(sampleFile())); err != nil {
		t.Fatal(err)
	}
	before := rd.Document()

	bad := sampleFile()
	copy(bad, "XOV ")
	if err := rd.Load(bytes.NewReader(bad)); !errors.Is(err, ErrMagicMismatch) {
		t.Fatalf("expected ErrMagicMismatch, got %v", err)
	}
	if rd.Document() != before {
		t.Fatal("failed load replaced the document")
	}

	// A failure deep inside the chunk tree must not leak a partial document either.
	if err := rd.Load(bytes.NewReader(voxBytes(sizeChunk(1, 1, 1), xyziChunk(), sizeChunk(1, 1, 1)))); !errors.Is(err, ErrUnpairedSize) {
		t.Fatalf("expected ErrUnpairedSize, got %v", err)
	}
	if rd.Document() != before || len(rd.Document().Models) != 2 {
		t.Fatal("failed load replaced the document")
	}

	if err := rd.Load(bytes.NewReader(voxBytes(sizeChunk(1, 1, 1), xyziChunk(Voxel{0, 0, 0, 8})))); err != nil {
		t.Fatal(err)
	}
	if len(rd.Document().Models) != 1 {
		t.Fatal("successful load did not replace the document")
	}
	g, err := rd.View2D(0, ViewXY, 0)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := g.At(0, 0); v.ColorIndex != 8 {
		t.Fatalf("At(0,0) = %v", v)
	}
}

func TestReader_ConcurrentViews(t *testing.T) {
	rd := NewReader()
	if err := rd.Load(bytes.NewReader(sampleFile())); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 24)
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := rd.View2D(i%2, Viewport(i%3), ViewFlags(i%8))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestReader_OptionsApplyToEveryLoad(t *testing.T) {
	rd := NewReader(WithReadLimits(Limits{MaxNodeID: 1}))
	if err := rd.Load(bytes.NewReader(sampleFile())); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if err := rd.Load(bytes.NewReader(sampleFile()), WithReadLimits(Limits{})); err != nil {
		t.Fatalf("per-call options should override: %v", err)
	}
}

func TestDecode_LogsSkippedChunks(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mustDecode(t, voxBytes(packChunk(3), chunkBytes("rOBJ", nil), sizeChunk(1, 1, 1), xyziChunk()), WithLogger(zap.New(core)))

	skipped := logs.FilterMessage("skipping chunk").All()
	if len(skipped) != 1 || skipped[0].ContextMap()["tag"] != "rOBJ" {
		t.Fatalf("skip logs = %v", skipped)
	}
	if logs.FilterMessage("PACK count differs from decoded models").Len() != 1 {
		t.Fatal("expected PACK mismatch log")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	mustDecode(t, voxBytes(chunkBytes("NOTE", nil)))
	if logs.Len() == 0 {
		t.Fatal("package logger was not used")
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) must leave a usable logger")
	}
}

package vox

// Limits bounds the resources a single decode may use. Zero fields fall back
// to the defaults.
type Limits struct {
	MaxChunkContentLen uint32 // content bytes of any single chunk
	MaxChunkDepth      int    // nesting below the root chunk
	MaxDecompressedLen int64  // bytes read from a compressed source
	MaxNodeID          uint32 // highest scene-graph node id
	MaxRegistryID      uint32 // highest layer or material id
	MaxVoxels          uint32 // voxels in a single XYZI chunk
}

func defaultLimits() Limits {
	return Limits{
		MaxChunkContentLen: 256 << 20, // 256 MiB
		MaxChunkDepth:      64,
		MaxDecompressedLen: 1 << 30, // 1 GiB
		MaxNodeID:          1 << 20,
		MaxRegistryID:      1 << 16,
		MaxVoxels:          256 * 256 * 256,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxChunkContentLen == 0 {
		l.MaxChunkContentLen = d.MaxChunkContentLen
	}
	if l.MaxChunkDepth == 0 {
		l.MaxChunkDepth = d.MaxChunkDepth
	}
	if l.MaxDecompressedLen == 0 {
		l.MaxDecompressedLen = d.MaxDecompressedLen
	}
	if l.MaxNodeID == 0 {
		l.MaxNodeID = d.MaxNodeID
	}
	if l.MaxRegistryID == 0 {
		l.MaxRegistryID = d.MaxRegistryID
	}
	if l.MaxVoxels == 0 {
		l.MaxVoxels = d.MaxVoxels
	}
	return l
}

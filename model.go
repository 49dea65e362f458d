package vox

import "fmt"

// buildModel decodes a SIZE chunk and the XYZI chunk that follows it.
//
// Voxels with color index 0 are empty by definition and are not stored.
// Coordinates are kept as found, even when they lie outside the size box.
func buildModel(size, xyzi chunk, limits Limits) (Model, error) {
	sc := newCursor(size)
	var dims [3]uint32
	for i := range dims {
		v, err := sc.u32()
		if err != nil {
			return Model{}, err
		}
		dims[i] = v
	}
	if dims[0] == 0 || dims[1] == 0 || dims[2] == 0 {
		return Model{}, fmt.Errorf("%w: %d x %d x %d", ErrInvalidModelSize, dims[0], dims[1], dims[2])
	}

	xc := newCursor(xyzi)
	n, err := xc.count(4)
	if err != nil {
		return Model{}, err
	}
	if uint64(n) > uint64(limits.MaxVoxels) {
		return Model{}, fmt.Errorf("%w: %d voxels in one model", ErrLimitExceeded, n)
	}
	m := Model{SizeX: dims[0], SizeY: dims[1], SizeZ: dims[2], Voxels: make([]Voxel, 0, n)}
	for i := 0; i < n; i++ {
		b, _ := xc.bytes(4)
		if b[3] == 0 {
			continue
		}
		m.Voxels = append(m.Voxels, Voxel{X: b[0], Y: b[1], Z: b[2], ColorIndex: b[3]})
	}
	return m, nil
}

// Contains reports whether v lies inside the model's bounding box.
func (m Model) Contains(v Voxel) bool {
	return uint32(v.X) < m.SizeX && uint32(v.Y) < m.SizeY && uint32(v.Z) < m.SizeZ
}

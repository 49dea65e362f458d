package vox

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func le32(vs ...uint32) []byte {
	b := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func cat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func chunkBytes(tag string, content []byte, children ...[]byte) []byte {
	kids := cat(children...)
	b := []byte(tag)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(content)))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(kids)))
	b = append(b, content...)
	return append(b, kids...)
}

// voxBytes assembles a complete file: header plus a MAIN chunk holding children.
func voxBytes(children ...[]byte) []byte {
	return cat([]byte("VOX "), le32(Version150), chunkBytes("MAIN", nil, children...))
}

func strBytes(s string) []byte {
	return append(le32(uint32(len(s))), s...)
}

func dictBytes(kv ...string) []byte {
	b := le32(uint32(len(kv) / 2))
	for _, s := range kv {
		b = append(b, strBytes(s)...)
	}
	return b
}

func packChunk(n uint32) []byte {
	return chunkBytes("PACK", le32(n))
}

func sizeChunk(x, y, z uint32) []byte {
	return chunkBytes("SIZE", le32(x, y, z))
}

func xyziChunk(vs ...Voxel) []byte {
	b := le32(uint32(len(vs)))
	for _, v := range vs {
		b = append(b, v.X, v.Y, v.Z, v.ColorIndex)
	}
	return chunkBytes("XYZI", b)
}

func rgbaChunk(p Palette) []byte {
	b := make([]byte, 0, 4*len(p))
	for _, c := range p {
		b = append(b, c.R(), c.G(), c.B(), c.A())
	}
	return chunkBytes("RGBA", b)
}

func trnChunk(id uint32, child, reserved, layer int32, frames ...[]byte) []byte {
	b := cat(le32(id), dictBytes(), le32(uint32(child), uint32(reserved), uint32(layer), uint32(len(frames))))
	return chunkBytes("nTRN", cat(b, cat(frames...)))
}

func grpChunk(id uint32, children ...uint32) []byte {
	return chunkBytes("nGRP", cat(le32(id), dictBytes(), le32(uint32(len(children))), le32(children...)))
}

func shpChunk(id uint32, models ...uint32) []byte {
	b := cat(le32(id), dictBytes(), le32(uint32(len(models))))
	for _, m := range models {
		b = cat(b, le32(m), dictBytes())
	}
	return chunkBytes("nSHP", b)
}

func layrChunk(id uint32, kv ...string) []byte {
	return chunkBytes("LAYR", cat(le32(id), dictBytes(kv...), le32(0xFFFFFFFF)))
}

func matlChunk(id uint32, kv ...string) []byte {
	return chunkBytes("MATL", cat(le32(id), dictBytes(kv...)))
}

func mustDecode(t *testing.T, b []byte, opts ...ReadOption) *Document {
	t.Helper()
	doc, err := Decode(bytes.NewReader(b), opts...)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return doc
}

// sampleFile is a two-model scene with a custom palette, layers and materials.
func sampleFile() []byte {
	var p Palette
	for i := range p {
		p[i] = Color(0xFF000000 | uint32(i))
	}
	return voxBytes(
		packChunk(2),
		sizeChunk(2, 2, 2),
		xyziChunk(Voxel{0, 0, 0, 1}, Voxel{1, 1, 1, 2}),
		sizeChunk(3, 1, 1),
		xyziChunk(Voxel{2, 0, 0, 7}),
		trnChunk(0, 1, -1, -1, dictBytes()),
		grpChunk(1, 2, 4),
		trnChunk(2, 3, -1, 0, dictBytes("_t", "1 -2 3")),
		shpChunk(3, 0),
		trnChunk(4, 5, -1, 1, dictBytes()),
		shpChunk(5, 1),
		rgbaChunk(p),
		layrChunk(0, "_name", "ground"),
		layrChunk(3, "_name", "props", "_hidden", "1"),
		matlChunk(1, "_type", "_metal", "_rough", "0.1"),
	)
}

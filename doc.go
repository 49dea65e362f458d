// Package vox decodes MagicaVoxel .vox files.
//
// A .vox file is a tree of self-describing chunks below an 8-byte header
// ("VOX " and the version, 150). Each chunk carries a 4-character tag, its own
// content bytes and a run of child chunks. The children of the root MAIN
// chunk describe the document:
//   - PACK: the number of models (advisory)
//   - SIZE followed by XYZI: one model, its dimensions and its voxels
//   - RGBA: a 256-entry palette replacing the default one
//   - nTRN, nGRP, nSHP: transform, group and shape nodes of the scene graph
//   - LAYR, MATL: layer and material attributes
//
// Chunks with other tags are skipped, so files written by newer MagicaVoxel
// releases still decode.
//
// # Basic Usage
//
//	f, _ := os.Open("castle.vox")
//	defer f.Close()
//	doc, err := vox.Decode(f)
//	if err != nil {
//		return err
//	}
//	for _, m := range doc.Models {
//		fmt.Println(m.SizeX, m.SizeY, m.SizeZ, len(m.Voxels))
//	}
//
// To look at a model from one side, use [Document.View2D]:
//
//	grid, err := doc.View2D(0, vox.ViewXZ, vox.SwapAxis|vox.InvertUp)
//	img := grid.Image(doc.Palette)
//
// A [Reader] keeps the last successfully loaded document, so a failed load
// never replaces a good one.
//
// # Compressed Sources
//
// Decode transparently unwraps zstd, LZ4 and gzip streams, detected by their
// frame magic. Brotli streams must be requested with WithCompression(CompBR).
//
// # Security Considerations
//
// All declared lengths and counts are checked against the bytes actually
// available before anything is allocated, and [Limits] cap chunk sizes,
// nesting depth, table ids and decompressed input.
package vox

package vox

import (
	"fmt"
	"image"
	"slices"
)

// Viewport selects the model side a 2D view looks at. Each viewport maps two
// model axes onto the screen and uses the third as depth.
type Viewport uint8

const (
	ViewXZ Viewport = iota // horizontal x, up z, depth y
	ViewXY                 // horizontal x, up y, depth z
	ViewYZ                 // horizontal y, up z, depth x
)

func (vp Viewport) String() string {
	switch vp {
	case ViewXZ:
		return "XZ"
	case ViewXY:
		return "XY"
	case ViewYZ:
		return "YZ"
	}
	return fmt.Sprintf("Viewport(%d)", uint8(vp))
}

// ViewFlags modify how voxels are laid out in a 2D view.
type ViewFlags uint8

const (
	// InvertUp mirrors the up axis: the lowest voxel is seen as the highest.
	InvertUp ViewFlags = 1 << iota
	// FromBehind looks at the model from the opposite side. The horizontal
	// axis is mirrored and larger depth values become nearer.
	FromBehind
	// SwapAxis exchanges grid rows and columns.
	SwapAxis
)

// maxGridCells bounds the grid a single projection may allocate.
const maxGridCells = 1 << 26

// Grid is a 2D projection of one model.
//
// Without SwapAxis, row r holds the voxels at horizontal position r and
// column c the voxels at up position c. Each occupied cell refers to the
// nearest voxel along the depth axis.
type Grid struct {
	Rows, Cols int
	// Voxels is a copy of the projected model's voxels; cells index into it.
	Voxels []Voxel
	// Skipped counts voxels whose coordinates fell outside the model's size
	// box and therefore outside the grid.
	Skipped int

	cells []int32
}

// Index returns the position in Voxels of the voxel seen at (row, col).
func (g *Grid) Index(row, col int) (int, bool) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, false
	}
	i := g.cells[row*g.Cols+col]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// At returns the voxel seen at (row, col).
func (g *Grid) At(row, col int) (Voxel, bool) {
	i, ok := g.Index(row, col)
	if !ok {
		return Voxel{}, false
	}
	return g.Voxels[i], true
}

// Image renders the grid with colors from p, one pixel per cell. Columns run
// along x and rows along y; empty cells are transparent.
func (g *Grid) Image(p Palette) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if v, ok := g.At(row, col); ok {
				img.SetNRGBA(col, row, p[v.ColorIndex].NRGBA())
			}
		}
	}
	return img
}

// axes returns the horizontal, up and depth coordinates of v for this viewport.
func (vp Viewport) axes(v Voxel) (h, up, depth uint32) {
	switch vp {
	case ViewXZ:
		return uint32(v.X), uint32(v.Z), uint32(v.Y)
	case ViewXY:
		return uint32(v.X), uint32(v.Y), uint32(v.Z)
	default:
		return uint32(v.Y), uint32(v.Z), uint32(v.X)
	}
}

// extents returns the model size along the horizontal and up axes.
func (vp Viewport) extents(m Model) (h, up uint32) {
	switch vp {
	case ViewXZ:
		return m.SizeX, m.SizeZ
	case ViewXY:
		return m.SizeX, m.SizeY
	default:
		return m.SizeY, m.SizeZ
	}
}

// View2D flattens model modelIndex into a grid as seen through viewport.
//
// Voxels are visited once in list order. A voxel lands in an empty cell, or
// replaces the occupant only when it is strictly nearer; of two voxels at the
// same depth the one listed first stays. Voxels outside the model's size box
// are not placed and are counted in Grid.Skipped.
func (d *Document) View2D(modelIndex int, viewport Viewport, flags ViewFlags) (*Grid, error) {
	if viewport > ViewYZ {
		return nil, fmt.Errorf("%w: %d", ErrUnknownViewport, uint8(viewport))
	}
	if modelIndex < 0 || modelIndex >= len(d.Models) {
		return nil, fmt.Errorf("%w: %d of %d", ErrModelIndex, modelIndex, len(d.Models))
	}
	m := d.Models[modelIndex]
	sizeH, sizeUp := viewport.extents(m)
	if uint64(sizeH)*uint64(sizeUp) > maxGridCells {
		return nil, fmt.Errorf("%w: %d x %d grid", ErrLimitExceeded, sizeH, sizeUp)
	}

	g := &Grid{Rows: int(sizeH), Cols: int(sizeUp), Voxels: slices.Clone(m.Voxels)}
	if flags&SwapAxis != 0 {
		g.Rows, g.Cols = g.Cols, g.Rows
	}
	g.cells = make([]int32, g.Rows*g.Cols)
	for i := range g.cells {
		g.cells[i] = -1
	}

	behind := flags&FromBehind != 0
	nearer := func(depth, other uint32) bool {
		if behind {
			return depth > other
		}
		return depth < other
	}

	for i, v := range g.Voxels {
		if !m.Contains(v) {
			g.Skipped++
			continue
		}
		h, up, depth := viewport.axes(v)
		if flags&InvertUp != 0 {
			up = sizeUp - up - 1
		}
		if behind {
			h = sizeH - h - 1
		}
		row, col := int(h), int(up)
		if flags&SwapAxis != 0 {
			row, col = col, row
		}

		cell := row*g.Cols + col
		cur := g.cells[cell]
		if cur < 0 {
			g.cells[cell] = int32(i)
			continue
		}
		_, _, other := viewport.axes(g.Voxels[cur])
		if nearer(depth, other) {
			g.cells[cell] = int32(i)
		}
	}
	return g, nil
}

package vox

// Version150 is the only file version this package decodes.
const Version150 uint32 = 150

const fileHeaderSize = 8

// Magic is the 4-byte .vox file signature.
var Magic = [4]byte{'V', 'O', 'X', ' '}

// Tag is a 4-character chunk identifier.
type Tag [4]byte

func (t Tag) String() string { return string(t[:]) }

var (
	TagMain  = Tag{'M', 'A', 'I', 'N'}
	TagPack  = Tag{'P', 'A', 'C', 'K'}
	TagSize  = Tag{'S', 'I', 'Z', 'E'}
	TagXYZI  = Tag{'X', 'Y', 'Z', 'I'}
	TagRGBA  = Tag{'R', 'G', 'B', 'A'}
	TagTrans = Tag{'n', 'T', 'R', 'N'}
	TagGroup = Tag{'n', 'G', 'R', 'P'}
	TagShape = Tag{'n', 'S', 'H', 'P'}
	TagLayer = Tag{'L', 'A', 'Y', 'R'}
	TagMatl  = Tag{'M', 'A', 'T', 'L'}
)

// Voxel is one colored cell of a model. ColorIndex is in 1..255.
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Model is a dense bounding box holding a sparse voxel list.
// Cells not listed in Voxels are empty.
type Model struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []Voxel
}

// Document is the decoded content of a .vox file.
//
// A Document is never modified after Decode returns it, so it can be shared
// between goroutines for read-only queries and projections.
type Document struct {
	Version uint32
	// PackCount is the model count announced by a PACK chunk. Files without
	// one imply a single model, so it defaults to 1. It is advisory and not
	// checked against Models.
	PackCount uint32
	Models    []Model
	// Palette is the file's RGBA palette, or the default palette when
	// CustomPalette is false.
	Palette       Palette
	CustomPalette bool
	Scene         SceneGraph

	layers    registry[Layer]
	materials registry[Material]
}

// Layer returns the layer registered under id.
func (d *Document) Layer(id int) (Layer, bool) {
	return d.layers.get(id)
}

// Layers returns the populated layers in id order.
func (d *Document) Layers() []Layer {
	return d.layers.values()
}

// Material returns the MATL material registered under id.
func (d *Document) Material(id int) (Material, bool) {
	return d.materials.get(id)
}

// Materials returns the populated materials in id order.
func (d *Document) Materials() []Material {
	return d.materials.values()
}

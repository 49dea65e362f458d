package vox

import "fmt"

// Layer is a LAYR record. See the MagicaVoxel extension notes for the
// attribute keys in use ("_name", "_hidden").
type Layer struct {
	ID         uint32
	Attributes Dictionary
}

func (l Layer) Name() string {
	v, _ := l.Attributes.Get("_name")
	return v
}

func (l Layer) Hidden() bool {
	v, _ := l.Attributes.Get("_hidden")
	return v == "1"
}

// Material is a MATL record. Properties are kept as raw strings.
type Material struct {
	ID         uint32
	Properties Dictionary
}

// Type returns the "_type" property, e.g. "_diffuse" or "_metal".
func (m Material) Type() string {
	v, _ := m.Properties.Get("_type")
	return v
}

// readRegistryEntry decodes the id + Dictionary layout shared by LAYR and MATL.
func readRegistryEntry(c chunk, limits Limits) (uint32, Dictionary, error) {
	cur := newCursor(c)
	id, err := cur.u32()
	if err != nil {
		return 0, nil, err
	}
	if id > limits.MaxRegistryID {
		return 0, nil, fmt.Errorf("%w: %s id %d", ErrLimitExceeded, c.tag, id)
	}
	d, err := cur.dictionary()
	if err != nil {
		return 0, nil, err
	}
	return id, d, nil
}

func readLayer(c chunk, limits Limits) (Layer, error) {
	id, d, err := readRegistryEntry(c, limits)
	if err != nil {
		return Layer{}, err
	}
	return Layer{ID: id, Attributes: d}, nil
}

func readMaterial(c chunk, limits Limits) (Material, error) {
	id, d, err := readRegistryEntry(c, limits)
	if err != nil {
		return Material{}, err
	}
	return Material{ID: id, Properties: d}, nil
}

package vox

import (
	"fmt"

	"go.uber.org/zap"
)

// build turns the children of the root chunk into a Document. Children are
// processed in file order; unknown tags are skipped.
func build(root chunk, cfg readConfig) (*Document, error) {
	doc := &Document{Version: Version150, PackCount: 1, Palette: DefaultPalette()}
	log := cfg.logger

	children := root.children
	for i := 0; i < len(children); i++ {
		c := children[i]
		switch c.tag {
		case TagPack:
			n, err := newCursor(c).u32()
			if err != nil {
				return nil, err
			}
			doc.PackCount = n

		case TagSize:
			if i+1 >= len(children) || children[i+1].tag != TagXYZI {
				next := "end of MAIN"
				if i+1 < len(children) {
					next = children[i+1].tag.String()
				}
				return nil, fmt.Errorf("%w: child %d is followed by %s", ErrUnpairedSize, i, next)
			}
			m, err := buildModel(c, children[i+1], cfg.limits)
			if err != nil {
				return nil, fmt.Errorf("model %d: %w", len(doc.Models), err)
			}
			doc.Models = append(doc.Models, m)
			i++

		case TagRGBA:
			p, err := buildPalette(c)
			if err != nil {
				return nil, err
			}
			doc.Palette = p
			doc.CustomPalette = true

		case TagTrans:
			n, err := readTransformNode(c, cfg.limits)
			if err != nil {
				return nil, err
			}
			if err := doc.Scene.insert(n); err != nil {
				return nil, err
			}

		case TagGroup:
			n, err := readGroupNode(c, cfg.limits)
			if err != nil {
				return nil, err
			}
			if err := doc.Scene.insert(n); err != nil {
				return nil, err
			}

		case TagShape:
			n, err := readShapeNode(c, cfg.limits)
			if err != nil {
				return nil, err
			}
			if err := doc.Scene.insert(n); err != nil {
				return nil, err
			}

		case TagLayer:
			l, err := readLayer(c, cfg.limits)
			if err != nil {
				return nil, err
			}
			doc.layers.set(l.ID, l)

		case TagMatl:
			m, err := readMaterial(c, cfg.limits)
			if err != nil {
				return nil, err
			}
			doc.materials.set(m.ID, m)

		default:
			log.Debug("skipping chunk",
				zap.Stringer("tag", c.tag),
				zap.Int("content_len", len(c.content)),
				zap.Int("children", len(c.children)))
		}
	}

	if int(doc.PackCount) != len(doc.Models) {
		log.Debug("PACK count differs from decoded models",
			zap.Uint32("pack_count", doc.PackCount),
			zap.Int("models", len(doc.Models)))
	}
	return doc, nil
}

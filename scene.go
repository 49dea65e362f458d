package vox

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NodeID addresses a node in the scene graph. Id 0 is the root.
type NodeID int32

type NodeKind uint8

const (
	NodeTransform NodeKind = iota
	NodeGroup
	NodeShape
)

func (k NodeKind) String() string {
	switch k {
	case NodeTransform:
		return "transform"
	case NodeGroup:
		return "group"
	case NodeShape:
		return "shape"
	}
	return "NodeKind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a scene-graph node: *TransformNode, *GroupNode or *ShapeNode.
// No other implementations exist, so a type switch over the three is exhaustive.
type Node interface {
	ID() NodeID
	Kind() NodeKind
	Attrs() Dictionary
	sceneNode()
}

type nodeHeader struct {
	id         NodeID
	Attributes Dictionary
}

func (h *nodeHeader) ID() NodeID        { return h.id }
func (h *nodeHeader) Attrs() Dictionary { return h.Attributes }

// TransformNode places its single child. Frames holds one attribute set per
// animation frame; the "_t" key carries the translation.
type TransformNode struct {
	nodeHeader
	ChildID NodeID
	LayerID int32
	Frames  []Dictionary
}

func (*TransformNode) Kind() NodeKind { return NodeTransform }
func (*TransformNode) sceneNode()     {}

// Translation parses the "_t" attribute of the given frame. A frame without
// "_t" translates by zero.
func (n *TransformNode) Translation(frame int) ([3]int32, error) {
	var t [3]int32
	if frame < 0 || frame >= len(n.Frames) {
		return t, fmt.Errorf("vox: transform %d has no frame %d", n.id, frame)
	}
	s, ok := n.Frames[frame].Get("_t")
	if !ok {
		return t, nil
	}
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return t, fmt.Errorf("vox: transform %d frame %d: malformed _t %q", n.id, frame, s)
	}
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return t, fmt.Errorf("vox: transform %d frame %d: %w", n.id, frame, err)
		}
		t[i] = int32(v)
	}
	return t, nil
}

// GroupNode lists the transforms below it.
type GroupNode struct {
	nodeHeader
	Children []NodeID
}

func (*GroupNode) Kind() NodeKind { return NodeGroup }
func (*GroupNode) sceneNode()     {}

// ShapeModel references Document.Models by index.
type ShapeModel struct {
	ModelID    uint32
	Attributes Dictionary
}

// ShapeNode is a leaf holding one or more models.
type ShapeNode struct {
	nodeHeader
	Models []ShapeModel
}

func (*ShapeNode) Kind() NodeKind { return NodeShape }
func (*ShapeNode) sceneNode()     {}

// SceneGraph is the id-indexed node table of a document.
type SceneGraph struct {
	nodes registry[Node]
}

// Node returns the node stored at id. It reports false for negative ids,
// ids past the end of the table and empty slots.
func (g *SceneGraph) Node(id NodeID) (Node, bool) {
	return g.nodes.get(int(id))
}

// Root returns node 0.
func (g *SceneGraph) Root() (Node, bool) {
	return g.Node(0)
}

// Len is the size of the node table, including empty slots.
func (g *SceneGraph) Len() int {
	return g.nodes.size()
}

// Nodes returns the populated nodes in id order.
func (g *SceneGraph) Nodes() []Node {
	return g.nodes.values()
}

func (g *SceneGraph) insert(n Node) error {
	id := uint32(n.ID())
	if g.nodes.occupied(id) {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes.set(id, n)
	return nil
}

// readNodeHeader decodes the node id and attribute dictionary that start
// every nTRN, nGRP and nSHP chunk.
func readNodeHeader(cur *cursor, limits Limits) (nodeHeader, error) {
	id, err := cur.u32()
	if err != nil {
		return nodeHeader{}, err
	}
	if id > limits.MaxNodeID || id > math.MaxInt32 {
		return nodeHeader{}, fmt.Errorf("%w: %s node id %d", ErrLimitExceeded, cur.tag, id)
	}
	attrs, err := cur.dictionary()
	if err != nil {
		return nodeHeader{}, err
	}
	return nodeHeader{id: NodeID(id), Attributes: attrs}, nil
}

func readTransformNode(c chunk, limits Limits) (*TransformNode, error) {
	cur := newCursor(c)
	h, err := readNodeHeader(cur, limits)
	if err != nil {
		return nil, err
	}
	n := &TransformNode{nodeHeader: h}
	child, err := cur.i32()
	if err != nil {
		return nil, err
	}
	n.ChildID = NodeID(child)
	reserved, err := cur.i32()
	if err != nil {
		return nil, err
	}
	if reserved != -1 {
		return nil, fmt.Errorf("%w: transform %d reserved id is %d, want -1", ErrReservedField, h.id, reserved)
	}
	if n.LayerID, err = cur.i32(); err != nil {
		return nil, err
	}
	frames, err := cur.count(4)
	if err != nil {
		return nil, err
	}
	n.Frames = make([]Dictionary, 0, frames)
	for i := 0; i < frames; i++ {
		d, err := cur.dictionary()
		if err != nil {
			return nil, err
		}
		n.Frames = append(n.Frames, d)
	}
	return n, nil
}

func readGroupNode(c chunk, limits Limits) (*GroupNode, error) {
	cur := newCursor(c)
	h, err := readNodeHeader(cur, limits)
	if err != nil {
		return nil, err
	}
	count, err := cur.count(4)
	if err != nil {
		return nil, err
	}
	n := &GroupNode{nodeHeader: h, Children: make([]NodeID, 0, count)}
	for i := 0; i < count; i++ {
		child, err := cur.u32()
		if err != nil {
			return nil, err
		}
		if child > limits.MaxNodeID || child > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %s child id %d", ErrLimitExceeded, cur.tag, child)
		}
		n.Children = append(n.Children, NodeID(child))
	}
	return n, nil
}

func readShapeNode(c chunk, limits Limits) (*ShapeNode, error) {
	cur := newCursor(c)
	h, err := readNodeHeader(cur, limits)
	if err != nil {
		return nil, err
	}
	count, err := cur.count(8)
	if err != nil {
		return nil, err
	}
	n := &ShapeNode{nodeHeader: h, Models: make([]ShapeModel, 0, count)}
	for i := 0; i < count; i++ {
		modelID, err := cur.u32()
		if err != nil {
			return nil, err
		}
		attrs, err := cur.dictionary()
		if err != nil {
			return nil, err
		}
		n.Models = append(n.Models, ShapeModel{ModelID: modelID, Attributes: attrs})
	}
	return n, nil
}

package scene

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Kind enumerates the node element types handled by this importer.
type Kind int

const (
	KindScene Kind = iota // session root, carries no payload
	KindArc2D
	KindArcClose2D
	KindCircle2D
	KindDisk2D
	KindPolyline2D
	KindPolypoint2D
	KindRectangle2D
	KindTriangleSet2D
)

func (k Kind) String() string {
	switch k {
	case KindScene:
		return "Scene"
	case KindArc2D:
		return "Arc2D"
	case KindArcClose2D:
		return "ArcClose2D"
	case KindCircle2D:
		return "Circle2D"
	case KindDisk2D:
		return "Disk2D"
	case KindPolyline2D:
		return "Polyline2D"
	case KindPolypoint2D:
		return "Polypoint2D"
	case KindRectangle2D:
		return "Rectangle2D"
	case KindTriangleSet2D:
		return "TriangleSet2D"
	default:
		return "unknown"
	}
}

// Node is one element of the scene graph. Children are owned by the node;
// Parent is a weak back-reference and must never be followed for teardown.
type Node struct {
	Kind     Kind
	Name     string // DEF name, "" for anonymous definitions
	Parent   *Node
	Children []*Node
	Data     NodeData
}

// NodeData is the interface for kind-specific node payloads.
type NodeData interface {
	nodeData() // marker method restricting implementations to this package
}

// Geometry2D is the payload carried by every 2D geometry kind. Vertices lie
// on the z=0 plane. IndexArity states how many consecutive vertices form one
// render primitive: 1 a point, 2 a line segment, 3 a triangle, 4 a quad,
// len(Vertices) a single polygon.
type Geometry2D struct {
	Vertices   []v3.Vec
	Solid      bool
	IndexArity int
}

func (Geometry2D) nodeData() {}

// Geometry returns the node's 2D geometry payload, when it carries one.
func (n *Node) Geometry() (Geometry2D, bool) {
	g, ok := n.Data.(Geometry2D)
	return g, ok
}

// Attach places child at a position under n. The Parent back-reference is
// claimed only on first attachment; a USE alias keeps pointing at the parent
// it was defined under, matching the one-owner invariant.
func (n *Node) Attach(child *Node) {
	if child.Parent == nil {
		child.Parent = n
	}
	n.Children = append(n.Children, child)
}

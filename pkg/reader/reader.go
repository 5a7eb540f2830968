// Package reader materializes 2D geometry primitives from an already
// tokenized scene description into a scene node tree.
//
// The markup layer is an external collaborator: it hands each element to the
// matching Read method as an ElementSource of typed attribute values, and it
// is responsible for rejecting elements that carry both a DEF and a USE
// name. Metadata children are likewise read elsewhere; a node whose source
// element has nested content is parked in the pending set and attached by
// the metadata processor through AttachPending.
package reader

import (
	"errors"
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/x3dscene/x3dscene/pkg/scene"
	"github.com/x3dscene/x3dscene/pkg/tessellate"
)

// ElementSource is the contract with the tokenizer for one markup element.
// The typed accessors return the supplied default when the attribute is
// absent.
type ElementSource interface {
	// DefName returns the DEF name, or "" for an anonymous element.
	DefName() string
	// UseName returns the USE name, or "" when the element is a definition.
	UseName() string
	// HasChildren reports whether the element has nested content, which
	// defers tree attachment until metadata processing completes.
	HasChildren() bool

	Float(name string, def float64) float64
	Bool(name string, def bool) bool
	String(name string, def string) string
	Vec2(name string, def v2.Vec) v2.Vec
	Vec2List(name string) []v2.Vec
}

// Importer holds the state of one import pass: the tree under construction,
// the definition registry, and the set of nodes whose attachment is waiting
// on metadata processing. An Importer is used by a single goroutine; the
// whole read pass is synchronous.
type Importer struct {
	cfg     tessellate.Config
	root    *scene.Node
	current *scene.Node
	reg     *scene.Registry
	pending []*scene.Node
}

// New returns an importer with the default tessellation resolution.
func New() *Importer {
	return NewWithConfig(tessellate.DefaultConfig())
}

// NewWithConfig returns an importer using the given tessellation config.
func NewWithConfig(cfg tessellate.Config) *Importer {
	root := &scene.Node{Kind: scene.KindScene}
	return &Importer{
		cfg:     cfg,
		root:    root,
		current: root,
		reg:     scene.NewRegistry(),
	}
}

// Root returns the session root. After the read pass it is the tree handed
// to mesh assembly; traverse it with scene.Walk.
func (im *Importer) Root() *scene.Node {
	return im.root
}

// Registry returns the session's definition registry.
func (im *Importer) Registry() *scene.Registry {
	return im.reg
}

// Current returns the node new definitions attach under.
func (im *Importer) Current() *scene.Node {
	return im.current
}

// Descend makes n the current parent for subsequent reads. Grouping node
// readers (outside this package) use it when they open nested content.
func (im *Importer) Descend(n *scene.Node) {
	im.current = n
}

// Ascend moves the current parent one level up. At the root it stays put.
func (im *Importer) Ascend() {
	if im.current.Parent != nil {
		im.current = im.current.Parent
	}
}

// Pending returns the nodes that are registered but whose tree attachment
// is deferred until their metadata children have been read. The slice is
// shared and read-only.
func (im *Importer) Pending() []*scene.Node {
	return im.pending
}

// AttachPending completes the deferred attachment of a node. It is called
// by the metadata processor once the node's children have been read. The
// node attaches under the parent it was constructed for.
func (im *Importer) AttachPending(n *scene.Node) error {
	for i, p := range im.pending {
		if p != n {
			continue
		}
		im.pending = append(im.pending[:i], im.pending[i+1:]...)
		p.Parent.Attach(p)
		return nil
	}
	return fmt.Errorf("node %q (%s) is not pending attachment", n.Name, n.Kind)
}

// newNode allocates a definition node of the given kind. The parent is
// fixed at construction time; attachment happens later in finish or
// AttachPending.
func (im *Importer) newNode(kind scene.Kind, def string) *scene.Node {
	return &scene.Node{Kind: kind, Name: def, Parent: im.current}
}

// finish commits a freshly built node: it is attached to the current parent
// immediately, or parked in the pending set when the source element carries
// nested children. Registration happens in both paths, exactly once, so USE
// lookups succeed even for nodes still awaiting attachment.
func (im *Importer) finish(src ElementSource, n *scene.Node) {
	if src.HasChildren() {
		im.pending = append(im.pending, n)
	} else {
		im.current.Children = append(im.current.Children, n)
	}
	im.reg.Add(n)
}

// attachUse resolves a USE reference and attaches the found definition
// itself at the current position. The node is shared, not copied; its
// geometry is read-only from here on.
func (im *Importer) attachUse(kind scene.Kind, use string) error {
	n := im.reg.Lookup(kind, use)
	if n == nil {
		return scene.ReferenceError{
			Kind:     kind,
			Name:     use,
			Mismatch: im.reg.LookupAny(use) != nil,
		}
	}
	im.current.Attach(n)
	return nil
}

// wrapArcErr converts a tessellation argument error into an attribute error
// naming the offending element and attribute.
func wrapArcErr(element string, err error) error {
	var ae tessellate.ArgError
	if errors.As(err, &ae) {
		return scene.AttributeValueError{Element: element, Attr: ae.Arg, Reason: ae.Reason}
	}
	return fmt.Errorf("%s: %w", element, err)
}

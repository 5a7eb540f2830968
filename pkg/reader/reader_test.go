package reader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x3dscene/x3dscene/pkg/reader"
	"github.com/x3dscene/x3dscene/pkg/scene"
)

func TestDefThenUseSharesOneNode(t *testing.T) {
	im := reader.New()

	require.NoError(t, im.ReadCircle2D(reader.Values{Def: "c1"}))
	require.NoError(t, im.ReadCircle2D(reader.Values{Use: "c1"}))

	children := im.Root().Children
	require.Len(t, children, 2)
	assert.Same(t, children[0], children[1], "USE must attach the defined node itself, not a copy")

	ga, _ := children[0].Geometry()
	gb, _ := children[1].Geometry()
	assert.Same(t, &ga.Vertices[0], &gb.Vertices[0], "both positions share one vertex buffer")

	// Only the definition is registered.
	assert.Equal(t, 1, im.Registry().Len())
	assert.Equal(t, im.Root(), children[0].Parent, "definition keeps its original parent")
}

func TestUseMissingDefinition(t *testing.T) {
	im := reader.New()
	err := im.ReadCircle2D(reader.Values{Use: "missing"})

	var re scene.ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, scene.KindCircle2D, re.Kind)
	assert.Equal(t, "missing", re.Name)
	assert.False(t, re.Mismatch)
	assert.Empty(t, im.Root().Children)
}

func TestUseKindMismatch(t *testing.T) {
	im := reader.New()
	require.NoError(t, im.ReadCircle2D(reader.Values{Def: "shape"}))

	err := im.ReadRectangle2D(reader.Values{Use: "shape"})
	var re scene.ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, scene.KindRectangle2D, re.Kind)
	assert.True(t, re.Mismatch, "name exists, but under another kind")
}

func TestUseAcrossSiblingSubtrees(t *testing.T) {
	im := reader.New()

	group := &scene.Node{Kind: scene.KindScene}
	im.Root().Attach(group)
	im.Descend(group)
	require.NoError(t, im.ReadCircle2D(reader.Values{Def: "c1"}))
	im.Ascend()
	require.Equal(t, im.Root(), im.Current())

	sibling := &scene.Node{Kind: scene.KindScene}
	im.Root().Attach(sibling)
	im.Descend(sibling)
	require.NoError(t, im.ReadCircle2D(reader.Values{Use: "c1"}))

	require.Len(t, group.Children, 1)
	require.Len(t, sibling.Children, 1)
	assert.Same(t, group.Children[0], sibling.Children[0])
	assert.Equal(t, group, group.Children[0].Parent, "ownership stays with the defining subtree")
}

func TestDeferredAttachment(t *testing.T) {
	im := reader.New()

	// An element with nested metadata children defers attachment.
	require.NoError(t, im.ReadCircle2D(reader.Values{Def: "c1", Children: true}))

	assert.Empty(t, im.Root().Children, "attachment is deferred")
	require.Len(t, im.Pending(), 1)
	pending := im.Pending()[0]
	assert.Equal(t, scene.KindCircle2D, pending.Kind)

	// The node is registered even while pending, so USE resolves.
	require.NoError(t, im.ReadCircle2D(reader.Values{Use: "c1"}))
	require.Len(t, im.Root().Children, 1)
	assert.Same(t, pending, im.Root().Children[0])

	// Metadata processing completes and attaches the definition.
	require.NoError(t, im.AttachPending(pending))
	assert.Empty(t, im.Pending())
	require.Len(t, im.Root().Children, 2)

	// A second attachment attempt is an error.
	assert.Error(t, im.AttachPending(pending))
}

func TestReaderTableDrivenSmoke(t *testing.T) {
	// Every reader, definition path, no attributes: all defaults are valid.
	readers := map[string]func(*reader.Importer, reader.ElementSource) error{
		"Arc2D":         (*reader.Importer).ReadArc2D,
		"ArcClose2D":    (*reader.Importer).ReadArcClose2D,
		"Circle2D":      (*reader.Importer).ReadCircle2D,
		"Disk2D":        (*reader.Importer).ReadDisk2D,
		"Rectangle2D":   (*reader.Importer).ReadRectangle2D,
	}
	for name, read := range readers {
		t.Run(name, func(t *testing.T) {
			im := reader.New()
			require.NoError(t, read(im, reader.Values{}))
			require.Len(t, im.Root().Children, 1)
			n := im.Root().Children[0]
			assert.Equal(t, name, n.Kind.String())
			g, ok := n.Geometry()
			require.True(t, ok)
			assert.NotEmpty(t, g.Vertices)
			assert.Equal(t, 1, im.Registry().Len())
		})
	}
}

func TestValuesDefaults(t *testing.T) {
	v := reader.Values{Attrs: map[string]any{"radius": "not-a-float"}}
	assert.Equal(t, 1.0, v.Float("radius", 1.0), "wrong-typed value falls back to the default")
	assert.True(t, v.Bool("solid", true))
	assert.Equal(t, "PIE", v.String("closureType", "PIE"))
	assert.Nil(t, v.Vec2List("point"))
}

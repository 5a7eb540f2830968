// Package svgdump renders an imported scene tree to SVG for visual
// inspection. It understands the index arity convention carried by the
// geometry payloads; it is a diagnostic side channel, not part of the mesh
// assembly path.
package svgdump

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/x3dscene/x3dscene/pkg/scene"
)

// Options controls the rendered output.
type Options struct {
	Width  float64 // canvas width in SVG units
	Height float64 // canvas height in SVG units
	Scale  float64 // geometry units to SVG units
	Stroke string  // stroke color
}

// DefaultOptions returns a 400x400 canvas with the origin at the center.
func DefaultOptions() Options {
	return Options{Width: 400, Height: 400, Scale: 100, Stroke: "black"}
}

// Write renders every geometry node reachable from root through owning
// child edges. The origin is placed at the canvas center with +y up, the
// orientation the scene plane uses.
func Write(w io.Writer, root *scene.Node, opts Options) {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Gtransform(fmt.Sprintf("translate(%g,%g) scale(%g,%g)",
		opts.Width/2, opts.Height/2, opts.Scale, -opts.Scale))

	style := fmt.Sprintf("stroke:%s;fill:none;stroke-width:%g", opts.Stroke, 1.5/opts.Scale)
	scene.Walk(root, func(n *scene.Node) bool {
		if g, ok := n.Geometry(); ok {
			drawGeometry(canvas, g, opts, style)
		}
		return true
	})

	canvas.Gend()
	canvas.End()
}

func drawGeometry(canvas *svg.SVG, g scene.Geometry2D, opts Options, style string) {
	v := g.Vertices
	switch {
	case len(v) == 0:
		// nothing to draw

	case g.IndexArity == 1:
		for _, p := range v {
			canvas.Circle(p.X, p.Y, 2/opts.Scale, "fill:"+opts.Stroke)
		}

	case g.IndexArity == 2:
		for i := 0; i+1 < len(v); i += 2 {
			canvas.Line(v[i].X, v[i].Y, v[i+1].X, v[i+1].Y, style)
		}

	case g.IndexArity >= len(v):
		canvas.Polygon(xs(v), ys(v), style)

	default:
		// triangle and quad groups
		for i := 0; i+g.IndexArity <= len(v); i += g.IndexArity {
			grp := v[i : i+g.IndexArity]
			canvas.Polygon(xs(grp), ys(grp), style)
		}
	}
}

func xs(v []v3.Vec) []float64 {
	out := make([]float64, len(v))
	for i, p := range v {
		out[i] = p.X
	}
	return out
}

func ys(v []v3.Vec) []float64 {
	out := make([]float64, len(v))
	for i, p := range v {
		out[i] = p.Y
	}
	return out
}

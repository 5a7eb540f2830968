package reader

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/x3dscene/x3dscene/pkg/scene"
	"github.com/x3dscene/x3dscene/pkg/tessellate"
)

const twoPi = 2 * math.Pi

// liftPoints places 2D attribute points on the z=0 plane.
func liftPoints(pts []v2.Vec) []v3.Vec {
	out := make([]v3.Vec, len(pts))
	for i, p := range pts {
		out[i] = v3.Vec{X: p.X, Y: p.Y}
	}
	return out
}

// ReadArc2D reads an Arc2D element: a linear circular arc centered at the
// origin, swept counterclockwise from startAngle to endAngle. Equal angles
// specify a full circle.
//
// Attributes: endAngle (pi/2), radius (1), startAngle (0).
func (im *Importer) ReadArc2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindArc2D, use)
	}

	endAngle := src.Float("endAngle", math.Pi/2)
	radius := src.Float("radius", 1)
	startAngle := src.Float("startAngle", 0)

	arc, err := tessellate.ArcPoints(startAngle, endAngle, radius, im.cfg.Segments)
	if err != nil {
		return wrapArcErr("Arc2D", err)
	}
	strip, err := tessellate.PointsToLineStrip(arc)
	if err != nil {
		return fmt.Errorf("Arc2D: %w", err)
	}

	n := im.newNode(scene.KindArc2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: strip, IndexArity: 2}
	im.finish(src, n)
	return nil
}

// ReadArcClose2D reads an ArcClose2D element: an arc whose end points are
// connected according to closureType. "PIE" closes through the center with
// two radial lines, "CHORD" with a single straight chord. When the angles
// describe a full circle the closure is skipped and closureType is ignored.
//
// Attributes: closureType ("PIE"), endAngle (pi/2), radius (1),
// solid (false), startAngle (0).
func (im *Importer) ReadArcClose2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindArcClose2D, use)
	}

	closureType := src.String("closureType", "PIE")
	endAngle := src.Float("endAngle", math.Pi/2)
	radius := src.Float("radius", 1)
	solid := src.Bool("solid", false)
	startAngle := src.Float("startAngle", 0)

	verts, err := tessellate.ArcPoints(startAngle, endAngle, radius, im.cfg.Segments)
	if err != nil {
		return wrapArcErr("ArcClose2D", err)
	}

	if math.Abs(endAngle-startAngle) < twoPi && endAngle != startAngle {
		switch closureType {
		case "PIE", `"PIE"`:
			verts = append(verts, v3.Vec{}) // center point, first radial line
		case "CHORD", `"CHORD"`:
			// chord only, no extra point before the closing one
		default:
			return scene.AttributeValueError{
				Element: "ArcClose2D",
				Attr:    "closureType",
				Reason:  fmt.Sprintf("%q is not one of PIE, CHORD", closureType),
			}
		}
		// Back to the first arc point: the chord, or the second radial line.
		verts = append(verts, verts[0])
	}

	n := im.newNode(scene.KindArcClose2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: verts, Solid: solid, IndexArity: len(verts)}
	im.finish(src, n)
	return nil
}

// ReadCircle2D reads a Circle2D element: a circular line centered at the
// origin.
//
// Attributes: radius (1).
func (im *Importer) ReadCircle2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindCircle2D, use)
	}

	radius := src.Float("radius", 1)

	ring, err := tessellate.ArcPoints(0, 0, radius, im.cfg.Segments)
	if err != nil {
		return wrapArcErr("Circle2D", err)
	}
	strip, err := tessellate.PointsToLineStrip(ring)
	if err != nil {
		return fmt.Errorf("Circle2D: %w", err)
	}

	n := im.newNode(scene.KindCircle2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: strip, IndexArity: 2}
	im.finish(src, n)
	return nil
}

// ReadDisk2D reads a Disk2D element: a circular disk centered at the
// origin. A zero innerRadius fills the disk completely; innerRadius equal
// to outerRadius collapses it to a circular line; anything in between cuts
// a hole, tessellated as a band of quads.
//
// Attributes: innerRadius (0), outerRadius (1), solid (false).
func (im *Importer) ReadDisk2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindDisk2D, use)
	}

	innerRadius := src.Float("innerRadius", 0)
	outerRadius := src.Float("outerRadius", 1)
	solid := src.Bool("solid", false)

	if innerRadius > outerRadius {
		return scene.GeometricConstraintError{
			Element: "Disk2D",
			Attr:    "innerRadius",
			Reason:  fmt.Sprintf("innerRadius %g exceeds outerRadius %g", innerRadius, outerRadius),
		}
	}

	outer, err := tessellate.ArcPoints(0, 0, outerRadius, im.cfg.Segments)
	if err != nil {
		return wrapArcErr("Disk2D", err)
	}

	var geom scene.Geometry2D
	switch {
	case innerRadius == 0:
		// Completely filled: the outer ring is one polygon.
		geom = scene.Geometry2D{Vertices: outer, IndexArity: len(outer)}

	case innerRadius == outerRadius:
		// Zero-width ring collapses to a circular line.
		strip, err := tessellate.PointsToLineStrip(outer)
		if err != nil {
			return fmt.Errorf("Disk2D: %w", err)
		}
		geom = scene.Geometry2D{Vertices: strip, IndexArity: 2}

	default:
		inner, err := tessellate.ArcPoints(0, 0, innerRadius, im.cfg.Segments)
		if err != nil {
			return wrapArcErr("Disk2D", err)
		}
		if len(inner) < 2 {
			return scene.AttributeValueError{
				Element: "Disk2D",
				Attr:    "innerRadius",
				Reason:  "inner ring has too few points to form quads",
			}
		}
		quads, err := tessellate.QuadStripBetween(inner, outer)
		if err != nil {
			return fmt.Errorf("Disk2D: %w", err)
		}
		geom = scene.Geometry2D{Vertices: quads, IndexArity: 4}
	}
	geom.Solid = solid

	n := im.newNode(scene.KindDisk2D, src.DefName())
	n.Data = geom
	im.finish(src, n)
	return nil
}

// ReadPolyline2D reads a Polyline2D element: a connected sequence of line
// segments.
//
// Attributes: lineSegments (list of 2D points).
func (im *Importer) ReadPolyline2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindPolyline2D, use)
	}

	strip, err := tessellate.PointsToLineStrip(liftPoints(src.Vec2List("lineSegments")))
	if err != nil {
		return scene.AttributeValueError{Element: "Polyline2D", Attr: "lineSegments", Reason: err.Error()}
	}

	n := im.newNode(scene.KindPolyline2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: strip, IndexArity: 2}
	im.finish(src, n)
	return nil
}

// ReadPolypoint2D reads a Polypoint2D element: a set of isolated points.
//
// Attributes: point (list of 2D points).
func (im *Importer) ReadPolypoint2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindPolypoint2D, use)
	}

	n := im.newNode(scene.KindPolypoint2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: liftPoints(src.Vec2List("point")), IndexArity: 1}
	im.finish(src, n)
	return nil
}

// ReadRectangle2D reads a Rectangle2D element: an axis-aligned rectangle
// centered at the origin.
//
// Attributes: size (2 2), solid (false).
func (im *Importer) ReadRectangle2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindRectangle2D, use)
	}

	size := src.Vec2("size", v2.Vec{X: 2, Y: 2})
	solid := src.Bool("solid", false)

	hx := size.X / 2
	hy := size.Y / 2
	verts := []v3.Vec{
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
		{X: -hx, Y: -hy},
	}

	n := im.newNode(scene.KindRectangle2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: verts, Solid: solid, IndexArity: 4}
	im.finish(src, n)
	return nil
}

// ReadTriangleSet2D reads a TriangleSet2D element: a flat list of vertices
// where every three consecutive points form one triangle.
//
// Attributes: solid (false), vertices (list of 2D points).
func (im *Importer) ReadTriangleSet2D(src ElementSource) error {
	if use := src.UseName(); use != "" {
		return im.attachUse(scene.KindTriangleSet2D, use)
	}

	pts := src.Vec2List("vertices")
	solid := src.Bool("solid", false)

	if len(pts)%3 != 0 {
		return scene.AttributeValueError{
			Element: "TriangleSet2D",
			Attr:    "vertices",
			Reason:  fmt.Sprintf("%d points do not form whole triangles", len(pts)),
		}
	}

	n := im.newNode(scene.KindTriangleSet2D, src.DefName())
	n.Data = scene.Geometry2D{Vertices: liftPoints(pts), Solid: solid, IndexArity: 3}
	im.finish(src, n)
	return nil
}

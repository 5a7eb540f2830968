// Package tessellate converts angular and radial primitive parameters into
// discrete point sequences and line/quad topologies. All functions are pure;
// the only knob is the caller-supplied segment configuration.
package tessellate

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultSegments is the number of equal angular divisions used for an arc
// sweep when the caller does not configure a resolution.
const DefaultSegments = 10

// Config carries tunable tessellation parameters.
type Config struct {
	Segments int // angular divisions per arc sweep
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{Segments: DefaultSegments}
}

const twoPi = 2 * math.Pi

// ArgError reports a tessellation argument outside its documented range.
type ArgError struct {
	Arg    string
	Reason string
}

func (e ArgError) Error() string {
	return fmt.Sprintf("%s: %s", e.Arg, e.Reason)
}

// ArcPoints produces points sweeping counterclockwise from startAngle to
// endAngle on a circle of the given radius around the origin, on the z=0
// plane, one point per segment boundary. Equal start and end angles
// degenerate to a full circle, as does a sweep wider than 2*pi. An open arc
// keeps both boundary points and yields segments+1 points; a full circle
// drops the closing duplicate of the first point and yields exactly
// segments points.
func ArcPoints(startAngle, endAngle, radius float64, segments int) ([]v3.Vec, error) {
	if startAngle < -twoPi || startAngle > twoPi {
		return nil, ArgError{Arg: "startAngle", Reason: fmt.Sprintf("%g is outside [-2pi, 2pi]", startAngle)}
	}
	if endAngle < -twoPi || endAngle > twoPi {
		return nil, ArgError{Arg: "endAngle", Reason: fmt.Sprintf("%g is outside [-2pi, 2pi]", endAngle)}
	}
	if radius <= 0 {
		return nil, ArgError{Arg: "radius", Reason: fmt.Sprintf("%g is not positive", radius)}
	}
	if segments < 1 {
		return nil, ArgError{Arg: "segments", Reason: fmt.Sprintf("%d is less than 1", segments)}
	}

	sweep := math.Abs(endAngle - startAngle)
	full := sweep == 0 || sweep >= twoPi
	if full {
		sweep = twoPi
	}

	step := sweep / float64(segments)
	pts := make([]v3.Vec, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := startAngle + float64(i)*step
		pts = append(pts, v3.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	if full {
		// the closing point duplicates the first one
		pts = pts[:len(pts)-1]
	}
	return pts, nil
}

// PointsToLineStrip converts a point sequence into a line set where every
// two consecutive output vertices form one renderable segment (index
// arity 2). The loop is always closed with a final (last, first) edge; for
// an open arc that edge is a chord across the opening, which looks wrong
// but is the connectivity downstream mesh assembly has always consumed.
func PointsToLineStrip(points []v3.Vec) ([]v3.Vec, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 points to form a line set, have %d", len(points))
	}
	out := make([]v3.Vec, 0, len(points)*2)
	for i := range points {
		out = append(out, points[i], points[(i+1)%len(points)])
	}
	return out, nil
}

// QuadStripBetween joins two equal-length point rings into a closed band of
// quads, four vertices per quad (index arity 4). Each step emits inner[i],
// outer[i], outer[i+1], inner[i+1], wrapping back to index 0, which keeps
// the winding counterclockwise when the outer ring is counterclockwise and
// encloses the inner ring.
func QuadStripBetween(inner, outer []v3.Vec) ([]v3.Vec, error) {
	if len(inner) != len(outer) {
		return nil, fmt.Errorf("ring sizes differ: inner %d, outer %d", len(inner), len(outer))
	}
	if len(inner) < 2 {
		return nil, fmt.Errorf("need at least 2 points per ring to form quads, have %d", len(inner))
	}
	out := make([]v3.Vec, 0, len(inner)*4)
	for i := range inner {
		j := (i + 1) % len(inner)
		out = append(out, inner[i], outer[i], outer[j], inner[j])
	}
	return out, nil
}

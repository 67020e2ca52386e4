package journey

import (
	"math"
	"sort"
)

const defaultCurveSegments = 20

// Polyline is a Path made of straight segments and parametrized by arc
// length. It is immutable; build a new one (or Transform) after a layout
// change.
type Polyline struct {
	points []Vec2
	cumLen []float64 // cumLen[i] is the distance from points[0] to points[i]
}

// NewPolyline creates a polyline through the given points. The slice is copied.
func NewPolyline(points []Vec2) *Polyline {
	p := &Polyline{
		points: append([]Vec2(nil), points...),
		cumLen: make([]float64, len(points)),
	}
	for i := 1; i < len(p.points); i++ {
		p.cumLen[i] = p.cumLen[i-1] + math.Sqrt(p.points[i].DistSq(p.points[i-1]))
	}
	return p
}

// Length returns the total arc length.
func (p *Polyline) Length() float64 {
	if len(p.cumLen) == 0 {
		return 0
	}
	return p.cumLen[len(p.cumLen)-1]
}

// PointAtLength returns the point at distance d along the polyline. d is
// clamped to [0, Length()]. An empty polyline yields the origin.
func (p *Polyline) PointAtLength(d float64) Vec2 {
	switch len(p.points) {
	case 0:
		return Vec2{}
	case 1:
		return p.points[0]
	}
	total := p.Length()
	if math.IsNaN(d) || d <= 0 {
		return p.points[0]
	}
	if d >= total {
		return p.points[len(p.points)-1]
	}

	// First vertex at or beyond d; the segment ends there.
	i := sort.SearchFloat64s(p.cumLen, d)
	segLen := p.cumLen[i] - p.cumLen[i-1]
	if segLen == 0 {
		return p.points[i]
	}
	return p.points[i-1].Lerp(p.points[i], (d-p.cumLen[i-1])/segLen)
}

// Points returns the polyline's vertices. The returned slice MUST NOT be mutated.
func (p *Polyline) Points() []Vec2 {
	return p.points
}

// Transform returns a copy of the polyline with every vertex transformed by m.
// Non-uniform scales change the arc length, so lengths are recomputed.
func (p *Polyline) Transform(m Affine) *Polyline {
	out := make([]Vec2, len(p.points))
	for i, v := range p.points {
		out[i] = m.Apply(v)
	}
	return NewPolyline(out)
}

// --- Curve builders ---
//
// Each builder returns segments+1 points (segments <= 0 uses 20). Chain
// them with Join to build a multi-part path.

// Line returns points along the straight line from a to b.
func Line(a, b Vec2, segments int) []Vec2 {
	segs := curveSegments(segments)
	pts := make([]Vec2, segs+1)
	for i := range pts {
		pts[i] = a.Lerp(b, float64(i)/float64(segs))
	}
	return pts
}

// QuadBezier returns points along a quadratic Bézier with control point c.
func QuadBezier(a, c, b Vec2, segments int) []Vec2 {
	segs := curveSegments(segments)
	pts := make([]Vec2, segs+1)
	for i := range pts {
		t := float64(i) / float64(segs)
		u := 1 - t
		pts[i] = Vec2{
			X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
			Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
		}
	}
	return pts
}

// CubicBezier returns points along a cubic Bézier with control points c1, c2.
func CubicBezier(a, c1, c2, b Vec2, segments int) []Vec2 {
	segs := curveSegments(segments)
	pts := make([]Vec2, segs+1)
	for i := range pts {
		t := float64(i) / float64(segs)
		u := 1 - t
		u2 := u * u
		t2 := t * t
		pts[i] = Vec2{
			X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
			Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
		}
	}
	return pts
}

// Wave returns points along a sinusoid laid over the line from a to b.
// frequency is in cycles along the line, phase in radians.
func Wave(a, b Vec2, amplitude, frequency, phase float64, segments int) []Vec2 {
	segs := curveSegments(segments)
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	var px, py float64 // perpendicular unit vector
	if ln > 1e-10 {
		px = -dy / ln
		py = dx / ln
	}
	pts := make([]Vec2, segs+1)
	for i := range pts {
		t := float64(i) / float64(segs)
		off := amplitude * math.Sin(frequency*2*math.Pi*t+phase)
		pts[i] = Vec2{
			X: a.X + dx*t + px*off,
			Y: a.Y + dy*t + py*off,
		}
	}
	return pts
}

// Join concatenates point runs, dropping a run's first point when it repeats
// the previous run's last point.
func Join(parts ...[]Vec2) []Vec2 {
	var out []Vec2
	for _, part := range parts {
		if len(out) > 0 && len(part) > 0 && out[len(out)-1] == part[0] {
			part = part[1:]
		}
		out = append(out, part...)
	}
	return out
}

func curveSegments(n int) int {
	if n <= 0 {
		return defaultCurveSegments
	}
	return n
}

// TrackViewBox is the authoring area of DefaultTrack.
var TrackViewBox = Rect{Width: 1000, Height: 600}

// DefaultTrack returns the stock winding track inside TrackViewBox, running
// from the lower left to the heart at (910, 200).
func DefaultTrack() *Polyline {
	return NewPolyline(Join(
		CubicBezier(Vec2{90, 500}, Vec2{180, 380}, Vec2{260, 560}, Vec2{360, 450}, 0),
		Wave(Vec2{360, 450}, Vec2{600, 380}, 30, 1, 0, 32),
		QuadBezier(Vec2{600, 380}, Vec2{760, 320}, Vec2{700, 230}, 0),
		CubicBezier(Vec2{700, 230}, Vec2{650, 120}, Vec2{860, 90}, Vec2{910, 200}, 0),
	))
}

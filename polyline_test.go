package journey

import (
	"math"
	"testing"
)

func TestPolylineLength(t *testing.T) {
	p := NewPolyline([]Vec2{{0, 0}, {3, 4}, {3, 10}})
	assertNear(t, "length", p.Length(), 11)
}

func TestPolylinePointAtLength(t *testing.T) {
	p := NewPolyline([]Vec2{{0, 0}, {10, 0}, {10, 10}})

	cases := []struct {
		d    float64
		want Vec2
	}{
		{0, Vec2{0, 0}},
		{5, Vec2{5, 0}},
		{10, Vec2{10, 0}},
		{15, Vec2{10, 5}},
		{20, Vec2{10, 10}},
		{-3, Vec2{0, 0}},
		{99, Vec2{10, 10}},
	}
	for _, c := range cases {
		got := p.PointAtLength(c.d)
		if math.Abs(got.X-c.want.X) > epsilon || math.Abs(got.Y-c.want.Y) > epsilon {
			t.Errorf("PointAtLength(%v) = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestPolylineRepeatedVertex(t *testing.T) {
	p := NewPolyline([]Vec2{{0, 0}, {0, 0}, {4, 0}})
	got := p.PointAtLength(2)
	assertNear(t, "x", got.X, 2)
}

func TestPolylineEmptyAndSingle(t *testing.T) {
	empty := NewPolyline(nil)
	if empty.Length() != 0 {
		t.Errorf("empty length = %v, want 0", empty.Length())
	}
	if got := empty.PointAtLength(5); got != (Vec2{}) {
		t.Errorf("empty point = %v, want origin", got)
	}

	single := NewPolyline([]Vec2{{7, 8}})
	if got := single.PointAtLength(5); got != (Vec2{7, 8}) {
		t.Errorf("single point = %v, want (7,8)", got)
	}
}

func TestPolylineTransform(t *testing.T) {
	p := NewPolyline([]Vec2{{0, 0}, {10, 0}})
	q := p.Transform(Scale(2, 1))
	assertNear(t, "scaled length", q.Length(), 20)
	assertNear(t, "original length", p.Length(), 10)
}

func TestCurveBuildersEndpoints(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{100, 50}
	curves := map[string][]Vec2{
		"line":  Line(a, b, 0),
		"quad":  QuadBezier(a, Vec2{50, -40}, b, 0),
		"cubic": CubicBezier(a, Vec2{30, 80}, Vec2{70, -30}, b, 0),
		"wave":  Wave(a, b, 10, 2, 0, 0),
	}
	for name, pts := range curves {
		if len(pts) != defaultCurveSegments+1 {
			t.Errorf("%s: %d points, want %d", name, len(pts), defaultCurveSegments+1)
			continue
		}
		first, last := pts[0], pts[len(pts)-1]
		if first.DistSq(a) > 1e-12 {
			t.Errorf("%s: first = %v, want %v", name, first, a)
		}
		if last.DistSq(b) > 1e-12 {
			t.Errorf("%s: last = %v, want %v", name, last, b)
		}
	}
}

func TestJoinDropsSharedEndpoint(t *testing.T) {
	pts := Join(Line(Vec2{0, 0}, Vec2{10, 0}, 2), Line(Vec2{10, 0}, Vec2{10, 10}, 2))
	if len(pts) != 5 {
		t.Fatalf("joined %d points, want 5", len(pts))
	}
	if pts[2] != (Vec2{10, 0}) {
		t.Errorf("pts[2] = %v, want (10,0)", pts[2])
	}
}

func TestDefaultTrack(t *testing.T) {
	p := DefaultTrack()
	pts := p.Points()
	if pts[0] != (Vec2{90, 500}) || pts[len(pts)-1] != (Vec2{910, 200}) {
		t.Errorf("track runs %v -> %v", pts[0], pts[len(pts)-1])
	}
	for i, v := range pts {
		if !TrackViewBox.Contains(v) {
			t.Fatalf("point %d %v outside the view box", i, v)
		}
	}
	if p.Length() <= 1000 {
		t.Errorf("Length = %v, want a winding track longer than 1000", p.Length())
	}
}

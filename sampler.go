package journey

import "math"

// DefaultSampleResolution is the number of uniform intervals NearestT
// examines. Enough for smooth curves of typical on-screen size.
const DefaultSampleResolution = 120

// Path is a continuous curve sampled by arc length.
type Path interface {
	// Length returns the total arc length. It may be zero while layout is
	// still pending.
	Length() float64
	// PointAtLength returns the point at distance d along the path.
	PointAtLength(d float64) Vec2
}

// Sampler maps normalized progress to path coordinates and resolves
// arbitrary points back to progress.
type Sampler struct {
	path       Path
	resolution int
	length     float64
	stale      bool
}

// NewSampler creates a Sampler over path. resolution <= 0 uses
// DefaultSampleResolution. The length is read lazily on first use.
func NewSampler(path Path, resolution int) *Sampler {
	if resolution <= 0 {
		resolution = DefaultSampleResolution
	}
	return &Sampler{path: path, resolution: resolution, stale: true}
}

// Resolution returns the NearestT sample count.
func (s *Sampler) Resolution() int {
	return s.resolution
}

// Invalidate drops the cached length. The next query re-reads it from the
// path.
func (s *Sampler) Invalidate() {
	s.stale = true
}

// Refresh re-reads the path length immediately and returns it.
func (s *Sampler) Refresh() float64 {
	l := s.path.Length()
	if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
		l = 0
	}
	s.length = l
	s.stale = false
	return l
}

// Length returns the path length, refreshing it if invalidated.
func (s *Sampler) Length() float64 {
	if s.stale {
		return s.Refresh()
	}
	return s.length
}

// PointAt returns the coordinate at progress t. t is clamped to [0, 1] and
// the resulting distance to [0, length]. A zero-length path yields the origin.
func (s *Sampler) PointAt(t float64) Vec2 {
	l := s.Length()
	if l <= 0 {
		return Vec2{}
	}
	d := clamp01(t) * l
	d = math.Max(0, math.Min(l, d))
	return s.path.PointAtLength(d)
}

// NearestT returns the sampled progress whose point is closest to p, which
// must already be in path space. Ties resolve to the lowest t.
func (s *Sampler) NearestT(p Vec2) float64 {
	bestT, bestDist := 0.0, math.Inf(1)
	for i := 0; i <= s.resolution; i++ {
		t := float64(i) / float64(s.resolution)
		d := s.PointAt(t).DistSq(p)
		if d < bestDist {
			bestDist = d
			bestT = t
		}
	}
	return bestT
}

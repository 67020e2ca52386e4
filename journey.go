package journey

import "math"

// Vec2 is a 2D coordinate. Path space has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Lerp interpolates between v and o. t is not clamped.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Payload is the reveal event attached to a stop: the message that is shown
// when the marker reaches it.
type Payload struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Stop is a normalized position on the path with an optional reveal payload.
type Stop struct {
	Position float64  `yaml:"position"`
	Payload  *Payload `yaml:"payload,omitempty"`
}

// StopPoint is a stop resolved to path space. Delivered to LayoutObserver
// whenever layout is (re)derived.
type StopPoint struct {
	Index    int
	Position float64
	Point    Vec2
	Payload  *Payload
}

// SeekRevealPolicy decides what happens to the reveal events of stops that a
// seek jumps over.
type SeekRevealPolicy uint8

const (
	// SeekSkipIntermediate treats a seek as a jump: stops at or before the
	// landing point stay hidden. Stops ahead still reveal when reached.
	SeekSkipIntermediate SeekRevealPolicy = iota
	// SeekReplayIntermediate reveals every payload stop at or before the
	// landing point immediately after the jump.
	SeekReplayIntermediate
)

// String returns the YAML name of the policy.
func (p SeekRevealPolicy) String() string {
	switch p {
	case SeekReplayIntermediate:
		return "replay"
	default:
		return "skip"
	}
}

// PulseScale is the cosmetic marker oscillation for progress t.
func PulseScale(t, amplitude float64) float64 {
	return 1 + math.Sin(t*2*math.Pi)*amplitude
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

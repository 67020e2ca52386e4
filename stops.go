package journey

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidStops is returned when a stop list violates its ordering rules.
var ErrInvalidStops = errors.New("invalid stops")

// Segment is the interval between two consecutive stops.
type Segment struct {
	From, To float64
	// Fraction is To - From: the share of the total duration this segment gets.
	Fraction float64
}

// Sequencer owns the ordered stop list, the current-stop cursor, and the
// per-stop reveal state. The stop list never changes after construction.
type Sequencer struct {
	stops  []Stop
	shown  []bool
	cursor int
}

// NewSequencer validates stops and returns a Sequencer with its cursor at 0.
// Stops must start at 0 without a payload, end at 1, and be strictly
// increasing. The slice is copied.
func NewSequencer(stops []Stop) (*Sequencer, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	return &Sequencer{
		stops: append([]Stop(nil), stops...),
		shown: make([]bool, len(stops)),
	}, nil
}

func validateStops(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStops, len(stops))
	}
	if stops[0].Position != 0 {
		return fmt.Errorf("%w: first stop at %v, want 0", ErrInvalidStops, stops[0].Position)
	}
	if stops[0].Payload != nil {
		return fmt.Errorf("%w: first stop must not carry a payload", ErrInvalidStops)
	}
	if last := stops[len(stops)-1].Position; last != 1 {
		return fmt.Errorf("%w: last stop at %v, want 1", ErrInvalidStops, last)
	}
	for i := 1; i < len(stops); i++ {
		p := stops[i].Position
		if math.IsNaN(p) || p <= stops[i-1].Position {
			return fmt.Errorf("%w: stop %d at %v is not after %v", ErrInvalidStops, i, p, stops[i-1].Position)
		}
	}
	return nil
}

// Len returns the number of stops.
func (q *Sequencer) Len() int { return len(q.stops) }

// Stop returns the stop at index i.
func (q *Sequencer) Stop(i int) Stop { return q.stops[i] }

// Cursor returns the index of the last stop reached.
func (q *Sequencer) Cursor() int { return q.cursor }

// AtEnd reports whether the cursor is on the terminal stop.
func (q *Sequencer) AtEnd() bool { return q.cursor == len(q.stops)-1 }

// Shown reports whether the payload of stop i has been revealed.
func (q *Sequencer) Shown(i int) bool { return q.shown[i] }

// CurrentSegment returns the segment from the cursor's stop to the next one.
// Returns false when the cursor is already on the terminal stop.
func (q *Sequencer) CurrentSegment() (Segment, bool) {
	if q.AtEnd() {
		return Segment{}, false
	}
	from := q.stops[q.cursor].Position
	to := q.stops[q.cursor+1].Position
	return Segment{From: from, To: to, Fraction: to - from}, true
}

// Advance moves the cursor to the next stop and returns that stop's payload
// if this is the first time it is revealed. At the terminal stop Advance is
// a no-op.
func (q *Sequencer) Advance() (*Payload, bool) {
	if q.AtEnd() {
		return nil, false
	}
	q.cursor++
	return q.reveal(q.cursor)
}

// AdvanceThrough moves the cursor over every stop at or before t and returns
// the payloads revealed on the way, in stop order.
func (q *Sequencer) AdvanceThrough(t float64) []*Payload {
	var out []*Payload
	for !q.AtEnd() && q.stops[q.cursor+1].Position <= t {
		if p, ok := q.Advance(); ok {
			out = append(out, p)
		}
	}
	return out
}

// RevealAhead reveals payloads of stops past the cursor whose position is at
// or before t, without moving the cursor. Used to show a message slightly
// before the marker arrives.
func (q *Sequencer) RevealAhead(t float64) []*Payload {
	var out []*Payload
	for i := q.cursor + 1; i < len(q.stops) && q.stops[i].Position <= t; i++ {
		if p, ok := q.reveal(i); ok {
			out = append(out, p)
		}
	}
	return out
}

// RevealThrough reveals every payload stop at or before the cursor that is
// still hidden.
func (q *Sequencer) RevealThrough() []*Payload {
	var out []*Payload
	for i := 0; i <= q.cursor; i++ {
		if p, ok := q.reveal(i); ok {
			out = append(out, p)
		}
	}
	return out
}

// ResetTo jumps the cursor to the highest stop at or before t and returns
// the new cursor. No reveal state changes.
func (q *Sequencer) ResetTo(t float64) int {
	t = clamp01(t)
	c := 0
	for i, s := range q.stops {
		if s.Position <= t {
			c = i
		}
	}
	q.cursor = c
	return c
}

// Rewind moves the cursor back to the first stop and hides every payload.
func (q *Sequencer) Rewind() {
	q.cursor = 0
	clear(q.shown)
}

func (q *Sequencer) reveal(i int) (*Payload, bool) {
	p := q.stops[i].Payload
	if p == nil || q.shown[i] {
		return nil, false
	}
	q.shown[i] = true
	return p, true
}

// SegmentDuration scales total by the segment's fraction, floored at floor.
func SegmentDuration(seg Segment, total, floor time.Duration) time.Duration {
	return max(floor, time.Duration(seg.Fraction*float64(total)))
}

// SeekDuration scales total by the fraction remaining after t, floored at floor.
func SeekDuration(t float64, total, floor time.Duration) time.Duration {
	return max(floor, time.Duration((1-clamp01(t))*float64(total)))
}

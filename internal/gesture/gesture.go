// Package gesture turns absolute pointer positions into discrete
// forward/backward steps, like a slider swiped with a finger.
package gesture

import "iter"

// DefaultThreshold is the displacement that must be exceeded for a pulse.
const DefaultThreshold = 20

// Pulse is the outcome of one sample.
type Pulse int

const (
	None Pulse = iota
	Forward
	Backward
)

func (p Pulse) String() string {
	switch p {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Sample is one pointer reading. Inactive samples mean the pointer is out of
// proximity and carry no position.
type Sample struct {
	Active bool
	Pos    int
}

// Active returns an in-proximity sample at pos.
func Active(pos int) Sample { return Sample{Active: true, Pos: pos} }

// Inactive returns an out-of-proximity sample.
func Inactive() Sample { return Sample{} }

// Decoder remembers a baseline position and emits a pulse once the pointer
// has moved further than the threshold from it. After a pulse the baseline is
// dropped, so the next sample starts a fresh measurement instead of
// accumulating.
type Decoder struct {
	threshold   int
	baseline    int
	hasBaseline bool
}

// NewDecoder returns a decoder; a non-positive threshold uses DefaultThreshold.
func NewDecoder(threshold int) *Decoder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Decoder{threshold: threshold}
}

// Threshold returns the configured displacement threshold.
func (d *Decoder) Threshold() int { return d.threshold }

// Reset forgets the baseline.
func (d *Decoder) Reset() {
	d.hasBaseline = false
	d.baseline = 0
}

// Feed consumes one sample.
func (d *Decoder) Feed(s Sample) Pulse {
	if !s.Active {
		d.Reset()
		return None
	}
	if !d.hasBaseline {
		d.baseline = s.Pos
		d.hasBaseline = true
		return None
	}
	delta := s.Pos - d.baseline
	switch {
	case delta > d.threshold:
		d.Reset()
		return Forward
	case delta < -d.threshold:
		d.Reset()
		return Backward
	default:
		return None
	}
}

// Pulses lazily decodes samples, yielding one pulse per sample.
func (d *Decoder) Pulses(samples iter.Seq[Sample]) iter.Seq[Pulse] {
	return func(yield func(Pulse) bool) {
		for s := range samples {
			if !yield(d.Feed(s)) {
				return
			}
		}
	}
}

package curve

// Concat plays curves back to back. Its endpoint is the last segment's
// endpoint; an empty concatenation has endpoint 0.
type Concat struct {
	segments []Curve
}

// NewConcat returns the sequential composition of the given curves.
func NewConcat(segments ...Curve) Concat {
	s := make([]Curve, len(segments))
	copy(s, segments)
	return Concat{segments: s}
}

// Then returns a new concatenation with more segments appended.
func (c Concat) Then(segments ...Curve) Concat {
	s := make([]Curve, 0, len(c.segments)+len(segments))
	s = append(s, c.segments...)
	s = append(s, segments...)
	return Concat{segments: s}
}

func (c Concat) Duration() float64 {
	total := 0.0
	for _, seg := range c.segments {
		total += seg.Duration()
	}
	return total
}

// NumSamples sums the per-segment sample counts, so it always matches the
// flattened length even when per-segment rounding differs from rounding
// the total duration.
func (c Concat) NumSamples(sampleRate float64) int {
	total := 0
	for _, seg := range c.segments {
		total += seg.NumSamples(sampleRate)
	}
	return total
}

func (c Concat) Flatten(sampleRate float64) []float64 {
	out := make([]float64, 0, c.NumSamples(sampleRate))
	for _, seg := range c.segments {
		out = append(out, seg.Flatten(sampleRate)...)
	}
	return out
}

func (c Concat) Endpoint() float64 {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[len(c.segments)-1].Endpoint()
}

package tween

import "math"

// TimingSegment is a sub-range [From, To] of a total duration, expressed as
// fractions of that duration.
type TimingSegment struct {
	From float64
	To   float64
}

// Common timing segments.
var (
	FirstQuarter       = TimingSegment{0.00, 0.25}
	SecondQuarter      = TimingSegment{0.25, 0.50}
	ThirdQuarter       = TimingSegment{0.50, 0.75}
	FourthQuarter      = TimingSegment{0.75, 1.00}
	FirstHalf          = TimingSegment{0.00, 0.50}
	MiddleHalf         = TimingSegment{0.25, 0.75}
	SecondHalf         = TimingSegment{0.50, 1.00}
	FirstThreeQuarters = TimingSegment{0.00, 0.75}
	LastThreeQuarters  = TimingSegment{0.25, 1.00}
	Complete           = TimingSegment{0.00, 1.00}
)

// StartDelay gets the delay in milliseconds before the segment begins.
func (s TimingSegment) StartDelay(totalMs int64) int64 {
	return int64(math.Round(s.From * float64(totalMs)))
}

// Duration gets the length in milliseconds of the segment.
func (s TimingSegment) Duration(totalMs int64) int64 {
	return int64(math.Round((s.To - s.From) * float64(totalMs)))
}

func (s TimingSegment) valid() bool {
	return 0 <= s.From && s.From <= s.To && s.To <= 1
}

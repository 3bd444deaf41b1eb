package formation

import "math"

// Emergence evaluates the piecewise lifecycle curve at the given progress
// (age/lifespan). Three conceptual phases:
//
//	emerging   progress < EmergeEnd        (progress/EmergeEnd)^RiseExponent
//	sustained  EmergeEnd..DissolveStart    exactly 1
//	dissolving progress > DissolveStart    1 - ((p-DS)/(1-DS))^FadeExponent
//
// The result is clamped to [0,1]; progress past end of life keeps returning 0
// so an overrunning instance dissolves instead of popping.
func (p CurveParams) Emergence(progress float64) float64 {
	switch {
	case progress <= 0:
		return 0
	case progress < p.EmergeEnd:
		return math.Pow(progress/p.EmergeEnd, p.RiseExponent)
	case progress <= p.DissolveStart:
		return 1
	default:
		e := 1 - math.Pow((progress-p.DissolveStart)/(1-p.DissolveStart), p.FadeExponent)
		return Clamp01(e)
	}
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

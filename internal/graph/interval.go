package graph

import (
	"graphite/internal/value"
)

// Interval is a plotting span determined by its endpoints.
type Interval struct {
	S, E float64
}

// DefaultInterval is the initial x-axis span.
func DefaultInterval() Interval {
	return Interval{S: -10, E: 10}
}

// Len returns the length of the interval.
func (iv Interval) Len() float64 {
	return iv.E - iv.S
}

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 {
	return (iv.S + iv.E) * 0.5
}

// Zoom returns the interval scaled by the given factor around its midpoint.
func (iv Interval) Zoom(scale float64) Interval {
	delta := iv.Len() * 0.5 * scale
	mid := iv.Mid()
	return Interval{S: mid - delta, E: mid + delta}
}

// RelShift returns the interval shifted by step times its own length.
func (iv Interval) RelShift(step float64) Interval {
	return iv.AbsShift(iv.Len() * step)
}

// AbsShift returns the interval shifted by step.
func (iv Interval) AbsShift(step float64) Interval {
	return Interval{S: iv.S + step, E: iv.E + step}
}

// Domain returns n evenly spaced samples across the interval, endpoints
// included.
func (iv Interval) Domain(n int) value.Vector {
	return value.Linspace(iv.S, iv.E, n)
}

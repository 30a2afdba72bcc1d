// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"slices"
	"strings"
)

// Interval is a closed range of abscissas on a line, from Min to Max.
// Either bound may be infinite.
type Interval struct {
	Min float64
	Max float64
}

// Iv returns a new [Interval] with the given bounds.
func Iv(mn, mx float64) Interval {
	return Interval{Min: mn, Max: mx}
}

// Set sets the min and max values.
func (iv *Interval) Set(mn, mx float64) {
	iv.Min = mn
	iv.Max = mx
}

// IsEmpty returns true if the interval contains no value:
// Max < Min, or either bound is NaN.
func (iv Interval) IsEmpty() bool {
	return !(iv.Min <= iv.Max)
}

// Contains returns true if the value is within the interval (>= Min and <= Max).
func (iv Interval) Contains(val float64) bool {
	return val >= iv.Min && val <= iv.Max
}

// Size returns Max - Min, which is +Inf for unbounded intervals.
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Midpoint returns the point halfway between Min and Max.
func (iv Interval) Midpoint() float64 {
	return 0.5 * (iv.Max + iv.Min)
}

// Clip clips the given value within the Min / Max range.
// Note: a NaN will remain as a NaN.
func (iv Interval) Clip(val float64) float64 {
	if val < iv.Min {
		return iv.Min
	}
	if val > iv.Max {
		return iv.Max
	}
	return val
}

// Fit adjusts Min and Max to include the given value,
// returning true if an adjustment was needed.
func (iv *Interval) Fit(val float64) bool {
	adj := false
	if val < iv.Min {
		iv.Min = val
		adj = true
	}
	if val > iv.Max {
		iv.Max = val
		adj = true
	}
	return adj
}

func (iv Interval) String() string {
	return "[" + fstr(iv.Min) + ", " + fstr(iv.Max) + "]"
}

// Intervals is a set of abscissas, represented as sorted, disjoint,
// non-touching intervals. The nil value is the empty set.
// Use [NewIntervals] to build a normalized set.
type Intervals []Interval

// NewIntervals returns the normalized union of the given intervals:
// empty intervals are dropped, the rest are sorted and merged where
// they overlap or touch.
func NewIntervals(ivs ...Interval) Intervals {
	var res Intervals
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			res = append(res, iv)
		}
	}
	if len(res) < 2 {
		return res
	}
	slices.SortFunc(res, func(a, b Interval) int {
		switch {
		case a.Min < b.Min:
			return -1
		case a.Min > b.Min:
			return 1
		}
		return 0
	})
	merged := res[:1]
	for _, iv := range res[1:] {
		last := &merged[len(merged)-1]
		if iv.Min <= last.Max {
			last.Max = math.Max(last.Max, iv.Max)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// FullIntervals returns the set of all abscissas, (-Inf, +Inf).
func FullIntervals() Intervals {
	return Intervals{{Min: math.Inf(-1), Max: math.Inf(1)}}
}

// Union returns the union of the two sets.
func Union(a, b Intervals) Intervals {
	all := make([]Interval, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return NewIntervals(all...)
}

// Complement returns the closure of the set of abscissas not in ivs,
// which must be normalized. Shared bounds belong to both sets.
func (ivs Intervals) Complement() Intervals {
	var res Intervals
	prev := math.Inf(-1)
	for _, iv := range ivs {
		if iv.Min > prev {
			res = append(res, Interval{Min: prev, Max: iv.Min})
		}
		prev = iv.Max
	}
	if prev < math.Inf(1) {
		res = append(res, Interval{Min: prev, Max: math.Inf(1)})
	}
	return res
}

// Contains returns true if the value is within one of the intervals.
func (ivs Intervals) Contains(val float64) bool {
	i, _ := slices.BinarySearchFunc(ivs, val, func(iv Interval, v float64) int {
		switch {
		case iv.Max < v:
			return -1
		case iv.Min > v:
			return 1
		}
		return 0
	})
	return i < len(ivs) && ivs[i].Contains(val)
}

// Size returns the total size of the intervals.
func (ivs Intervals) Size() float64 {
	sz := 0.0
	for _, iv := range ivs {
		sz += iv.Size()
	}
	return sz
}

// IsEmpty returns true if the set contains no interval.
func (ivs Intervals) IsEmpty() bool {
	return len(ivs) == 0
}

func (ivs Intervals) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, iv := range ivs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(iv.String())
	}
	b.WriteString("}")
	return b.String()
}

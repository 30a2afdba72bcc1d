// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Embedding maps points of a space of type V to and from the 1D
// abscissa coordinate of a line in that space. [Line2] and [Line3]
// are embeddings.
type Embedding[V any] interface {
	// Abscissa returns the abscissa of the projection of the point on the line.
	Abscissa(point V) float64

	// PointAt returns the point of the line at the given abscissa.
	PointAt(abscissa float64) V
}

// Segment is a part of a line between a Start and an End point.
// Half-infinite and whole-line segments have infinite coordinates.
type Segment[V any] struct {
	Start V
	End   V
}

// SubLine is the part of a line covered by a set of abscissa intervals.
type SubLine[V any] struct {
	// Line is the underlying line.
	Line Embedding[V]

	// Remaining are the abscissa intervals of the line that belong to the sub-line.
	Remaining Intervals
}

// NewSubLine returns a new sub-line of the given line, covering the given intervals.
func NewSubLine[V any](line Embedding[V], remaining Intervals) SubLine[V] {
	return SubLine[V]{Line: line, Remaining: remaining}
}

// WholeLine returns the sub-line covering the entire line.
func WholeLine[V any](line Embedding[V]) SubLine[V] {
	return NewSubLine(line, FullIntervals())
}

// NewSubLine3 returns the sub-line of 3D points between start and end.
func NewSubLine3(start, end r3.Vec) (SubLine[r3.Vec], error) {
	line, err := NewLine3FromPoints(start, end)
	if err != nil {
		return SubLine[r3.Vec]{}, err
	}
	return NewSubLine[r3.Vec](line, NewIntervals(Iv(line.Abscissa(start), line.Abscissa(end)))), nil
}

// NewSubLine2 returns the sub-line of 2D points between start and end.
func NewSubLine2(start, end r2.Vec) (SubLine[r2.Vec], error) {
	line, err := NewLine2FromPoints(start, end)
	if err != nil {
		return SubLine[r2.Vec]{}, err
	}
	return NewSubLine[r2.Vec](line, NewIntervals(Iv(line.Abscissa(start), line.Abscissa(end)))), nil
}

// Segments returns the segments of the sub-line, in increasing abscissa order.
// Infinite interval bounds map to points at infinity; coordinates along
// which the line does not move are NaN at infinity.
func (sl SubLine[V]) Segments() []Segment[V] {
	segs := make([]Segment[V], 0, len(sl.Remaining))
	for _, iv := range sl.Remaining {
		segs = append(segs, Segment[V]{Start: sl.Line.PointAt(iv.Min), End: sl.Line.PointAt(iv.Max)})
	}
	return segs
}

// Length returns the total length of the sub-line.
func (sl SubLine[V]) Length() float64 {
	return sl.Remaining.Size()
}

// Contains returns true if the projection of the point on the line
// falls within the sub-line. It does not check that the point is on the line.
func (sl SubLine[V]) Contains(point V) bool {
	return sl.Remaining.Contains(sl.Line.Abscissa(point))
}

// Reverse returns the same sub-line traversed in the opposite direction:
// the line is reverted and the intervals mirrored, so that segments
// come out in the opposite order with swapped end points.
func (sl SubLine[V]) Reverse() SubLine[V] {
	ivs := make([]Interval, len(sl.Remaining))
	for i, iv := range sl.Remaining {
		ivs[i] = Interval{Min: -iv.Max, Max: -iv.Min}
	}
	return NewSubLine(revert(sl.Line), NewIntervals(ivs...))
}

// revert returns the reverted line of the embedding. Lines with a Revert
// method are reverted directly; other embeddings are wrapped.
func revert[V any](e Embedding[V]) Embedding[V] {
	switch l := any(e).(type) {
	case Line3:
		if rl, ok := any(l.Revert()).(Embedding[V]); ok {
			return rl
		}
	case Line2:
		if rl, ok := any(l.Revert()).(Embedding[V]); ok {
			return rl
		}
	case reverted[V]:
		return l.Embedding
	}
	return reverted[V]{e}
}

// reverted is an [Embedding] with negated abscissas.
type reverted[V any] struct {
	Embedding[V]
}

func (r reverted[V]) Abscissa(point V) float64 {
	return -r.Embedding.Abscissa(point)
}

func (r reverted[V]) PointAt(abscissa float64) V {
	return r.Embedding.PointAt(-abscissa)
}

// Bounds3 returns the box enclosing all the segment end points of the
// sub-line. End points with NaN coordinates are skipped, and the box
// extends to infinity for unbounded segments.
func Bounds3(sl SubLine[r3.Vec]) Box3 {
	b := B3Empty()
	for _, s := range sl.Segments() {
		for _, p := range []r3.Vec{s.Start, s.End} {
			if !IsNaN3(p) {
				b.ExpandByPoint(p)
			}
		}
	}
	return b
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"

	"cogentcore.org/geom/base/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Line2 represents an oriented infinite line in the 2D plane,
// with the same abscissa convention as [Line3]: abscissa 0 is the
// point of the line closest to the coordinate origin.
type Line2 struct {
	direction r2.Vec
	origin    r2.Vec
}

// NewLine2 returns a new line through the given point with the given
// direction. A zero direction results in an error wrapping [ErrZeroNorm].
func NewLine2(point, direction r2.Vec) (Line2, error) {
	norm := r2.Norm(direction)
	if norm == 0 {
		return Line2{}, errors.Errorf("math64.NewLine2: direction %v: %w", direction, ErrZeroNorm)
	}
	dir := r2.Scale(1/norm, direction)
	return Line2{
		direction: dir,
		origin:    r2.Sub(point, r2.Scale(r2.Dot(point, dir), dir)),
	}, nil
}

// NewLine2FromPoints returns a new line going through start and then end.
func NewLine2FromPoints(start, end r2.Vec) (Line2, error) {
	return NewLine2(start, r2.Sub(end, start))
}

// Direction returns the unit direction vector of the line.
func (l Line2) Direction() r2.Vec {
	return l.direction
}

// Origin returns the point of the line closest to the coordinate origin.
func (l Line2) Origin() r2.Vec {
	return l.origin
}

// Revert returns a line with the same points and the opposite direction.
func (l Line2) Revert() Line2 {
	return Line2{direction: r2.Scale(-1, l.direction), origin: l.origin}
}

// Abscissa returns the abscissa of the projection of the given point on the line.
func (l Line2) Abscissa(point r2.Vec) float64 {
	return r2.Dot(r2.Sub(point, l.origin), l.direction)
}

// PointAt returns the point of the line at the given abscissa.
func (l Line2) PointAt(abscissa float64) r2.Vec {
	return r2.Add(l.origin, r2.Scale(abscissa, l.direction))
}

// Offset returns the signed distance of the point from the line,
// positive on the left side when looking along the direction.
func (l Line2) Offset(point r2.Vec) float64 {
	return r2.Cross(l.direction, r2.Sub(point, l.origin))
}

// DistanceToPoint returns the orthogonal distance between the line and the point.
func (l Line2) DistanceToPoint(point r2.Vec) float64 {
	return math.Abs(l.Offset(point))
}

// Contains returns true if the given point is within [ContainsTol] of the line.
func (l Line2) Contains(point r2.Vec) bool {
	return l.DistanceToPoint(point) < ContainsTol
}

// ClosestPointToPoint returns the point of the line that is
// closest to the given point.
func (l Line2) ClosestPointToPoint(point r2.Vec) r2.Vec {
	return l.PointAt(l.Abscissa(point))
}

// IsSimilarTo returns true if the two lines contain the same points,
// regardless of their directions.
func (l Line2) IsSimilarTo(o Line2) bool {
	sin := math.Abs(r2.Cross(l.direction, o.direction))
	return sin < AngleTol && l.Contains(o.origin)
}

// Intersection returns the intersection point of the two lines,
// and false if they are parallel.
func (l Line2) Intersection(o Line2) (r2.Vec, bool) {
	d := r2.Cross(l.direction, o.direction)
	if math.Abs(d) < Epsilon {
		return r2.Vec{}, false
	}
	t := r2.Cross(r2.Sub(o.origin, l.origin), o.direction) / d
	return l.PointAt(t), true
}

// String returns the line as origin + t * direction.
func (l Line2) String() string {
	return "Line2{origin: " + vecString2(l.origin) + ", direction: " + vecString2(l.direction) + "}"
}

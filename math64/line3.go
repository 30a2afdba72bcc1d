// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"

	"cogentcore.org/geom/base/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Line3 represents an oriented infinite line in 3D space.
//
// Each line has an intrinsic abscissa coordinate along it: abscissa 0 is
// the point of the line closest to the coordinate origin (the orthogonal
// projection of the origin onto the line), and the abscissa increases
// in the line direction.
//
// The zero value is not a valid line; use [NewLine3] or [NewLine3FromPoints].
// Line3 is a plain value: copying it yields an independent line.
// Queries are safe for concurrent use, but [Line3.Reset] must not be
// called concurrently with any other method on the same line.
type Line3 struct {
	// direction is the unit direction vector.
	direction r3.Vec

	// origin is the point of the line closest to the coordinate origin.
	origin r3.Vec
}

// NewLine3 returns a new line passing through the given point
// (any point of the line) with the given direction, which is normalized.
// A direction with a norm of exactly zero results in an error
// wrapping [ErrZeroNorm].
func NewLine3(point, direction r3.Vec) (Line3, error) {
	norm := r3.Norm(direction)
	if norm == 0 {
		return Line3{}, errors.Errorf("math64.NewLine3: direction %v: %w", direction, ErrZeroNorm)
	}
	dir := r3.Scale(1/norm, direction)
	return Line3{
		direction: dir,
		origin:    r3.Sub(point, r3.Scale(r3.Dot(point, dir), dir)),
	}, nil
}

// NewLine3FromPoints returns a new line going through p1 and then p2.
// Coincident points result in an error wrapping [ErrZeroNorm].
func NewLine3FromPoints(p1, p2 r3.Vec) (Line3, error) {
	return NewLine3(p1, r3.Sub(p2, p1))
}

// Reset resets the line as if built by [NewLine3] from the given point
// and direction. If the direction has a zero norm, an error is returned
// and the line is left unchanged.
func (l *Line3) Reset(point, direction r3.Vec) error {
	nl, err := NewLine3(point, direction)
	if err != nil {
		return err
	}
	*l = nl
	return nil
}

// Direction returns the unit direction vector of the line.
func (l Line3) Direction() r3.Vec {
	return l.direction
}

// Origin returns the point of the line closest to the coordinate origin,
// which is the point at abscissa 0.
func (l Line3) Origin() r3.Vec {
	return l.origin
}

// Revert returns a line with the same points and the opposite direction.
func (l Line3) Revert() Line3 {
	return Line3{direction: r3.Scale(-1, l.direction), origin: l.origin}
}

// Equal returns true if both lines have exactly the same direction
// and origin. Use [Line3.IsSimilarTo] to compare the point sets.
func (l Line3) Equal(o Line3) bool {
	return l.direction == o.direction && l.origin == o.origin
}

// Abscissa returns the abscissa of the orthogonal projection of the
// given point onto the line. It is defined for any point, but
// discards the offset of points that are not on the line.
func (l Line3) Abscissa(point r3.Vec) float64 {
	return r3.Dot(r3.Sub(point, l.origin), l.direction)
}

// PointAt returns the point of the line at the given abscissa.
// For points p on the line, PointAt(Abscissa(p)) == p.
func (l Line3) PointAt(abscissa float64) r3.Vec {
	return r3.Add(l.origin, r3.Scale(abscissa, l.direction))
}

// IsSimilarTo returns true if the two lines contain the same points,
// regardless of their directions, which may be opposite.
func (l Line3) IsSimilarTo(o Line3) bool {
	angle := angle3(l.direction, o.direction, 1)
	return (angle < AngleTol || angle > math.Pi-AngleTol) && l.Contains(o.origin)
}

// Contains returns true if the given point is within [ContainsTol] of the line.
func (l Line3) Contains(point r3.Vec) bool {
	return l.DistanceToPoint(point) < ContainsTol
}

// DistanceToPoint returns the orthogonal distance between the line
// and the given point.
func (l Line3) DistanceToPoint(point r3.Vec) float64 {
	d := r3.Sub(point, l.origin)
	n := r3.Sub(d, r3.Scale(r3.Dot(d, l.direction), l.direction))
	return r3.Norm(n)
}

// DistanceToLine returns the shortest distance between the two lines.
// Lines whose directions have a cross product norm below [SafeMin]
// are treated as parallel.
func (l Line3) DistanceToLine(o Line3) float64 {
	normal := r3.Cross(l.direction, o.direction)
	n := r3.Norm(normal)
	if n < SafeMin {
		// parallel
		return l.DistanceToPoint(o.origin)
	}
	// signed separation of the two parallel planes containing the lines
	offset := r3.Dot(r3.Sub(o.origin, l.origin), normal) / n
	return math.Abs(offset)
}

// ClosestPointToLine returns the point of this line closest to the other line.
// For parallel lines, where every point is equally close, it returns
// the [Line3.Origin] of this line.
func (l Line3) ClosestPointToLine(o Line3) r3.Vec {
	cos := r3.Dot(l.direction, o.direction)
	n := 1 - cos*cos
	if n < Epsilon {
		return l.origin
	}
	delta0 := r3.Sub(o.origin, l.origin)
	a := r3.Dot(delta0, l.direction)
	b := r3.Dot(delta0, o.direction)
	return l.PointAt((a - b*cos) / n)
}

// Intersection returns the intersection point of the two lines,
// and false if they do not intersect (skew or distinct parallel lines).
func (l Line3) Intersection(o Line3) (r3.Vec, bool) {
	closest := l.ClosestPointToLine(o)
	if !o.Contains(closest) {
		return r3.Vec{}, false
	}
	return closest, true
}

// String returns the line as origin + t * direction.
func (l Line3) String() string {
	return "Line3{origin: " + vecString3(l.origin) + ", direction: " + vecString3(l.direction) + "}"
}

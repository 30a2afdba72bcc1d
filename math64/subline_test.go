// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSubLineEndPoints(t *testing.T) {
	sub, err := NewSubLine2(Vec2(-1, -7), Vec2(7, -1))
	require.NoError(t, err)
	segs := sub.Segments()
	require.Len(t, segs, 1)
	tolAssertEqualVector2(t, Vec2(-1, -7), segs[0].Start)
	tolAssertEqualVector2(t, Vec2(7, -1), segs[0].End)
	tolassert.EqualTol(t, 10, sub.Length(), standardTol)
	assert.True(t, sub.Contains(Vec2(3, -4)))
	assert.False(t, sub.Contains(Vec2(15, 5)))

	_, err = NewSubLine2(Vec2(1, 1), Vec2(1, 1))
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestSubLineNoEndPoints(t *testing.T) {
	line := newTestLine2(t, Vec2(-1, 7), Vec2(7, 1))
	segs := WholeLine[r2.Vec](line).Segments()
	require.Len(t, segs, 1)
	assert.True(t, math.IsInf(segs[0].Start.X, -1))
	assert.True(t, math.IsInf(segs[0].Start.Y, 1))
	assert.True(t, math.IsInf(segs[0].End.X, 1))
	assert.True(t, math.IsInf(segs[0].End.Y, -1))
}

func TestSubLineNoSegments(t *testing.T) {
	line := newTestLine2(t, Vec2(-1, -7), Vec2(7, -1))
	empty := NewSubLine[r2.Vec](line, FullIntervals().Complement())
	assert.Len(t, empty.Segments(), 0)
	assert.Equal(t, 0.0, empty.Length())
}

func TestSubLineSeveralSegments(t *testing.T) {
	line := newTestLine2(t, Vec2(-1, -7), Vec2(7, -1))
	twoSubs := NewSubLine[r2.Vec](line, Union(NewIntervals(Iv(1, 2)), NewIntervals(Iv(3, 4))))
	segs := twoSubs.Segments()
	require.Len(t, segs, 2)
	tolAssertEqualVector2(t, line.PointAt(1), segs[0].Start)
	tolAssertEqualVector2(t, line.PointAt(4), segs[1].End)
	tolassert.EqualTol(t, 2, twoSubs.Length(), standardTol)
}

func TestSubLineHalfInfinite(t *testing.T) {
	line := newTestLine2(t, Vec2(-1, -7), Vec2(7, -1))
	neg := NewSubLine[r2.Vec](line, NewIntervals(Iv(math.Inf(-1), 0)))
	segs := neg.Segments()
	require.Len(t, segs, 1)
	assert.True(t, math.IsInf(segs[0].Start.X, -1))
	assert.True(t, math.IsInf(segs[0].Start.Y, -1))
	tolAssertEqualVector2(t, Vec2(3, -4), segs[0].End)

	pos := NewSubLine[r2.Vec](line, NewIntervals(Iv(0, math.Inf(1))))
	segs = pos.Segments()
	require.Len(t, segs, 1)
	tolAssertEqualVector2(t, Vec2(3, -4), segs[0].Start)
	assert.True(t, math.IsInf(segs[0].End.X, 1))
	assert.True(t, math.IsInf(segs[0].End.Y, 1))
}

func TestSubLine3(t *testing.T) {
	p1 := Vec3(-1, -7, 2)
	p2 := Vec3(7, -1, 2)
	sub, err := NewSubLine3(p1, p2)
	require.NoError(t, err)
	segs := sub.Segments()
	require.Len(t, segs, 1)
	tolAssertEqualVector3(t, p1, segs[0].Start)
	tolAssertEqualVector3(t, p2, segs[0].End)
	tolassert.EqualTol(t, 10, sub.Length(), standardTol)

	line := errors.Must1(NewLine3FromPoints(p1, p2))
	half := NewSubLine[r3.Vec](line, NewIntervals(Iv(0, math.Inf(1))))
	segs = half.Segments()
	require.Len(t, segs, 1)
	tolAssertEqualVector3(t, Vec3(3, -4, 2), segs[0].Start)
	assert.True(t, math.IsInf(segs[0].End.X, 1))
	assert.True(t, math.IsInf(segs[0].End.Y, 1))
	// the line does not move along z
	assert.True(t, math.IsNaN(segs[0].End.Z))

	_, err = NewSubLine3(p1, p1)
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestSubLineReverse(t *testing.T) {
	sub, err := NewSubLine2(Vec2(-1, -7), Vec2(7, -1))
	require.NoError(t, err)
	rev := sub.Reverse()
	assert.IsType(t, Line2{}, rev.Line)
	segs := rev.Segments()
	require.Len(t, segs, 1)
	tolAssertEqualVector2(t, Vec2(7, -1), segs[0].Start)
	tolAssertEqualVector2(t, Vec2(-1, -7), segs[0].End)

	line := errors.Must1(NewLine3FromPoints(Vec3(0, 0, 0), Vec3(0, 0, 1)))
	two := NewSubLine[r3.Vec](line, NewIntervals(Iv(1, 2), Iv(3, 4)))
	rsegs := two.Reverse().Segments()
	require.Len(t, rsegs, 2)
	tolAssertEqualVector3(t, Vec3(0, 0, 4), rsegs[0].Start)
	tolAssertEqualVector3(t, Vec3(0, 0, 3), rsegs[0].End)
	tolAssertEqualVector3(t, Vec3(0, 0, 1), rsegs[1].End)
	assert.Equal(t, line.Revert(), two.Reverse().Line)
}

// axisX is an embedding of the x axis that is not a [Line3].
type axisX struct{}

func (axisX) Abscissa(p r3.Vec) float64 { return p.X }

func (axisX) PointAt(a float64) r3.Vec { return Vec3(a, 0, 0) }

func TestSubLineReverseEmbedding(t *testing.T) {
	sub := NewSubLine[r3.Vec](axisX{}, NewIntervals(Iv(-1, 2)))
	rev := sub.Reverse()
	assert.Equal(t, -2.0, rev.Line.Abscissa(Vec3(2, 5, 5)))
	segs := rev.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, Vec3(2, 0, 0), segs[0].Start)
	assert.Equal(t, Vec3(-1, 0, 0), segs[0].End)

	back := rev.Reverse()
	assert.Equal(t, axisX{}, back.Line)
	assert.Equal(t, sub.Segments(), back.Segments())
}

func TestBounds3(t *testing.T) {
	sub, err := NewSubLine3(Vec3(1, 2, 3), Vec3(4, -1, 0))
	require.NoError(t, err)
	b := Bounds3(sub)
	tolAssertEqualVector3(t, Vec3(1, -1, 0), b.Min)
	tolAssertEqualVector3(t, Vec3(4, 2, 3), b.Max)

	// NaN end points are skipped
	xLine := errors.Must1(NewLine3(Vec3(0, 1, 2), Vec3(1, 0, 0)))
	assert.True(t, Bounds3(WholeLine[r3.Vec](xLine)).IsEmpty())

	diag := errors.Must1(NewLine3(Vec3(0, 0, 0), Vec3(1, 1, 1)))
	db := Bounds3(WholeLine[r3.Vec](diag))
	assert.False(t, db.IsEmpty())
	assert.True(t, db.ContainsPoint(Vec3(-1e300, 5, 1e300)))
}

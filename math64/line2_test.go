// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ Embedding[r2.Vec] = Line2{}

func tolAssertEqualVector2(t *testing.T, vt, va r2.Vec, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol, msgAndArgs...)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol, msgAndArgs...)
}

func newTestLine2(t *testing.T, start, end r2.Vec) Line2 {
	t.Helper()
	l, err := NewLine2FromPoints(start, end)
	require.NoError(t, err)
	return l
}

func TestLine2(t *testing.T) {
	st := Vec2(6, 12)
	ed := Vec2(12, 24)
	l := newTestLine2(t, st, ed)

	tolassert.EqualTol(t, 1, r2.Norm(l.Direction()), standardTol)
	tolAssertEqualVector2(t, Vec2(0, 0), l.Origin())
	tolAssertEqualVector2(t, st, l.ClosestPointToPoint(st))
	tolAssertEqualVector2(t, ed, l.ClosestPointToPoint(ed))
	tolAssertEqualVector2(t, Vec2(7.8, 15.6), l.ClosestPointToPoint(r2.Add(st, Vec2(3, 3))))
	// no clamping to the end points, unlike a segment
	tolAssertEqualVector2(t, Vec2(4.8, 9.6), l.ClosestPointToPoint(r2.Sub(st, Vec2(2, 2))))
	tolassert.EqualTol(t, math.Sqrt(180), l.Abscissa(ed)-l.Abscissa(st), standardTol)

	for _, a := range []float64{-3, 0, 0.25, 17} {
		tolassert.EqualTol(t, a, l.Abscissa(l.PointAt(a)), standardTol)
		assert.True(t, l.Contains(l.PointAt(a)))
	}

	_, err := NewLine2FromPoints(st, st)
	assert.ErrorIs(t, err, ErrZeroNorm)
	_, err = NewLine2(st, Vec2(0, 0))
	assert.ErrorIs(t, err, ErrZeroNorm)
}

func TestLine2Origin(t *testing.T) {
	l := newTestLine2(t, Vec2(-1, -7), Vec2(7, -1))
	tolAssertEqualVector2(t, Vec2(0.8, 0.6), l.Direction())
	tolAssertEqualVector2(t, Vec2(3, -4), l.Origin())
	tolassert.EqualTol(t, 0, r2.Dot(l.Origin(), l.Direction()), standardTol)
}

func TestLine2Offset(t *testing.T) {
	l := newTestLine2(t, Vec2(0, 0), Vec2(1, 0))
	tolassert.EqualTol(t, 2, l.Offset(Vec2(0, 2)), standardTol)
	tolassert.EqualTol(t, -3, l.Offset(Vec2(5, -3)), standardTol)
	tolassert.EqualTol(t, 3, l.DistanceToPoint(Vec2(5, -3)), standardTol)
	assert.False(t, l.Contains(Vec2(5, -3)))
	assert.True(t, l.Contains(Vec2(-5, 0)))

	r := l.Revert()
	tolassert.EqualTol(t, -2, r.Offset(Vec2(0, 2)), standardTol)
	assert.Equal(t, l.Origin(), r.Origin())
	assert.Equal(t, r2.Scale(-1, l.Direction()), r.Direction())
}

func TestLine2Intersection(t *testing.T) {
	l1 := newTestLine2(t, Vec2(0, 0), Vec2(1, 1))
	l2 := newTestLine2(t, Vec2(0, 2), Vec2(2, 0))
	p, ok := l1.Intersection(l2)
	require.True(t, ok)
	tolAssertEqualVector2(t, Vec2(1, 1), p)
	p, ok = l2.Intersection(l1)
	require.True(t, ok)
	tolAssertEqualVector2(t, Vec2(1, 1), p)

	l3 := newTestLine2(t, Vec2(0, 1), Vec2(1, 2))
	_, ok = l1.Intersection(l3)
	assert.False(t, ok)
}

func TestLine2Similar(t *testing.T) {
	l1 := newTestLine2(t, Vec2(-1, -7), Vec2(7, -1))
	l2 := newTestLine2(t, Vec2(15, 5), Vec2(-9, -13))
	assert.True(t, l1.IsSimilarTo(l2))
	assert.True(t, l1.IsSimilarTo(l1.Revert()))
	assert.False(t, l1.IsSimilarTo(newTestLine2(t, Vec2(-1, -6), Vec2(7, 0))))
	assert.False(t, l1.IsSimilarTo(newTestLine2(t, Vec2(-1, -7), Vec2(7, 0))))
}

package internal

import (
	"fmt"
	"math"
)

type Orientation int

const (
	Right     Orientation = -1 // clockwise
	Collinear Orientation = 0
	Left      Orientation = 1 // counterclockwise
)

func (o Orientation) String() string {
	switch o {
	case Right:
		return "Right"
	case Collinear:
		return "Collinear"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

type CircleRelation int

const (
	Outside  CircleRelation = -1
	OnCircle CircleRelation = 0
	Inside   CircleRelation = 1
)

func (r CircleRelation) String() string {
	switch r {
	case Outside:
		return "Outside"
	case OnCircle:
		return "OnCircle"
	case Inside:
		return "Inside"
	}
	return fmt.Sprintf("CircleRelation(%d)", int(r))
}

// The two predicates everything else is decided by.
type Predicates interface {
	// Whether c is left of, right of, or on the directed line from a to b.
	Orient(a, b, c Point) Orientation
	// Where d is relative to the circumcircle of the counterclockwise triangle
	// abc.
	InCircle(a, b, c, d Point) CircleRelation
}

// Static error bounds for the float evaluation, from Shewchuk's "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates".
const (
	epsilon      = 1.0 / (1 << 53)
	ccwErrBoundA = (3 + 16*epsilon) * epsilon
	iccErrBoundA = (10 + 96*epsilon) * epsilon
)

// Evaluates in float64 and falls back to exact arithmetic when the result is
// too close to zero to trust.
type AdaptivePredicates struct{}

func (AdaptivePredicates) Orient(a, b, c Point) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight
	if math.IsNaN(det) || det == 0 {
		// Overflow in the products, or a zero that may just be underflow
		return exactOrient(finiteSym(a), finiteSym(b), finiteSym(c))
	}

	var detSum float64
	if detLeft > 0 {
		if detRight <= 0 {
			return orientationOfSign(det)
		}
		detSum = detLeft + detRight
	} else if detLeft < 0 {
		if detRight >= 0 {
			return orientationOfSign(det)
		}
		detSum = -detLeft - detRight
	} else {
		return orientationOfSign(det)
	}

	errBound := ccwErrBoundA * detSum
	if det > errBound || -det > errBound {
		return orientationOfSign(det)
	}
	return exactOrient(finiteSym(a), finiteSym(b), finiteSym(c))
}

func (AdaptivePredicates) InCircle(a, b, c, d Point) CircleRelation {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift

	errBound := iccErrBoundA * permanent
	if det > errBound || -det > errBound {
		return CircleRelation(orientationOfSign(det))
	}
	return exactInCircle(finiteSym(a), finiteSym(b), finiteSym(c), finiteSym(d))
}

// Always exact. Slow, but useful as a reference.
type ExactPredicates struct{}

func (ExactPredicates) Orient(a, b, c Point) Orientation {
	return exactOrient(finiteSym(a), finiteSym(b), finiteSym(c))
}

func (ExactPredicates) InCircle(a, b, c, d Point) CircleRelation {
	return exactInCircle(finiteSym(a), finiteSym(b), finiteSym(c), finiteSym(d))
}

// Package level shorthands using the adaptive predicates.
func Orient(a, b, c Point) Orientation {
	return AdaptivePredicates{}.Orient(a, b, c)
}

func InCircle(a, b, c, d Point) CircleRelation {
	return AdaptivePredicates{}.InCircle(a, b, c, d)
}

func orientationOfSign(det float64) Orientation {
	switch {
	case det > 0:
		return Left
	case det < 0:
		return Right
	}
	return Collinear
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

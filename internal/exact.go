package internal

import "math/big"

// Exact evaluation of the predicate determinants. Coordinates are of the form
// Base + R*Dir, where R is an indeterminate larger than any finite value. For
// input points Dir is zero. For the super-triangle vertices it is one of
// superDirections, which lets the super-triangle behave as if it were
// infinitely far away while still being a real, consistent configuration.
//
// Determinants are polynomials in R with exact coefficients, and the sign of
// the determinant is the sign of the highest degree coefficient that isn't
// zero. float64 values are exactly representable as big.Float, and sums and
// products at MaxPrec are exact.

type symPoint struct {
	Base, Dir Point
}

func finiteSym(p Point) symPoint {
	return symPoint{Base: p}
}

func (s symPoint) isFinite() bool {
	return s.Dir.X == 0 && s.Dir.Y == 0
}

func (s symPoint) coords() (x, y poly) {
	if s.isFinite() {
		return poly{newBigFloat(s.Base.X)}, poly{newBigFloat(s.Base.Y)}
	}
	return poly{newBigFloat(s.Base.X), newBigFloat(s.Dir.X)},
		poly{newBigFloat(s.Base.Y), newBigFloat(s.Dir.Y)}
}

func newBigFloat(f float64) *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec).SetFloat64(f)
}

// Polynomial in R, lowest degree first.
type poly []*big.Float

func (p poly) coeff(i int) *big.Float {
	if i < len(p) {
		return p[i]
	}
	return newBigFloat(0)
}

func (p poly) add(q poly) poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	result := make(poly, n)
	for i := range result {
		result[i] = newBigFloat(0).Add(p.coeff(i), q.coeff(i))
	}
	return result
}

func (p poly) sub(q poly) poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	result := make(poly, n)
	for i := range result {
		result[i] = newBigFloat(0).Sub(p.coeff(i), q.coeff(i))
	}
	return result
}

func (p poly) mul(q poly) poly {
	if len(p) == 0 || len(q) == 0 {
		return poly{}
	}
	result := make(poly, len(p)+len(q)-1)
	for i := range result {
		result[i] = newBigFloat(0)
	}
	product := newBigFloat(0)
	for i, a := range p {
		for j, b := range q {
			product.Mul(a, b)
			result[i+j].Add(result[i+j], product)
		}
	}
	return result
}

// Sign for sufficiently large R.
func (p poly) sign() int {
	for i := len(p) - 1; i >= 0; i-- {
		if s := p[i].Sign(); s != 0 {
			return s
		}
	}
	return 0
}

func exactOrient(a, b, c symPoint) Orientation {
	ax, ay := a.coords()
	bx, by := b.coords()
	cx, cy := c.coords()
	acx := ax.sub(cx)
	bcx := bx.sub(cx)
	acy := ay.sub(cy)
	bcy := by.sub(cy)
	det := acx.mul(bcy).sub(acy.mul(bcx))
	return Orientation(det.sign())
}

func exactInCircle(a, b, c, d symPoint) CircleRelation {
	ax, ay := a.coords()
	bx, by := b.coords()
	cx, cy := c.coords()
	dx, dy := d.coords()

	adx, ady := ax.sub(dx), ay.sub(dy)
	bdx, bdy := bx.sub(dx), by.sub(dy)
	cdx, cdy := cx.sub(dx), cy.sub(dy)

	alift := adx.mul(adx).add(ady.mul(ady))
	blift := bdx.mul(bdx).add(bdy.mul(bdy))
	clift := cdx.mul(cdx).add(cdy.mul(cdy))

	det := alift.mul(bdx.mul(cdy).sub(cdx.mul(bdy))).
		add(blift.mul(cdx.mul(ady).sub(adx.mul(cdy)))).
		add(clift.mul(adx.mul(bdy).sub(bdx.mul(ady))))
	return CircleRelation(det.sign())
}

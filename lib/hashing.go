package lib

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
)

// Domain tags for the three hash-to-scalar derivations. They must stay
// distinct so a scalar derived for one purpose can never stand in for a
// scalar derived for another, even on identical point inputs.
const (
	dsCapsulePoints = "umbral:capsule_points"
	dsPolynomialArg = "umbral:polynomial_arg"
	dsSharedSecret  = "umbral:shared_secret"
)

// hashToScalar absorbs the given points, then the extra bytes, into an XOF
// seeded with the domain tag and picks a scalar from the resulting stream.
func hashToScalar(tag string, extra []byte, points ...kyber.Point) kyber.Scalar {
	xof := SuiTe.XOF([]byte(tag))
	for _, p := range points {
		if _, err := p.MarshalTo(xof); err != nil {
			log.Fatal(err)
		}
	}
	if len(extra) > 0 {
		if _, err := xof.Write(extra); err != nil {
			log.Fatal(err)
		}
	}
	return SuiTe.Scalar().Pick(xof)
}

// hashCapsulePoints binds the two public points of a capsule into the
// scalar used by its self-verification equation.
func hashCapsulePoints(pointE, pointV kyber.Point) kyber.Scalar {
	return hashToScalar(dsCapsulePoints, nil, pointE, pointV)
}

// hashToPolynomialArg maps a fragment to its share coordinate on the
// re-encryption key polynomial.
func hashToPolynomialArg(precursor, pub, dh kyber.Point, id KFragID) kyber.Scalar {
	return hashToScalar(dsPolynomialArg, id, precursor, pub, dh)
}

// hashToSharedSecret derives the session secret that makes the scheme
// non-interactive.
func hashToSharedSecret(precursor, pub, dh kyber.Point) kyber.Scalar {
	return hashToScalar(dsSharedSecret, nil, precursor, pub, dh)
}

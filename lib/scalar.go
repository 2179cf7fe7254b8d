package lib

import (
	"crypto/cipher"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/onet/v3/log"
)

// scalarInv returns the modular inverse of s. The second return value is
// false when s is zero, which has no inverse; callers decide how to degrade.
func scalarInv(s kyber.Scalar) (kyber.Scalar, bool) {
	if s.Equal(SuiTe.Scalar().Zero()) {
		return nil, false
	}
	return SuiTe.Scalar().Inv(s), true
}

// randomNonZeroScalar picks scalars from stream until a non-zero one comes
// up. A zero pick has negligible probability, the loop is there so the
// callers never have to handle a zero.
func randomNonZeroScalar(stream cipher.Stream) kyber.Scalar {
	zero := SuiTe.Scalar().Zero()
	s := SuiTe.Scalar().Pick(stream)
	for s.Equal(zero) {
		s = SuiTe.Scalar().Pick(stream)
	}
	return s
}

// polyEval evaluates the polynomial with the given coefficients, constant
// term first, at x using Horner's rule.
func polyEval(coeffs []kyber.Scalar, x kyber.Scalar) kyber.Scalar {
	res := coeffs[len(coeffs)-1].Clone()
	for i := len(coeffs) - 2; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, coeffs[i])
	}
	return res
}

// marshalPoint converts a kyber.Point to a byte array.
func marshalPoint(p kyber.Point) []byte {
	b, err := p.MarshalBinary()
	if err != nil {
		log.Fatal(err)
	}
	return b
}

// marshalScalar converts a kyber.Scalar to a byte array.
func marshalScalar(s kyber.Scalar) []byte {
	b, err := s.MarshalBinary()
	if err != nil {
		log.Fatal(err)
	}
	return b
}

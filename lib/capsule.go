package lib

import (
	"encoding/base64"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
)

// Capsule is the KEM half of an umbral ciphertext: it encapsulates the
// symmetric secret that encrypted the payload. A capsule is immutable and
// self-verifying, the equation
//
//	g*signature == pointV + pointE*H(pointE, pointV)
//
// holds for every capsule this package hands out.
type Capsule struct {
	pointE    kyber.Point
	pointV    kyber.Point
	signature kyber.Scalar
}

// NewVerifiedCapsule builds a capsule from its three components and checks
// the self-verification equation. It is the only way a capsule coming from
// untrusted input enters the system.
func NewVerifiedCapsule(pointE, pointV kyber.Point, signature kyber.Scalar) (*Capsule, error) {
	c := &Capsule{
		pointE:    pointE.Clone(),
		pointV:    pointV.Clone(),
		signature: signature.Clone(),
	}
	if !c.verify() {
		return nil, ErrCapsuleVerification
	}
	return c, nil
}

func (c *Capsule) verify() bool {
	h := hashCapsulePoints(c.pointE, c.pointV)
	lhs := SuiTe.Point().Mul(c.signature, nil)
	rhs := SuiTe.Point().Add(c.pointV, SuiTe.Point().Mul(h, c.pointE))
	return lhs.Equal(rhs)
}

// Encapsulate generates a fresh capsule for the delegating public key and
// returns it together with the shared secret point that seeds the symmetric
// layer. The same point is later recovered either with the delegating
// secret key (OpenOriginal) or from a threshold of re-encrypted fragments
// (OpenReencrypted).
func Encapsulate(delegating *PublicKey) (*Capsule, kyber.Point) {
	r := randomNonZeroScalar(random.New())
	u := randomNonZeroScalar(random.New())

	pointE := SuiTe.Point().Mul(r, nil)
	pointV := SuiTe.Point().Mul(u, nil)

	h := hashCapsulePoints(pointE, pointV)
	s := SuiTe.Scalar().Add(u, SuiTe.Scalar().Mul(r, h))

	sharedSecret := SuiTe.Point().Mul(SuiTe.Scalar().Add(r, u), delegating.point)

	return &Capsule{pointE: pointE, pointV: pointV, signature: s}, sharedSecret
}

// OpenOriginal recovers the shared secret point with the delegating secret
// key itself.
func (c *Capsule) OpenOriginal(delegating *SecretKey) kyber.Point {
	return SuiTe.Point().Mul(delegating.scalar, SuiTe.Point().Add(c.pointE, c.pointV))
}

// OpenReencrypted recovers the shared secret point from capsule fragments
// produced by at least a threshold of proxies. The fragments must all stem
// from one GenerateKFrags batch and from re-encryptions of this capsule;
// anything else is rejected with one of the Err* sentinels of this package.
func (c *Capsule) OpenReencrypted(receiving *SecretKey, delegating *PublicKey, cfrags []*CapsuleFrag) (kyber.Point, error) {
	if len(cfrags) == 0 {
		return nil, ErrNoCapsuleFrags
	}

	precursor := cfrags[0].precursor
	for _, cf := range cfrags[1:] {
		if !cf.precursor.Equal(precursor) {
			return nil, ErrMismatchedCapsuleFrags
		}
	}

	pub := SuiTe.Point().Mul(receiving.scalar, nil)
	dh := SuiTe.Point().Mul(receiving.scalar, precursor)

	xs := make([]kyber.Scalar, len(cfrags))
	for i, cf := range cfrags {
		xs[i] = hashToPolynomialArg(precursor, pub, dh, cf.kfragID)
	}

	// Shamir reconstruction of the fragments at x = 0.
	ePrime := SuiTe.Point().Null()
	vPrime := SuiTe.Point().Null()
	for i, cf := range cfrags {
		// Two fragments land on the same coordinate only when one was
		// handed in twice or on a hash collision; fail gracefully
		// instead of dividing by zero.
		lambda, ok := lambdaCoeff(xs, i)
		if !ok {
			return nil, ErrRepeatingCapsuleFrags
		}
		ePrime.Add(ePrime, SuiTe.Point().Mul(lambda, cf.pointE1))
		vPrime.Add(vPrime, SuiTe.Point().Mul(lambda, cf.pointV1))
	}

	d := hashToSharedSecret(precursor, pub, dh)
	dInv, ok := scalarInv(d)
	if !ok {
		// A zero digest is not statically impossible here.
		return nil, ErrZeroHash
	}

	h := hashCapsulePoints(c.pointE, c.pointV)
	lhs := SuiTe.Point().Mul(SuiTe.Scalar().Mul(c.signature, dInv), delegating.point)
	rhs := SuiTe.Point().Add(SuiTe.Point().Mul(h, ePrime), vPrime)
	if !lhs.Equal(rhs) {
		return nil, ErrValidationFailed
	}

	return SuiTe.Point().Mul(d, SuiTe.Point().Add(ePrime, vPrime)), nil
}

// lambdaCoeff computes the i-th Lagrange basis coefficient, evaluated at
// zero, for the coordinate set xs. The second return value is false when
// two coordinates coincide and the required difference has no inverse.
func lambdaCoeff(xs []kyber.Scalar, i int) (kyber.Scalar, bool) {
	res := SuiTe.Scalar().One()
	for j := range xs {
		if j == i {
			continue
		}
		inv, ok := scalarInv(SuiTe.Scalar().Sub(xs[j], xs[i]))
		if !ok {
			return nil, false
		}
		res.Mul(res, SuiTe.Scalar().Mul(xs[j], inv))
	}
	return res, true
}

// PointE returns a copy of the capsule's first public point.
func (c *Capsule) PointE() kyber.Point {
	return c.pointE.Clone()
}

// PointV returns a copy of the capsule's second public point.
func (c *Capsule) PointV() kyber.Point {
	return c.pointV.Clone()
}

// Signature returns a copy of the capsule's binding scalar.
func (c *Capsule) Signature() kyber.Scalar {
	return c.signature.Clone()
}

// Equal compares two capsules component-wise.
func (c *Capsule) Equal(other *Capsule) bool {
	return c.pointE.Equal(other.pointE) &&
		c.pointV.Equal(other.pointV) &&
		c.signature.Equal(other.signature)
}

// String returns a short string representation of a capsule.
func (c *Capsule) String() string {
	return fmt.Sprintf("Capsule{%s,%s}", c.pointE.String()[:6], c.pointV.String()[:6])
}

// CapsuleLen returns the fixed serialized size of a capsule.
func CapsuleLen() int {
	return 2*SuiTe.PointLen() + SuiTe.ScalarLen()
}

// ToBytes converts a Capsule to a byte array, pointE then pointV then the
// signature scalar.
func (c *Capsule) ToBytes() []byte {
	b := marshalPoint(c.pointE)
	b = append(b, marshalPoint(c.pointV)...)
	b = append(b, marshalScalar(c.signature)...)
	return b
}

// CapsuleFromBytes converts a byte array to a Capsule, re-running the
// self-verification check. Malformed or inconsistent bytes never yield a
// capsule.
func CapsuleFromBytes(data []byte) (*Capsule, error) {
	if len(data) != CapsuleLen() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCapsuleBytes, CapsuleLen(), len(data))
	}
	plen := SuiTe.PointLen()

	pointE := SuiTe.Point()
	if err := pointE.UnmarshalBinary(data[:plen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleBytes, err)
	}
	pointV := SuiTe.Point()
	if err := pointV.UnmarshalBinary(data[plen : 2*plen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleBytes, err)
	}
	signature := SuiTe.Scalar()
	if err := signature.UnmarshalBinary(data[2*plen:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleBytes, err)
	}

	return NewVerifiedCapsule(pointE, pointV, signature)
}

// Serialize encodes a Capsule to base64.
func (c *Capsule) Serialize() string {
	return base64.StdEncoding.EncodeToString(c.ToBytes())
}

// DeserializeCapsule decodes a Capsule from base64.
func DeserializeCapsule(in string) (*Capsule, error) {
	data, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleBytes, err)
	}
	return CapsuleFromBytes(data)
}

package lib

import (
	"encoding/base64"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"
)

// SecretKey is a private scalar over the suite. It is used both by the
// delegating party (to encrypt and to delegate) and by the receiving party
// (to open re-encrypted capsules).
type SecretKey struct {
	scalar kyber.Scalar
}

// NewSecretKey draws a fresh random secret key.
func NewSecretKey() *SecretKey {
	return &SecretKey{scalar: SuiTe.Scalar().Pick(random.New())}
}

// SecretKeyFromScalar wraps an existing scalar into a secret key.
func SecretKeyFromScalar(s kyber.Scalar) *SecretKey {
	return &SecretKey{scalar: s.Clone()}
}

// Scalar returns a copy of the underlying scalar.
func (sk *SecretKey) Scalar() kyber.Scalar {
	return sk.scalar.Clone()
}

// PublicKey derives the public key of sk.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{point: SuiTe.Point().Mul(sk.scalar, nil)}
}

// ToBytes converts a SecretKey to a byte array.
func (sk *SecretKey) ToBytes() []byte {
	return marshalScalar(sk.scalar)
}

// SecretKeyFromBytes converts a byte array to a SecretKey.
func SecretKeyFromBytes(data []byte) (*SecretKey, error) {
	if len(data) != SuiTe.ScalarLen() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrKeyBytes, SuiTe.ScalarLen(), len(data))
	}
	s := SuiTe.Scalar()
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyBytes, err)
	}
	return &SecretKey{scalar: s}, nil
}

// Serialize encodes a SecretKey to base64.
func (sk *SecretKey) Serialize() string {
	return base64.StdEncoding.EncodeToString(sk.ToBytes())
}

// DeserializeSecretKey decodes a SecretKey from base64.
func DeserializeSecretKey(in string) (*SecretKey, error) {
	data, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyBytes, err)
	}
	return SecretKeyFromBytes(data)
}

// PublicKey is a public point over the suite.
type PublicKey struct {
	point kyber.Point
}

// PublicKeyFromPoint wraps an existing point into a public key.
func PublicKeyFromPoint(p kyber.Point) *PublicKey {
	return &PublicKey{point: p.Clone()}
}

// Point returns a copy of the underlying point.
func (pk *PublicKey) Point() kyber.Point {
	return pk.point.Clone()
}

// Equal returns true if both keys hold the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.point.Equal(other.point)
}

// ToBytes converts a PublicKey to a byte array.
func (pk *PublicKey) ToBytes() []byte {
	return marshalPoint(pk.point)
}

// PublicKeyFromBytes converts a byte array to a PublicKey.
func PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	if len(data) != SuiTe.PointLen() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrKeyBytes, SuiTe.PointLen(), len(data))
	}
	p := SuiTe.Point()
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyBytes, err)
	}
	return &PublicKey{point: p}, nil
}

// Serialize encodes a PublicKey to base64.
func (pk *PublicKey) Serialize() string {
	return base64.StdEncoding.EncodeToString(pk.ToBytes())
}

// DeserializePublicKey decodes a PublicKey from base64.
func DeserializePublicKey(in string) (*PublicKey, error) {
	data, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyBytes, err)
	}
	return PublicKeyFromBytes(data)
}

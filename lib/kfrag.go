package lib

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/sign/schnorr"
	"go.dedis.ch/kyber/v3/util/random"
)

// KFragID identifies a key fragment inside one delegation batch.
type KFragID []byte

// newKFragID draws a random fragment identifier, one scalar wide.
func newKFragID() KFragID {
	return marshalScalar(SuiTe.Scalar().Pick(random.New()))
}

// Equal compares two fragment identifiers.
func (id KFragID) Equal(other KFragID) bool {
	return bytes.Equal(id, other)
}

// KFrag is one share of the re-encryption key from the delegating party to
// the receiving party. A proxy holding a KFrag can transform capsules with
// Reencrypt without learning anything about the encapsulated secret.
type KFrag struct {
	id        KFragID
	key       kyber.Scalar
	precursor kyber.Point
	signature []byte
}

// GenerateKFrags splits a re-encryption key from the delegating party to
// the receiving party into n fragments, any threshold of which suffice to
// open re-encrypted capsules. The fragments are signed with the signer's
// key so proxies can check their provenance.
func GenerateKFrags(delegating *SecretKey, receiving *PublicKey, signer *SecretKey, threshold, n int) ([]*KFrag, error) {
	if threshold < 1 || threshold > n {
		return nil, fmt.Errorf("%w: threshold %d out of range for %d fragments", ErrKFragParams, threshold, n)
	}

	// The precursor ties all fragments of this batch together; the
	// receiver rebuilds the same DH point from it with its secret key.
	precursorSecret := randomNonZeroScalar(random.New())
	precursor := SuiTe.Point().Mul(precursorSecret, nil)
	dh := SuiTe.Point().Mul(precursorSecret, receiving.point)

	d := hashToSharedSecret(precursor, receiving.point, dh)
	dInv, ok := scalarInv(d)
	if !ok {
		return nil, ErrZeroHash
	}

	// Sharing polynomial with the re-encryption key as constant term.
	coeffs := make([]kyber.Scalar, threshold)
	coeffs[0] = SuiTe.Scalar().Mul(delegating.scalar, dInv)
	for i := 1; i < threshold; i++ {
		coeffs[i] = randomNonZeroScalar(random.New())
	}

	kfrags := make([]*KFrag, n)
	for i := range kfrags {
		id := newKFragID()
		x := hashToPolynomialArg(precursor, receiving.point, dh, id)
		sig, err := schnorr.Sign(SuiTe, signer.scalar, kfragMessage(id, precursor))
		if err != nil {
			return nil, err
		}
		kfrags[i] = &KFrag{
			id:        id,
			key:       polyEval(coeffs, x),
			precursor: precursor.Clone(),
			signature: sig,
		}
	}
	return kfrags, nil
}

// kfragMessage is the byte string covered by a key fragment signature.
func kfragMessage(id KFragID, precursor kyber.Point) []byte {
	return append(append([]byte{}, id...), marshalPoint(precursor)...)
}

// Verify checks the fragment signature against the verifying key of the
// party that generated the batch.
func (k *KFrag) Verify(verifying *PublicKey) error {
	err := schnorr.Verify(SuiTe, verifying.point, kfragMessage(k.id, k.precursor), k.signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKFragSignature, err)
	}
	return nil
}

// ID returns the fragment identifier.
func (k *KFrag) ID() KFragID {
	return append(KFragID{}, k.id...)
}

// Precursor returns a copy of the batch precursor point.
func (k *KFrag) Precursor() kyber.Point {
	return k.precursor.Clone()
}

// ToBytes converts a KFrag to a byte array.
func (k *KFrag) ToBytes() []byte {
	b := append([]byte{}, k.id...)
	b = append(b, marshalScalar(k.key)...)
	b = append(b, marshalPoint(k.precursor)...)
	b = append(b, k.signature...)
	return b
}

// KFragFromBytes converts a byte array to a KFrag.
func KFragFromBytes(data []byte) (*KFrag, error) {
	slen := SuiTe.ScalarLen()
	plen := SuiTe.PointLen()
	// id, key, precursor and a schnorr signature (point plus scalar).
	want := 2*slen + plen + (plen + slen)
	if len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrKFragBytes, want, len(data))
	}

	id := append(KFragID{}, data[:slen]...)
	key := SuiTe.Scalar()
	if err := key.UnmarshalBinary(data[slen : 2*slen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKFragBytes, err)
	}
	precursor := SuiTe.Point()
	if err := precursor.UnmarshalBinary(data[2*slen : 2*slen+plen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKFragBytes, err)
	}
	signature := append([]byte{}, data[2*slen+plen:]...)

	return &KFrag{id: id, key: key, precursor: precursor, signature: signature}, nil
}

// Serialize encodes a KFrag to base64.
func (k *KFrag) Serialize() string {
	return base64.StdEncoding.EncodeToString(k.ToBytes())
}

// DeserializeKFrag decodes a KFrag from base64.
func DeserializeKFrag(in string) (*KFrag, error) {
	data, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKFragBytes, err)
	}
	return KFragFromBytes(data)
}

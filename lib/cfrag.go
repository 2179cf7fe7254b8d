package lib

import (
	"encoding/base64"
	"fmt"

	"go.dedis.ch/kyber/v3"
)

// CapsuleFrag is a capsule transformed under one key fragment. Collecting a
// threshold of fragments from one batch lets the receiving party open the
// capsule with OpenReencrypted.
type CapsuleFrag struct {
	pointE1   kyber.Point
	pointV1   kyber.Point
	kfragID   KFragID
	precursor kyber.Point
}

// Reencrypt transforms the capsule under the given key fragment. This is
// the proxy-side operation; the proxy learns nothing about the encapsulated
// secret.
func Reencrypt(c *Capsule, kfrag *KFrag) *CapsuleFrag {
	return &CapsuleFrag{
		pointE1:   SuiTe.Point().Mul(kfrag.key, c.pointE),
		pointV1:   SuiTe.Point().Mul(kfrag.key, c.pointV),
		kfragID:   kfrag.ID(),
		precursor: kfrag.precursor.Clone(),
	}
}

// PointE1 returns a copy of the fragment's first transformed point.
func (cf *CapsuleFrag) PointE1() kyber.Point {
	return cf.pointE1.Clone()
}

// PointV1 returns a copy of the fragment's second transformed point.
func (cf *CapsuleFrag) PointV1() kyber.Point {
	return cf.pointV1.Clone()
}

// KFragID returns the identifier of the key fragment this fragment was
// produced with.
func (cf *CapsuleFrag) KFragID() KFragID {
	return append(KFragID{}, cf.kfragID...)
}

// Precursor returns a copy of the batch precursor point.
func (cf *CapsuleFrag) Precursor() kyber.Point {
	return cf.precursor.Clone()
}

// Equal compares two capsule fragments component-wise.
func (cf *CapsuleFrag) Equal(other *CapsuleFrag) bool {
	return cf.pointE1.Equal(other.pointE1) &&
		cf.pointV1.Equal(other.pointV1) &&
		cf.kfragID.Equal(other.kfragID) &&
		cf.precursor.Equal(other.precursor)
}

// ToBytes converts a CapsuleFrag to a byte array.
func (cf *CapsuleFrag) ToBytes() []byte {
	b := marshalPoint(cf.pointE1)
	b = append(b, marshalPoint(cf.pointV1)...)
	b = append(b, cf.kfragID...)
	b = append(b, marshalPoint(cf.precursor)...)
	return b
}

// CapsuleFragFromBytes converts a byte array to a CapsuleFrag.
func CapsuleFragFromBytes(data []byte) (*CapsuleFrag, error) {
	plen := SuiTe.PointLen()
	slen := SuiTe.ScalarLen()
	want := 3*plen + slen
	if len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCapsuleFragBytes, want, len(data))
	}

	pointE1 := SuiTe.Point()
	if err := pointE1.UnmarshalBinary(data[:plen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleFragBytes, err)
	}
	pointV1 := SuiTe.Point()
	if err := pointV1.UnmarshalBinary(data[plen : 2*plen]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleFragBytes, err)
	}
	kfragID := append(KFragID{}, data[2*plen:2*plen+slen]...)
	precursor := SuiTe.Point()
	if err := precursor.UnmarshalBinary(data[2*plen+slen:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleFragBytes, err)
	}

	return &CapsuleFrag{
		pointE1:   pointE1,
		pointV1:   pointV1,
		kfragID:   kfragID,
		precursor: precursor,
	}, nil
}

// Serialize encodes a CapsuleFrag to base64.
func (cf *CapsuleFrag) Serialize() string {
	return base64.StdEncoding.EncodeToString(cf.ToBytes())
}

// DeserializeCapsuleFrag decodes a CapsuleFrag from base64.
func DeserializeCapsuleFrag(in string) (*CapsuleFrag, error) {
	data, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapsuleFragBytes, err)
	}
	return CapsuleFragFromBytes(data)
}

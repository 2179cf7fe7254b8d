package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReencrypt checks the proxy transform against its definition.
func TestReencrypt(t *testing.T) {
	delegating := NewSecretKey()
	receiving := NewSecretKey()

	capsule, _ := Encapsulate(delegating.PublicKey())

	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 2, 3)
	require.NoError(t, err)

	for _, kf := range kfrags {
		cf := Reencrypt(capsule, kf)
		require.True(t, cf.PointE1().Equal(SuiTe.Point().Mul(kf.key, capsule.PointE())))
		require.True(t, cf.PointV1().Equal(SuiTe.Point().Mul(kf.key, capsule.PointV())))
		require.True(t, cf.KFragID().Equal(kf.ID()))
		require.True(t, cf.Precursor().Equal(kf.Precursor()))
	}
}

// TestCapsuleFragSerialization checks the byte and base64 round trips.
func TestCapsuleFragSerialization(t *testing.T) {
	delegating := NewSecretKey()
	receiving := NewSecretKey()

	capsule, _ := Encapsulate(delegating.PublicKey())
	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 1, 2)
	require.NoError(t, err)

	cf := Reencrypt(capsule, kfrags[0])

	back, err := CapsuleFragFromBytes(cf.ToBytes())
	require.NoError(t, err)
	require.True(t, cf.Equal(back))

	backB64, err := DeserializeCapsuleFrag(cf.Serialize())
	require.NoError(t, err)
	require.True(t, cf.Equal(backB64))

	_, err = CapsuleFragFromBytes(cf.ToBytes()[1:])
	require.ErrorIs(t, err, ErrCapsuleFragBytes)
}

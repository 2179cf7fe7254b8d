package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenerateKFrags checks parameter validation and the batch invariants.
func TestGenerateKFrags(t *testing.T) {
	delegating := NewSecretKey()
	receiving := NewSecretKey()

	_, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 0, 3)
	require.ErrorIs(t, err, ErrKFragParams)
	_, err = GenerateKFrags(delegating, receiving.PublicKey(), delegating, 4, 3)
	require.ErrorIs(t, err, ErrKFragParams)

	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 2, 5)
	require.NoError(t, err)
	require.Len(t, kfrags, 5)

	// one precursor per batch, distinct identifiers per fragment
	for i, kf := range kfrags {
		require.True(t, kf.Precursor().Equal(kfrags[0].Precursor()))
		for _, other := range kfrags[i+1:] {
			require.False(t, kf.ID().Equal(other.ID()))
		}
	}
}

// TestKFragVerify checks fragment signatures against the right and the
// wrong verifying key.
func TestKFragVerify(t *testing.T) {
	delegating := NewSecretKey()
	receiving := NewSecretKey()
	signer := NewSecretKey()

	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), signer, 2, 3)
	require.NoError(t, err)

	for _, kf := range kfrags {
		require.NoError(t, kf.Verify(signer.PublicKey()))
		require.ErrorIs(t, kf.Verify(delegating.PublicKey()), ErrKFragSignature)
	}

	// a tampered identifier invalidates the signature
	kf := kfrags[0]
	kf.id[0] ^= 0x01
	require.ErrorIs(t, kf.Verify(signer.PublicKey()), ErrKFragSignature)
}

// TestKFragSerialization checks the byte and base64 round trips.
func TestKFragSerialization(t *testing.T) {
	delegating := NewSecretKey()
	receiving := NewSecretKey()

	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 2, 3)
	require.NoError(t, err)

	for _, kf := range kfrags {
		back, err := KFragFromBytes(kf.ToBytes())
		require.NoError(t, err)
		require.True(t, kf.ID().Equal(back.ID()))
		require.True(t, kf.key.Equal(back.key))
		require.True(t, kf.Precursor().Equal(back.Precursor()))
		require.Equal(t, kf.signature, back.signature)
		require.NoError(t, back.Verify(delegating.PublicKey()))

		backB64, err := DeserializeKFrag(kf.Serialize())
		require.NoError(t, err)
		require.True(t, kf.key.Equal(backB64.key))
	}

	_, err = KFragFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrKFragBytes)
}

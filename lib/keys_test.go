package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeyDerivation checks that PublicKey is the scalar-base product and
// that the derivation is stable.
func TestKeyDerivation(t *testing.T) {
	sk := NewSecretKey()

	pub := sk.PublicKey()
	require.True(t, pub.Point().Equal(SuiTe.Point().Mul(sk.Scalar(), nil)))
	require.True(t, pub.Equal(sk.PublicKey()))

	other := NewSecretKey()
	require.False(t, pub.Equal(other.PublicKey()))
}

// TestKeySerialization checks byte and base64 round trips for both key
// halves.
func TestKeySerialization(t *testing.T) {
	sk := NewSecretKey()

	skBack, err := SecretKeyFromBytes(sk.ToBytes())
	require.NoError(t, err)
	require.True(t, sk.Scalar().Equal(skBack.Scalar()))

	skB64, err := DeserializeSecretKey(sk.Serialize())
	require.NoError(t, err)
	require.True(t, sk.Scalar().Equal(skB64.Scalar()))

	pk := sk.PublicKey()
	pkBack, err := PublicKeyFromBytes(pk.ToBytes())
	require.NoError(t, err)
	require.True(t, pk.Equal(pkBack))

	pkB64, err := DeserializePublicKey(pk.Serialize())
	require.NoError(t, err)
	require.True(t, pk.Equal(pkB64))

	_, err = SecretKeyFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrKeyBytes)
	_, err = PublicKeyFromBytes(make([]byte, SuiTe.PointLen()+1))
	require.ErrorIs(t, err, ErrKeyBytes)
	_, err = DeserializePublicKey("not base64 at all!")
	require.ErrorIs(t, err, ErrKeyBytes)
}

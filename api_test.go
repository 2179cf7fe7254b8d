package umbral

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/student_19_umbral/lib"
)

// TestEncryptDecrypt covers the direct path: the delegating party decrypts
// its own ciphertext.
func TestEncryptDecrypt(t *testing.T) {
	delegating := lib.NewSecretKey()
	message := []byte("peace at dawn")

	capsule, ciphertext, err := Encrypt(delegating.PublicKey(), message)
	require.NoError(t, err)

	plain, err := Decrypt(delegating, capsule, ciphertext)
	require.NoError(t, err)
	require.Equal(t, message, plain)
}

// TestDelegationFlow covers the full proxy path: encrypt, delegate,
// re-encrypt with a threshold of proxies, decrypt on the receiving side.
func TestDelegationFlow(t *testing.T) {
	delegating := lib.NewSecretKey()
	receiving := lib.NewSecretKey()
	message := []byte("peace at dawn")

	capsule, ciphertext, err := Encrypt(delegating.PublicKey(), message)
	require.NoError(t, err)

	kfrags, err := GenerateKFrags(delegating, receiving.PublicKey(), delegating, 2, 3)
	require.NoError(t, err)

	// every proxy checks its fragment before accepting it
	for _, kf := range kfrags {
		require.NoError(t, kf.Verify(delegating.PublicKey()))
	}

	cfrags := make([]*lib.CapsuleFrag, 0, len(kfrags))
	for _, kf := range kfrags[:2] {
		cfrags = append(cfrags, Reencrypt(capsule, kf))
	}

	plain, err := DecryptReencrypted(receiving, delegating.PublicKey(), capsule, cfrags, ciphertext)
	require.NoError(t, err)
	require.Equal(t, message, plain)

	// the receiving key alone cannot open the capsule directly
	_, err = Decrypt(receiving, capsule, ciphertext)
	require.ErrorIs(t, err, lib.ErrDecryptionFailed)

	// too few fragments
	_, err = DecryptReencrypted(receiving, delegating.PublicKey(), capsule, cfrags[:1], ciphertext)
	require.ErrorIs(t, err, lib.ErrValidationFailed)

	// the capsule survives a serialization round trip mid-flow
	capsuleBack, err := lib.DeserializeCapsule(capsule.Serialize())
	require.NoError(t, err)
	plain, err = DecryptReencrypted(receiving, delegating.PublicKey(), capsuleBack, cfrags, ciphertext)
	require.NoError(t, err)
	require.Equal(t, message, plain)
}

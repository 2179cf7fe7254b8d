package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/util/random"
)

// TestDEMRoundTrip seals and opens a message under a shared secret point.
func TestDEMRoundTrip(t *testing.T) {
	secret := SuiTe.Point().Pick(random.New())
	message := []byte("peace at dawn")

	ciphertext, err := EncryptWithSecret(secret, message)
	require.NoError(t, err)
	require.NotEqual(t, message, ciphertext)

	plain, err := DecryptWithSecret(secret, ciphertext)
	require.NoError(t, err)
	require.Equal(t, message, plain)
}

// TestDEMWrongSecret checks that a different secret point cannot open the
// ciphertext.
func TestDEMWrongSecret(t *testing.T) {
	secret := SuiTe.Point().Pick(random.New())
	ciphertext, err := EncryptWithSecret(secret, []byte("peace at dawn"))
	require.NoError(t, err)

	_, err = DecryptWithSecret(SuiTe.Point().Pick(random.New()), ciphertext)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

// TestDEMMalformedCiphertext checks the short and corrupted ciphertext
// paths.
func TestDEMMalformedCiphertext(t *testing.T) {
	secret := SuiTe.Point().Pick(random.New())

	_, err := DecryptWithSecret(secret, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrCiphertextSize)

	ciphertext, err := EncryptWithSecret(secret, []byte("peace at dawn"))
	require.NoError(t, err)
	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = DecryptWithSecret(secret, ciphertext)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

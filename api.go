package umbral

/*
api.go defines the operations applications call on each side of a
delegation: the delegating party encrypts and hands out key fragments, the
proxies re-encrypt, and the receiving party decrypts from a threshold of
capsule fragments. The capsule mechanics live in the lib package.
*/

import (
	"github.com/dedis/student_19_umbral/lib"
)

// Encrypt encapsulates a fresh shared secret for the delegating public key
// and encrypts message under it. The returned capsule travels alongside the
// ciphertext and is needed to decrypt it.
func Encrypt(delegating *lib.PublicKey, message []byte) (*lib.Capsule, []byte, error) {
	capsule, secret := lib.Encapsulate(delegating)
	ciphertext, err := lib.EncryptWithSecret(secret, message)
	if err != nil {
		return nil, nil, err
	}
	return capsule, ciphertext, nil
}

// Decrypt opens the capsule with the delegating secret key itself and
// decrypts the ciphertext.
func Decrypt(delegating *lib.SecretKey, capsule *lib.Capsule, ciphertext []byte) ([]byte, error) {
	return lib.DecryptWithSecret(capsule.OpenOriginal(delegating), ciphertext)
}

// GenerateKFrags splits a re-encryption key towards the receiving party
// into n fragments with the given threshold, signed by signer.
func GenerateKFrags(delegating *lib.SecretKey, receiving *lib.PublicKey, signer *lib.SecretKey, threshold, n int) ([]*lib.KFrag, error) {
	return lib.GenerateKFrags(delegating, receiving, signer, threshold, n)
}

// Reencrypt transforms a capsule under one key fragment. This is what each
// proxy runs.
func Reencrypt(capsule *lib.Capsule, kfrag *lib.KFrag) *lib.CapsuleFrag {
	return lib.Reencrypt(capsule, kfrag)
}

// DecryptReencrypted opens the capsule from a threshold of capsule
// fragments with the receiving secret key and decrypts the ciphertext.
func DecryptReencrypted(receiving *lib.SecretKey, delegating *lib.PublicKey, capsule *lib.Capsule, cfrags []*lib.CapsuleFrag, ciphertext []byte) ([]byte, error) {
	secret, err := capsule.OpenReencrypted(receiving, delegating, cfrags)
	if err != nil {
		return nil, err
	}
	return lib.DecryptWithSecret(secret, ciphertext)
}

package lib

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"go.dedis.ch/kyber/v3"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// demInfo is the HKDF info string binding derived keys to this use.
const demInfo = "umbral:dem"

// demKey derives a symmetric key from a KEM shared secret point using
// HKDF-SHA-512.
func demKey(sharedSecret kyber.Point) ([]byte, error) {
	r := hkdf.New(sha512.New, marshalPoint(sharedSecret), nil, []byte(demInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// EncryptWithSecret seals message with XChaCha20-Poly1305 under a key
// derived from the shared secret point.
// The ciphertext layout is: nonce (24 bytes) || ciphertext || tag (16 bytes).
func EncryptWithSecret(sharedSecret kyber.Point, message []byte) ([]byte, error) {
	key, err := demKey(sharedSecret)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, message, nil), nil
}

// DecryptWithSecret opens a ciphertext produced by EncryptWithSecret with
// the same shared secret point.
func DecryptWithSecret(sharedSecret kyber.Point, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ErrCiphertextSize
	}

	key, err := demKey(sharedSecret)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := ciphertext[:chacha20poly1305.NonceSizeX]
	message, err := aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSizeX:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return message, nil
}

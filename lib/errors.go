package lib

import "errors"

var (
	// ErrNoCapsuleFrags is returned when an empty capsule fragment
	// sequence is given to OpenReencrypted.
	ErrNoCapsuleFrags = errors.New("empty capsule fragment sequence")

	// ErrMismatchedCapsuleFrags is returned when the capsule fragments do
	// not share one precursor, i.e. they originate from key fragments
	// generated by different GenerateKFrags calls.
	ErrMismatchedCapsuleFrags = errors.New("capsule fragments are not pairwise consistent")

	// ErrRepeatingCapsuleFrags is returned when two capsule fragments map
	// to the same share coordinate, either because a fragment was given
	// twice or because of a hash collision.
	ErrRepeatingCapsuleFrags = errors.New("some of the capsule fragments are repeated")

	// ErrZeroHash is returned when an internally hashed value is the zero
	// scalar and cannot be inverted. Honest executions never hit this, but
	// the hash output is not statically guaranteed to be non-zero.
	ErrZeroHash = errors.New("an internally hashed value is zero")

	// ErrValidationFailed is returned when the reconstruction does not
	// satisfy the capsule's validation equation. It covers a modified
	// capsule, a wrong delegating key and fragments belonging to another
	// capsule alike.
	ErrValidationFailed = errors.New("internal validation failed")

	// ErrCapsuleVerification is returned when a capsule's
	// self-verification equation does not hold at construction.
	ErrCapsuleVerification = errors.New("capsule self-verification failed")

	// ErrCapsuleBytes is returned when capsule bytes cannot be parsed.
	ErrCapsuleBytes = errors.New("invalid capsule bytes")

	// ErrKFragBytes is returned when key fragment bytes cannot be parsed.
	ErrKFragBytes = errors.New("invalid key fragment bytes")

	// ErrCapsuleFragBytes is returned when capsule fragment bytes cannot
	// be parsed.
	ErrCapsuleFragBytes = errors.New("invalid capsule fragment bytes")

	// ErrKeyBytes is returned when key bytes cannot be parsed.
	ErrKeyBytes = errors.New("invalid key bytes")

	// ErrKFragParams is returned when the threshold parameters given to
	// GenerateKFrags are out of range.
	ErrKFragParams = errors.New("invalid threshold parameters")

	// ErrKFragSignature is returned when a key fragment signature does
	// not verify against the given verifying key.
	ErrKFragSignature = errors.New("key fragment signature verification failed")

	// ErrDecryptionFailed is returned when the symmetric layer rejects a
	// ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrCiphertextSize is returned when a ciphertext is too short to
	// even hold a nonce and an authentication tag.
	ErrCiphertextSize = errors.New("ciphertext too short")
)

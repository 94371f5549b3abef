package maskedaes

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Params controls PBKDF2-SHA256 key derivation via
// PassphraseKeyPBKDF2.
type PBKDF2Params struct {
	Iterations int
	SaltSize   int
}

// DefaultPBKDF2Params returns conservative parameters suitable for
// interactive passphrase unlock.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{Iterations: 600000, SaltSize: 16}
}

// Argon2idParams controls Argon2id key derivation via
// PassphraseKeyArgon2id.
type Argon2idParams struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltSize    int
}

// DefaultArgon2idParams returns the OWASP-recommended baseline
// parameters (19 MiB, 2 passes, parallelism 1).
func DefaultArgon2idParams() Argon2idParams {
	return Argon2idParams{Memory: 19 * 1024, Iterations: 2, Parallelism: 1, SaltSize: 16}
}

// PassphraseKeyPBKDF2 derives a KeySize-byte Session key from a
// passphrase and salt using PBKDF2-HMAC-SHA256. It is provisioning
// convenience around the masked cipher core, not a masked operation
// itself — the derived key is an ordinary 16-byte value fed to
// NewSession.
func PassphraseKeyPBKDF2(passphrase, salt []byte, params PBKDF2Params) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("maskedaes: passphrase cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("maskedaes: salt cannot be empty")
	}
	return pbkdf2.Key(passphrase, salt, params.Iterations, KeySize, sha256.New), nil
}

// PassphraseKeyArgon2id derives a KeySize-byte Session key using
// Argon2id.
func PassphraseKeyArgon2id(passphrase, salt []byte, params Argon2idParams) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("maskedaes: passphrase cannot be empty")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("maskedaes: salt cannot be empty")
	}
	key := argon2.IDKey(passphrase, salt, params.Iterations, params.Memory, params.Parallelism, uint32(KeySize))
	return key, nil
}

// GenerateSalt returns n freshly sampled random bytes, suitable as the
// salt argument to either passphrase derivation function.
func GenerateSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("maskedaes: failed to generate salt: %w", err)
	}
	return salt, nil
}

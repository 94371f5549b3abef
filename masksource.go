package maskedaes

import "crypto/rand"

// MaskSource supplies one fresh 16-byte mask per block encryption. The
// forward cipher XORs the mask into the plaintext before the first
// round and XORs it back out after the last, so the choice of mask
// source must never change the resulting ciphertext (see
// TestMaskInvariance).
type MaskSource interface {
	NextMask() [BlockSize]byte
}

// referenceMaskConstant is the hard-coded 16-byte mask seed from the
// reference implementation. It provides no DPA resistance by itself
// (the same mask would appear on every trace) and exists solely so
// tests can pin the mask and assert mask-invariance and FIPS-vector
// conformance deterministically.
var referenceMaskConstant = [BlockSize]byte{
	0x13, 0x05, 0x59, 0x81, 0x49, 0xaf, 0xb3, 0x30,
	0x29, 0x11, 0xc4, 0xbb, 0x91, 0xe4, 0x98, 0x44,
}

// FixedMask always returns the same 16-byte value. Useful for tests
// that need a reproducible mask; never the default for a Session
// constructed without WithMaskSource.
type FixedMask struct {
	Value [BlockSize]byte
}

// NextMask returns the fixed value.
func (f FixedMask) NextMask() [BlockSize]byte {
	return f.Value
}

// ReferenceMask reproduces the reference implementation's hard-coded
// mask constant. Equivalent to FixedMask{Value: referenceMaskConstant}.
func ReferenceMask() FixedMask {
	return FixedMask{Value: referenceMaskConstant}
}

// RandomMask draws 16 fresh bytes from crypto/rand on every call. This
// is the default mask source for every Session: production use needs
// fresh per-encryption randomness, not a fixed mask.
type RandomMask struct{}

// NextMask returns a freshly sampled 16-byte mask.
func (RandomMask) NextMask() [BlockSize]byte {
	var m [BlockSize]byte
	if _, err := rand.Read(m[:]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// broken, a condition nothing downstream can recover from.
		panic("maskedaes: crypto/rand unavailable: " + err.Error())
	}
	return m
}

// Package maskedaes implements AES-128 (Rijndael) in ECB and CBC modes,
// with a first-order Boolean-masked S-box protecting the forward
// (encrypt) path against differential power analysis.
//
// # Overview
//
// Ordinary AES implementations compute SubBytes as a single table
// lookup, which leaks the Hamming weight of the true S-box output
// through power consumption. maskedaes instead evaluates the S-box as
// a ~130-gate Boolean circuit (of the Boyar-Peralta family) in which
// every sensitive byte is split into a (value, mask) pair with
// value^mask equal to the true byte, and every AND gate is computed
// through a masked gadget that never materializes an unmasked AND on
// a single wire. The mask changes every block, so no single power
// trace reveals the unmasked intermediate.
//
// Only the forward cipher is masked. AES decryption (and the key
// schedule) run the ordinary table-based S-box, matching the reference
// this package is derived from: masking only pays for itself on the
// path an attacker can repeatedly trigger with chosen or known
// plaintext.
//
// # Basic Usage
//
//	session, err := maskedaes.NewSession(key) // key is exactly 16 bytes
//	if err != nil {
//	    return err
//	}
//
//	var block [maskedaes.BlockSize]byte
//	copy(block[:], plaintext)
//	ciphertext := session.EncryptECB(block)
//
//	// Whole-buffer CBC:
//	err = session.EncryptCBC(dst, src, iv)
//
// A Session derived from NewSession is safe for concurrent encryption
// and decryption calls; it holds no mutable state beyond the
// write-once key schedule. CBCWriter and CBCReader, which hold a
// running chaining value across Write/Read calls, are not themselves
// safe for concurrent use.
//
// # Security Considerations
//
// Protected against:
//   - First-order DPA against the forward S-box, via the masked
//     circuit and a fresh per-block mask.
//
// Not protected against:
//   - Second-order (or higher) DPA, which correlates two leakage
//     points to cancel out a single mask.
//   - Any attack on the inverse cipher or key schedule, which are
//     unmasked table lookups.
//   - Chosen-ciphertext or padding-oracle attacks: this package
//     implements only raw block modes, with no authentication.
//   - Key management: callers are responsible for key storage and
//     rotation; PassphraseKeyPBKDF2 and PassphraseKeyArgon2id only
//     cover deriving a key from a passphrase.
//
// # Performance
//
// The masked S-box runs roughly 10-20x slower than a table lookup,
// since every SubBytes call now evaluates ~130 gates in both the value
// and mask lanes instead of indexing a 256-entry table. EncryptECB and
// DecryptECB differ accordingly: decryption and EncryptECBUnmasked are
// much closer to a textbook software AES implementation's throughput.
// EncryptECBParallel/DecryptECBParallel amortize this cost across a
// worker pool for ECB workloads large enough to justify the goroutine
// overhead; CBC has no parallel variant because its chaining is
// inherently sequential.
package maskedaes

package maskedaes

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestEncryptECBParallelMatchesSequential(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)

	// Fixed mask keeps both runs reproducible. The ciphertext does not
	// depend on the mask (see TestMaskInvariance), so both paths must
	// agree byte-for-byte.
	session, err := NewSession(key, WithMaskSource(ReferenceMask()))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	plaintext := make([]byte, BlockSize*200)
	rand.Read(plaintext)

	sequential := make([]byte, len(plaintext))
	if err := session.EncryptECBBuffer(sequential, plaintext); err != nil {
		t.Fatalf("EncryptECBBuffer: %v", err)
	}

	parallelOut := make([]byte, len(plaintext))
	cfg := ParallelConfig{MaxWorkers: 8, MinBlocksForParallel: 1}
	if err := session.EncryptECBParallel(parallelOut, plaintext, cfg); err != nil {
		t.Fatalf("EncryptECBParallel: %v", err)
	}

	if !bytes.Equal(sequential, parallelOut) {
		t.Error("EncryptECBParallel does not match EncryptECBBuffer under a fixed mask")
	}
}

func TestDecryptECBParallelRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)
	session, err := NewSession(key)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	plaintext := make([]byte, BlockSize*200)
	rand.Read(plaintext)

	ciphertext := make([]byte, len(plaintext))
	cfg := ParallelConfig{MaxWorkers: 8, MinBlocksForParallel: 1}
	if err := session.EncryptECBParallel(ciphertext, plaintext, cfg); err != nil {
		t.Fatalf("EncryptECBParallel: %v", err)
	}

	recovered := make([]byte, len(plaintext))
	if err := session.DecryptECBParallel(recovered, ciphertext, cfg); err != nil {
		t.Fatalf("DecryptECBParallel: %v", err)
	}

	if !bytes.Equal(recovered, plaintext) {
		t.Error("DecryptECBParallel round trip mismatch")
	}
}

func TestEncryptECBParallelFallsBackBelowThreshold(t *testing.T) {
	key := make([]byte, KeySize)
	session, err := NewSession(key)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	plaintext := make([]byte, BlockSize*2)
	cfg := ParallelConfig{MaxWorkers: 8, MinBlocksForParallel: 1000}

	dst := make([]byte, len(plaintext))
	if err := session.EncryptECBParallel(dst, plaintext, cfg); err != nil {
		t.Fatalf("EncryptECBParallel: %v", err)
	}
}

func TestDefaultParallelConfig(t *testing.T) {
	cfg := DefaultParallelConfig()
	if cfg.MaxWorkers <= 0 {
		t.Error("DefaultParallelConfig should set a positive MaxWorkers")
	}
	if cfg.MinBlocksForParallel <= 0 {
		t.Error("DefaultParallelConfig should set a positive MinBlocksForParallel")
	}
}

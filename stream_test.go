package maskedaes

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"
)

func TestCBCWriterReaderRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)
	session, err := NewSession(key)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var iv [BlockSize]byte
	rand.Read(iv[:])

	plaintext := make([]byte, BlockSize*10)
	rand.Read(plaintext)

	var ciphertext bytes.Buffer
	cw := NewCBCEncryptWriter(session, &ciphertext, iv)
	if _, err := cw.Write(plaintext); err != nil {
		t.Fatalf("CBCWriter.Write: %v", err)
	}

	cr := NewCBCDecryptReader(session, &ciphertext, iv)
	recovered := make([]byte, len(plaintext))
	if _, err := io.ReadFull(cr, recovered); err != nil {
		t.Fatalf("CBCReader.Read: %v", err)
	}

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("round trip mismatch: got %x, want %x", recovered, plaintext)
	}
}

// TestCBCWriterChainsAcrossWrites checks that splitting the same
// plaintext across several Write calls produces the same ciphertext as
// a single Write, since the writer must carry the chaining value
// between calls rather than resetting it to the IV each time.
func TestCBCWriterChainsAcrossWrites(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)
	session, err := NewSession(key, WithMaskSource(ReferenceMask()))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var iv [BlockSize]byte
	rand.Read(iv[:])

	plaintext := make([]byte, BlockSize*6)
	rand.Read(plaintext)

	var whole bytes.Buffer
	cwWhole := NewCBCEncryptWriter(session, &whole, iv)
	if _, err := cwWhole.Write(plaintext); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var split bytes.Buffer
	cwSplit := NewCBCEncryptWriter(session, &split, iv)
	for off := 0; off < len(plaintext); off += BlockSize * 2 {
		end := off + BlockSize*2
		if end > len(plaintext) {
			end = len(plaintext)
		}
		if _, err := cwSplit.Write(plaintext[off:end]); err != nil {
			t.Fatalf("Write chunk: %v", err)
		}
	}

	if !bytes.Equal(whole.Bytes(), split.Bytes()) {
		t.Errorf("chained writes diverged from a single write: %x != %x", split.Bytes(), whole.Bytes())
	}
}

// TestCBCWriterBuffersPartialWritesUntilClose checks that a Write
// split mid-block is held until either a later Write completes the
// block or Close flushes it as the padded tail.
func TestCBCWriterBuffersPartialWritesUntilClose(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)
	session, err := NewSession(key, WithMaskSource(ReferenceMask()))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var iv [BlockSize]byte
	rand.Read(iv[:])

	message := make([]byte, BlockSize*3+5)
	rand.Read(message)

	var piecewise bytes.Buffer
	cw := NewCBCEncryptWriter(session, &piecewise, iv)
	for _, chunk := range [][]byte{message[:7], message[7:20], message[20:]} {
		if _, err := cw.Write(chunk); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var whole bytes.Buffer
	cwWhole := NewCBCEncryptWriter(session, &whole, iv)
	if _, err := cwWhole.Write(message); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := cwWhole.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !bytes.Equal(piecewise.Bytes(), whole.Bytes()) {
		t.Errorf("piecewise writes diverged from a single write: %x != %x", piecewise.Bytes(), whole.Bytes())
	}

	expected := make([]byte, BlockSize*4)
	if err := session.EncryptCBC(expected, message, iv); err != nil {
		t.Fatalf("EncryptCBC: %v", err)
	}
	if !bytes.Equal(whole.Bytes(), expected) {
		t.Errorf("CBCWriter output = %x, want %x", whole.Bytes(), expected)
	}
}

func TestCBCWriterCloseIsIdempotent(t *testing.T) {
	key := make([]byte, KeySize)
	session, err := NewSession(key)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	var iv [BlockSize]byte
	var out bytes.Buffer
	cw := NewCBCEncryptWriter(session, &out, iv)
	if _, err := cw.Write([]byte("short")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if out.Len() != BlockSize {
		t.Errorf("expected exactly one padded tail block, got %d bytes", out.Len())
	}
}

func TestCBCReaderChainsAcrossReads(t *testing.T) {
	key := make([]byte, KeySize)
	rand.Read(key)
	session, err := NewSession(key)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var iv [BlockSize]byte
	rand.Read(iv[:])

	plaintext := make([]byte, BlockSize*8)
	rand.Read(plaintext)

	var ciphertext bytes.Buffer
	cw := NewCBCEncryptWriter(session, &ciphertext, iv)
	if _, err := cw.Write(plaintext); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cr := NewCBCDecryptReader(session, bytes.NewReader(ciphertext.Bytes()), iv)
	recovered := make([]byte, 0, len(plaintext))
	buf := make([]byte, BlockSize*3)
	for {
		n, err := cr.Read(buf)
		recovered = append(recovered, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if n == 0 {
			break
		}
	}

	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("chained reads mismatch: got %x, want %x", recovered, plaintext)
	}
}

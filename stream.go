package maskedaes

import "io"

// CBCWriter adapts a Session and a chaining IV into an io.WriteCloser
// that CBC-encrypts whatever is written to it and forwards the
// ciphertext to an underlying writer, carrying the chaining value
// across Write calls. This is the explicit analogue of the source's
// "pass key/iv as null to continue the chain" affordance: instead of
// hidden global state, the chain lives in this
// struct, and continuing it is just reusing the same *CBCWriter across
// calls.
//
// Write accepts arbitrary-length input and buffers any bytes that do
// not complete a full block; Close flushes the buffered remainder as a
// zero-padded, non-chained tail block, mirroring EncryptCBC's tail
// behavior. A CBCWriter is not safe for concurrent use.
type CBCWriter struct {
	session *Session
	w       io.Writer
	chain   [BlockSize]byte
	pending []byte
	closed  bool
}

// NewCBCEncryptWriter returns a CBCWriter that chains from iv and
// writes ciphertext to w.
func NewCBCEncryptWriter(session *Session, w io.Writer, iv [BlockSize]byte) *CBCWriter {
	return &CBCWriter{session: session, w: w, chain: iv}
}

// Write buffers p, encrypting and forwarding every full block it
// completes. Bytes that do not fill out a block are held until the
// next Write or until Close flushes them as the final tail block.
func (cw *CBCWriter) Write(p []byte) (int, error) {
	if cw.session == nil {
		return 0, ErrNilSession
	}
	if cw.closed {
		return 0, NewCipherError("write", "cbc", "write to a closed CBCWriter", ErrNilSession)
	}

	cw.pending = append(cw.pending, p...)
	full := (len(cw.pending) / BlockSize) * BlockSize
	if full == 0 {
		return len(p), nil
	}

	out := make([]byte, full)
	if err := cw.session.EncryptCBC(out, cw.pending[:full], cw.chain); err != nil {
		return 0, err
	}
	var last [BlockSize]byte
	copy(last[:], out[full-BlockSize:full])
	cw.chain = last

	cw.pending = cw.pending[full:]
	if _, err := cw.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close flushes any buffered remainder as a zero-padded tail block (or
// writes nothing if the buffered input was already block-aligned) and
// marks the writer closed. Close is idempotent.
func (cw *CBCWriter) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	if len(cw.pending) == 0 {
		return nil
	}

	out := make([]byte, BlockSize)
	if err := cw.session.EncryptCBC(out, cw.pending, cw.chain); err != nil {
		return err
	}
	cw.pending = nil
	_, err := cw.w.Write(out)
	return err
}

// CBCReader is the decrypting counterpart of CBCWriter: an
// io.Reader that reads ciphertext from r in block-sized chunks,
// decrypts each with the running chaining value, and returns
// plaintext. It does not itself know where the real message ends
// inside a zero-padded tail block — callers that need exact-length
// recovery must track the original plaintext length out of band.
type CBCReader struct {
	session *Session
	r       io.Reader
	chain   [BlockSize]byte
}

// NewCBCDecryptReader returns a CBCReader that chains from iv and reads
// ciphertext from r.
func NewCBCDecryptReader(session *Session, r io.Reader, iv [BlockSize]byte) *CBCReader {
	return &CBCReader{session: session, r: r, chain: iv}
}

// Read fills p with decrypted plaintext. len(p) must be a multiple of
// BlockSize; Read reads exactly that many ciphertext bytes from the
// underlying reader.
func (cr *CBCReader) Read(p []byte) (int, error) {
	if cr.session == nil {
		return 0, ErrNilSession
	}
	if len(p)%BlockSize != 0 {
		return 0, NewValidationError("p", len(p), "read buffer must be a multiple of the block size", ErrInvalidBlockSize)
	}
	if len(p) == 0 {
		return 0, nil
	}

	ciphertext := make([]byte, len(p))
	n, err := io.ReadFull(cr.r, ciphertext)
	if n == 0 {
		return 0, err
	}
	// A short final read (n < len(p), n not block-aligned) is treated
	// the same way EncryptCBC treats a tail block: decrypt whatever
	// bytes arrived without chaining past them.
	ciphertext = ciphertext[:n]

	if decErr := cr.session.DecryptCBC(p[:((n+BlockSize-1)/BlockSize)*BlockSize], ciphertext, cr.chain); decErr != nil {
		return 0, decErr
	}

	full := (n / BlockSize) * BlockSize
	if full > 0 {
		var last [BlockSize]byte
		copy(last[:], ciphertext[full-BlockSize:full])
		cr.chain = last
	}

	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

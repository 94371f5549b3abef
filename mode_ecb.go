package maskedaes

// EncryptECBBuffer encrypts src block by block into dst using ECB mode:
// every block is encrypted independently with a fresh mask. len(src)
// must be a positive multiple of BlockSize; dst must be at least as
// long as src. dst and src may overlap only if they are identical,
// since each block is read before it is overwritten.
func (s *Session) EncryptECBBuffer(dst, src []byte) error {
	if err := ValidateBlockAligned(src, "src"); err != nil {
		return err
	}
	if err := ValidateBuffer(dst, src); err != nil {
		return err
	}

	for off := 0; off < len(src); off += BlockSize {
		var block [BlockSize]byte
		copy(block[:], src[off:off+BlockSize])
		out := s.EncryptECB(block)
		copy(dst[off:off+BlockSize], out[:])
	}
	return nil
}

// DecryptECBBuffer decrypts src block by block into dst using ECB mode.
func (s *Session) DecryptECBBuffer(dst, src []byte) error {
	if err := ValidateBlockAligned(src, "src"); err != nil {
		return err
	}
	if err := ValidateBuffer(dst, src); err != nil {
		return err
	}

	for off := 0; off < len(src); off += BlockSize {
		var block [BlockSize]byte
		copy(block[:], src[off:off+BlockSize])
		out := s.DecryptECB(block)
		copy(dst[off:off+BlockSize], out[:])
	}
	return nil
}

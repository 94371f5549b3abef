package maskedaes

import "fmt"

// ValidateKey checks that key is exactly KeySize bytes.
func ValidateKey(key []byte) error {
	if key == nil {
		return NewValidationError("key", nil, "key cannot be nil", ErrInvalidKeySize)
	}
	if len(key) != KeySize {
		return NewValidationError("key", len(key),
			fmt.Sprintf("invalid key size: got %d bytes, expected %d", len(key), KeySize),
			ErrInvalidKeySize)
	}
	return nil
}

// ValidateIV checks that iv is exactly BlockSize bytes.
func ValidateIV(iv []byte) error {
	if iv == nil {
		return NewValidationError("iv", nil, "iv cannot be nil", ErrInvalidIVSize)
	}
	if len(iv) != BlockSize {
		return NewValidationError("iv", len(iv),
			fmt.Sprintf("invalid IV size: got %d bytes, expected %d", len(iv), BlockSize),
			ErrInvalidIVSize)
	}
	return nil
}

// ValidateBlockAligned checks that buf's length is a positive multiple
// of BlockSize, as the ECB buffer drivers require. (The CBC drivers
// accept a partial tail block and do not call it.)
func ValidateBlockAligned(buf []byte, name string) error {
	if len(buf) == 0 {
		return NewValidationError(name, 0, "buffer cannot be empty", ErrInvalidBlockSize)
	}
	if len(buf)%BlockSize != 0 {
		return NewValidationError(name, len(buf),
			fmt.Sprintf("buffer length %d is not a multiple of block size %d", len(buf), BlockSize),
			ErrInvalidBlockSize)
	}
	return nil
}

// ValidateBuffer checks that dst has at least the same length as src,
// the precondition the ECB buffer and parallel drivers check.
func ValidateBuffer(dst, src []byte) error {
	if len(dst) < len(src) {
		return NewValidationError("dst", len(dst),
			fmt.Sprintf("destination too small: got %d bytes, need at least %d", len(dst), len(src)),
			ErrShortBuffer)
	}
	return nil
}

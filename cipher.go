package maskedaes

// cipherBlock runs the masked forward AES-128 block transform in
// place on s, drawing the mask matrix from src: mask injection,
// AddRoundKey(0), nine rounds of (masked SubBytes, ShiftRows,
// MixColumns, AddRoundKey), a final round without MixColumns, then
// mask removal.
func cipherBlock(s *state, schedule [roundKeySize]byte, src MaskSource) state {
	m := fromBlock(src.NextMask())

	// Inject mask: s now holds plaintext XOR mask.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] ^= m[row][col]
		}
	}

	addRoundKey(s, roundKey(schedule, 0))

	for round := 1; round < Rounds; round++ {
		subBytesMasked(s, &m)
		shiftRows(s)
		shiftRows(&m)
		mixColumns(s)
		mixColumns(&m)
		addRoundKey(s, roundKey(schedule, round))
	}

	subBytesMasked(s, &m)
	shiftRows(s)
	shiftRows(&m)
	addRoundKey(s, roundKey(schedule, Rounds))

	// Remove mask: s now holds ciphertext.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] ^= m[row][col]
		}
	}

	return *s
}

// cipherBlockUnmasked runs the plain (unmasked) forward transform,
// using the table-based S-box. It exists only so the masked path can
// be cross-checked and benchmarked against an equivalent unmasked one;
// it must never be used for anything where DPA resistance matters.
func cipherBlockUnmasked(s *state, schedule [roundKeySize]byte) state {
	addRoundKey(s, roundKey(schedule, 0))

	for round := 1; round < Rounds; round++ {
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, roundKey(schedule, round))
	}

	subBytes(s)
	shiftRows(s)
	addRoundKey(s, roundKey(schedule, Rounds))

	return *s
}

// invCipherBlock runs the standard (unmasked) inverse AES-128 block
// transform in place on s. The inverse path never masks: it uses the
// plain inverse S-box table throughout.
func invCipherBlock(s *state, schedule [roundKeySize]byte) state {
	addRoundKey(s, roundKey(schedule, Rounds))

	for round := Rounds - 1; round > 0; round-- {
		invShiftRows(s)
		invSubBytes(s)
		addRoundKey(s, roundKey(schedule, round))
		invMixColumns(s)
	}

	invShiftRows(s)
	invSubBytes(s)
	addRoundKey(s, roundKey(schedule, 0))

	return *s
}

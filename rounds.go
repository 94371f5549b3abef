package maskedaes

// addRoundKey XORs the given round key into state. The round key is
// addressed column-major, matching state's own layout.
func addRoundKey(s *state, rk [BlockSize]byte) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] ^= rk[4*col+row]
		}
	}
}

// subBytesMasked substitutes every byte of s through the masked S-box,
// co-evolving the parallel mask matrix m so that s[i][j]^m[i][j]
// continues to equal the true unmasked byte afterward.
func subBytesMasked(s, m *state) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = sBoxValueMasked(s[row][col], &m[row][col])
		}
	}
}

// subBytes substitutes every byte of s through the plain forward
// S-box table. Used only by EncryptECBUnmasked (the key schedule reads
// forwardSBox directly); never used on sensitive state in the masked
// forward cipher.
func subBytes(s *state) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = forwardSBox[s[row][col]]
		}
	}
}

// invSubBytes substitutes every byte of s through the inverse S-box
// table. Table-based: the inverse path is never masked.
func invSubBytes(s *state) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = inverseSBox[s[row][col]]
		}
	}
}

// shiftRows cyclically shifts row r left by r positions. Row 0 is
// unchanged; this is a pure permutation of byte positions, so applying
// it identically to a state and its mask preserves the XOR invariant.
func shiftRows(s *state) {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][1], s[1][2], s[1][3], s[1][0]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][3], s[3][0], s[3][1], s[3][2]
}

// invShiftRows cyclically shifts row r right by r positions.
func invShiftRows(s *state) {
	s[1][0], s[1][1], s[1][2], s[1][3] = s[1][3], s[1][0], s[1][1], s[1][2]
	s[2][0], s[2][1], s[2][2], s[2][3] = s[2][2], s[2][3], s[2][0], s[2][1]
	s[3][0], s[3][1], s[3][2], s[3][3] = s[3][1], s[3][2], s[3][3], s[3][0]
}

// mixColumns applies the fixed GF(2^8) mixing matrix to every column
// of s. Linear over GF(2), so applying it identically to a state and
// its mask preserves the XOR invariant.
func mixColumns(s *state) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]
		all := a0 ^ a1 ^ a2 ^ a3

		s[0][col] ^= xtime(a0^a1) ^ all
		s[1][col] ^= xtime(a1^a2) ^ all
		s[2][col] ^= xtime(a2^a3) ^ all
		s[3][col] ^= xtime(a3^a0) ^ all
	}
}

// invMixColumns applies the fixed inverse GF(2^8) mixing matrix
// ({0x0e,0x0b,0x0d,0x09}) to every column of s. Used only in
// decryption.
func invMixColumns(s *state) {
	for col := 0; col < 4; col++ {
		a, b, c, d := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gmul(a, 0x0e) ^ gmul(b, 0x0b) ^ gmul(c, 0x0d) ^ gmul(d, 0x09)
		s[1][col] = gmul(a, 0x09) ^ gmul(b, 0x0e) ^ gmul(c, 0x0b) ^ gmul(d, 0x0d)
		s[2][col] = gmul(a, 0x0d) ^ gmul(b, 0x09) ^ gmul(c, 0x0e) ^ gmul(d, 0x0b)
		s[3][col] = gmul(a, 0x0b) ^ gmul(b, 0x0d) ^ gmul(c, 0x09) ^ gmul(d, 0x0e)
	}
}

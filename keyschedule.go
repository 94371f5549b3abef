package maskedaes

// expandKey produces the 176-byte AES-128 round-key schedule from a
// 16-byte key. Round i occupies schedule[16*i : 16*i+16].
func expandKey(key [KeySize]byte) [roundKeySize]byte {
	var schedule [roundKeySize]byte
	copy(schedule[:KeySize], key[:])

	var temp [4]byte
	for i := 4; i < 4*(Rounds+1); i++ {
		copy(temp[:], schedule[(i-1)*4:(i-1)*4+4])

		if i%4 == 0 {
			// RotWord: [a0,a1,a2,a3] -> [a1,a2,a3,a0]
			temp[0], temp[1], temp[2], temp[3] = temp[1], temp[2], temp[3], temp[0]
			// SubWord: per-byte forward S-box lookup (unmasked — the
			// key is not part of the sensitive plaintext/ciphertext
			// path for first-order DPA).
			temp[0] = forwardSBox[temp[0]]
			temp[1] = forwardSBox[temp[1]]
			temp[2] = forwardSBox[temp[2]]
			temp[3] = forwardSBox[temp[3]]

			temp[0] ^= rcon[i/4]
		}

		for j := 0; j < 4; j++ {
			schedule[i*4+j] = schedule[(i-4)*4+j] ^ temp[j]
		}
	}

	return schedule
}

// roundKey returns the 16-byte round key for the given round (0..Rounds).
func roundKey(schedule [roundKeySize]byte, round int) [BlockSize]byte {
	var rk [BlockSize]byte
	copy(rk[:], schedule[round*BlockSize:round*BlockSize+BlockSize])
	return rk
}

package maskedaes

// xtime multiplies x by {02} in GF(2^8) under the AES reduction
// polynomial x^8+x^4+x^3+x+1 (0x1b).
func xtime(x byte) byte {
	hi := (x >> 7) & 1
	return (x << 1) ^ (hi * 0x1b)
}

// gmul multiplies x and y in GF(2^8) by decomposing y into bits and
// XORing the corresponding repeated xtime iterates of x. Only used by
// invMixColumns with the fixed constants {0x09, 0x0b, 0x0d, 0x0e}.
func gmul(x, y byte) byte {
	x1 := x
	x2 := xtime(x1)
	x4 := xtime(x2)
	x8 := xtime(x4)
	x16 := xtime(x8)

	var r byte
	if y&1 != 0 {
		r ^= x1
	}
	if y&2 != 0 {
		r ^= x2
	}
	if y&4 != 0 {
		r ^= x4
	}
	if y&8 != 0 {
		r ^= x8
	}
	if y&16 != 0 {
		r ^= x16
	}
	return r
}

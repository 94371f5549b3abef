package maskedaes

// sand is the masked AND gadget: given two masked bit-pairs (p1, p2)
// and (q1, q2) it returns (z, m) such that z^m equals the AND of the
// two unmasked bits, without ever materializing that AND on a single
// wire. Bitwise and bitsliced: all eight lanes are processed in
// parallel as one byte.
//
// The four partial ANDs (n1, n2, n3, n5) are computed before any
// cross-combination. The 0xff constant enters once on the value side
// (n4) and once on the mask side (m), so the two cancel in z^m; the
// mask output is non-zero even when both input masks are zero.
func sand(p1, p2, q1, q2 byte) (z, m byte) {
	n1 := p1 & q1
	n2 := p2 & q1
	n3 := p1 & q2
	n4 := 0xff ^ n1
	n5 := p2 & q2

	z = n3 ^ n4
	m = n2 ^ n5 ^ 0xff
	return z, m
}

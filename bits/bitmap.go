package bits

// Validity bitmaps for column payloads: one bit per row, LSB first
// inside each byte, set bit = valid value.

func PackBools(in []bool) []byte {
	out := make([]byte, (len(in)+7)/8)
	for i, v := range in {
		if v {
			out[i>>3] |= 1 << (i & 7)
		}
	}
	return out
}

func UnpackBools(in []byte, rows int) []bool {
	out := make([]bool, rows)
	for i := range out {
		out[i] = in[i>>3]&(1<<(i&7)) != 0
	}
	return out
}

func BitmapBytes(rows int) int {
	return (rows + 7) / 8
}

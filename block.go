package sha256

import "math/bits"

// blocks runs the compression function over every 64-byte block in p,
// updating state in place. len(p) must be a multiple of BlockSize.
func blocks(state *[8]uint32, p []byte) {
	var w [64]uint32
	h0, h1, h2, h3 := state[0], state[1], state[2], state[3]
	h4, h5, h6, h7 := state[4], state[5], state[6], state[7]

	for len(p) >= BlockSize {
		// Message schedule: W_0..W_15 are the block words read big-endian,
		// W_16..W_63 mix earlier words through σ0 and σ1.
		for i := 0; i < 16; i++ {
			j := i * 4
			w[i] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
			v2 := w[i-15]
			t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			t1 := h +
				(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
				((e & f) ^ (^e & g)) +
				roundConsts[i] + w[i]
			t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
				((a & b) ^ (a & c) ^ (b & c))

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize:]
	}

	state[0], state[1], state[2], state[3] = h0, h1, h2, h3
	state[4], state[5], state[6], state[7] = h4, h5, h6, h7
}

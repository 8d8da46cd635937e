// Package sha256 implements the SHA-256 hash algorithm defined in
// FIPS 180-4 as an incremental hashing engine: initialize a Context,
// append arbitrary-length byte streams in any chunking, and finish to
// obtain the 32-byte digest.
package sha256

import (
	"encoding/binary"

	"github.com/jason-conway/sha256/x/unsafe"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the length in bytes of a block consumed by one
	// compression function invocation.
	BlockSize = 64
)

// Context holds the running state of an unfinished hash computation.
// The zero value is not ready for use; call Init first.
//
// A Context must not be used from more than one goroutine at a time.
// Independent Contexts share no state and need no coordination.
type Context struct {
	state  [8]uint32
	buffer [BlockSize]byte
	nx     int    // bytes currently staged in buffer, always < BlockSize between calls
	n      uint64 // total bytes appended since Init
}

// Init resets the context to the standard initial state. It is safe to
// call on a fresh or previously used context and always produces the
// identical starting point.
func (c *Context) Init() {
	c.state = initialState
	c.nx = 0
	c.n = 0
}

// Append adds data to the running hash. Appending a stream in several
// calls yields the same digest as appending it all at once; call
// boundaries are not observable in the result. A nil or empty slice is
// a no-op.
func (c *Context) Append(data []byte) {
	c.n += uint64(len(data))
	if c.nx > 0 {
		n := copy(c.buffer[c.nx:], data)
		c.nx += n
		if c.nx == BlockSize {
			blocks(&c.state, c.buffer[:])
			c.nx = 0
		}
		data = data[n:]
	}
	if len(data) >= BlockSize {
		n := len(data) &^ (BlockSize - 1)
		blocks(&c.state, data[:n])
		data = data[n:]
	}
	if len(data) > 0 {
		c.nx = copy(c.buffer[:], data)
	}
}

// Finish applies the standard padding and length suffix, runs the final
// block(s), and returns the digest of everything appended since Init.
//
// Finish consumes the context: call Init before reusing it for another
// hash. Callers that need to keep appending after taking a digest
// should use the hash.Hash adapter returned by New instead.
func (c *Context) Finish() [Size]byte {
	bitLen := c.n << 3

	// Pad with 0x80 then zeros to 56 mod 64, leaving 8 bytes for the
	// big-endian bit length, so the suffix fills the last block exactly.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	rem := c.n % BlockSize
	var padLen uint64
	if rem < 56 {
		padLen = 56 - rem
	} else {
		padLen = BlockSize + 56 - rem
	}
	binary.BigEndian.PutUint64(tmp[padLen:], bitLen)
	c.Append(tmp[:padLen+8])

	var digest [Size]byte
	for i, s := range c.state {
		binary.BigEndian.PutUint32(digest[i*4:], s)
	}
	return digest
}

// Sum256 returns the digest of data.
func Sum256(data []byte) [Size]byte {
	var c Context
	c.Init()
	c.Append(data)
	return c.Finish()
}

// SumString returns the digest of a string without copying it.
func SumString(s string) [Size]byte {
	return Sum256(unsafe.ToBytes(s))
}

// Digest hashes exactly one 32-byte value, e.g. re-hashing a key or a
// prior digest.
func Digest(key [Size]byte) [Size]byte {
	var c Context
	c.Init()
	c.Append(key[:])
	return c.Finish()
}

// SelfDigest replaces the 32 bytes in d with their own digest. The
// whole output is computed before being written back, so the aliasing
// of input and output is safe.
func SelfDigest(d *[Size]byte) {
	*d = Digest(*d)
}

package sha256

import "hash"

// digest adapts a Context to the standard hash.Hash interface.
type digest struct {
	ctx Context
}

// New returns a new hash.Hash computing the SHA-256 checksum.
func New() hash.Hash {
	d := new(digest)
	d.ctx.Init()
	return d
}

func (d *digest) Reset() { d.ctx.Init() }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.ctx.Append(p)
	return len(p), nil
}

// Sum appends the current digest to in. Finalization runs on a copy of
// the context so the caller can keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	ctx := d.ctx
	sum := ctx.Finish()
	return append(in, sum[:]...)
}

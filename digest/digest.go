// Package digest provides helpers for computing, writing, and
// validating SHA-256 digest trailers on buffers and files.
package digest

import (
	"errors"
	"hash"

	"github.com/jason-conway/sha256"
)

var (
	errDigestMismatch = errors.New("digest mismatch")
)

// NewDigest creates a new running digest over the file or buffer contents.
func NewDigest() hash.Hash {
	return sha256.New()
}

// Checksum returns the digest of a buffer.
func Checksum(buf []byte) [DigestLenBytes]byte {
	return sha256.Sum256(buf)
}

// ChecksumString returns the digest of a string without copying it.
func ChecksumString(s string) [DigestLenBytes]byte {
	return sha256.SumString(s)
}

// Validate validates the data in the buffer against its digest trailer
// and returns the data with the trailer stripped. The trailer is at the
// end of the buffer occupying `DigestLenBytes` bytes.
func Validate(b []byte) ([]byte, error) {
	if len(b) < DigestLenBytes {
		return nil, errDigestMismatch
	}
	trailerStart := len(b) - DigestLenBytes
	expected := ToBuffer(b[trailerStart:]).ReadDigest()
	if Checksum(b[:trailerStart]) != expected {
		return nil, errDigestMismatch
	}
	return b[:trailerStart], nil
}

package digest

import (
	"io"
	"os"

	"github.com/jason-conway/sha256"
)

const (
	// DigestLenBytes is the length of generated digests in bytes.
	DigestLenBytes = sha256.Size
)

// Digests are stored exactly as the engine emits them: eight 32-bit
// state words serialized most significant byte first.

// Buffer is a byte slice that facilitates digest reading and writing.
type Buffer []byte

// NewBuffer creates a new digest buffer.
func NewBuffer() Buffer {
	return make([]byte, DigestLenBytes)
}

// WriteDigest writes a digest to the buffer.
func (b Buffer) WriteDigest(digest [DigestLenBytes]byte) {
	copy(b, digest[:])
}

// WriteDigestToFile writes a digest to the file.
func (b Buffer) WriteDigestToFile(fd *os.File, digest [DigestLenBytes]byte) error {
	b.WriteDigest(digest)
	_, err := fd.Write(b)
	return err
}

// ReadDigest reads the digest from the buffer.
func (b Buffer) ReadDigest() [DigestLenBytes]byte {
	var digest [DigestLenBytes]byte
	copy(digest[:], b)
	return digest
}

// ReadDigestFromFile reads the digest from the file.
func (b Buffer) ReadDigestFromFile(fd *os.File) ([DigestLenBytes]byte, error) {
	if _, err := io.ReadFull(fd, b); err != nil {
		return [DigestLenBytes]byte{}, err
	}
	return b.ReadDigest(), nil
}

// ToBuffer converts a byte slice to a digest buffer.
func ToBuffer(buf []byte) Buffer {
	return Buffer(buf[:DigestLenBytes])
}

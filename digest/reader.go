package digest

import (
	"bufio"
	"io"
	"os"
)

// FdWithDigestReader provides a buffered reader for reading from the underlying file.
type FdWithDigestReader interface {
	fdWithDigest
	io.Reader
}

// FileWithDigestReader reads data from a file and computes the data digest
// in a streaming fashion.
type FileWithDigestReader struct {
	fdWithDigest

	reader *bufio.Reader
}

// NewFdWithDigestReader creates a new FileWithDigestReader.
func NewFdWithDigestReader(bufferSize int) *FileWithDigestReader {
	return &FileWithDigestReader{
		fdWithDigest: newFileWithDigest(),
		reader:       bufio.NewReaderSize(nil, bufferSize),
	}
}

// Reset resets the reader.
func (r *FileWithDigestReader) Reset(fd *os.File) {
	r.fdWithDigest.Reset(fd)
	r.reader.Reset(fd)
}

// Read bytes from the underlying file, folding them into the running digest.
func (r *FileWithDigestReader) Read(b []byte) (int, error) {
	n, err := r.reader.Read(b)
	if n > 0 {
		if _, werr := r.Digest().Write(b[:n]); werr != nil {
			return 0, werr
		}
	}
	return n, err
}

// Validate compares the running digest against an expected digest.
func (r *FileWithDigestReader) Validate(expected [DigestLenBytes]byte) error {
	var computed [DigestLenBytes]byte
	r.Digest().Sum(computed[:0])
	if computed != expected {
		return errDigestMismatch
	}
	return nil
}

// ReadAllAndValidate reads the entire file, validates the digest trailer,
// and returns the file contents with the trailer stripped. The running
// digest is bypassed since the trailer must not be folded into it.
func (r *FileWithDigestReader) ReadAllAndValidate() ([]byte, error) {
	b, err := io.ReadAll(r.reader)
	if err != nil {
		return nil, err
	}
	return Validate(b)
}

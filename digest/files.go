package digest

import "os"

// WriteFile writes data to a checksummed file at path, appending the
// digest trailer after the data.
func WriteFile(path string, data []byte, opts *Options) error {
	if opts == nil {
		opts = NewOptions()
	}
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, opts.NewFileMode())
	if err != nil {
		return err
	}
	w := NewFdWithDigestWriter(opts.WriteBufferSize())
	w.Reset(fd)
	if _, err := w.Write(data); err != nil {
		w.fdWithDigest.Close()
		return err
	}
	return w.Close()
}

// ReadFile reads a checksummed file at path, validates the digest
// trailer, and returns the data with the trailer stripped.
func ReadFile(path string, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = NewOptions()
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r := NewFdWithDigestReader(opts.ReadBufferSize())
	r.Reset(fd)
	return r.ReadAllAndValidate()
}

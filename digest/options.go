package digest

import (
	"os"

	"github.com/m3db/m3x/clock"
	"github.com/m3db/m3x/instrument"
)

const (
	// Default file mode when creating new files.
	defaultNewFileMode = os.FileMode(0666)

	// Default write buffer size.
	defaultWriteBufferSize = 65536

	// Default read buffer size.
	defaultReadBufferSize = 65536
)

// Options provide a set of options for digest file IO.
type Options struct {
	clockOpts       clock.Options
	instrumentOpts  instrument.Options
	newFileMode     os.FileMode
	readBufferSize  int
	writeBufferSize int
}

// NewOptions provide a new set of options.
func NewOptions() *Options {
	return &Options{
		clockOpts:       clock.NewOptions(),
		instrumentOpts:  instrument.NewOptions(),
		newFileMode:     defaultNewFileMode,
		readBufferSize:  defaultReadBufferSize,
		writeBufferSize: defaultWriteBufferSize,
	}
}

// SetClockOptions sets the clock options.
func (o *Options) SetClockOptions(v clock.Options) *Options {
	opts := *o
	opts.clockOpts = v
	return &opts
}

// ClockOptions returns the clock options.
func (o *Options) ClockOptions() clock.Options {
	return o.clockOpts
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetNewFileMode sets the new file mode.
func (o *Options) SetNewFileMode(v os.FileMode) *Options {
	opts := *o
	opts.newFileMode = v
	return &opts
}

// NewFileMode returns the new file mode.
func (o *Options) NewFileMode() os.FileMode {
	return o.newFileMode
}

// SetReadBufferSize sets the buffer size for reading checksummed files.
func (o *Options) SetReadBufferSize(v int) *Options {
	opts := *o
	opts.readBufferSize = v
	return &opts
}

// ReadBufferSize returns the buffer size for reading checksummed files.
func (o *Options) ReadBufferSize() int {
	return o.readBufferSize
}

// SetWriteBufferSize sets the buffer size for writing checksummed files.
func (o *Options) SetWriteBufferSize(v int) *Options {
	opts := *o
	opts.writeBufferSize = v
	return &opts
}

// WriteBufferSize returns the buffer size for writing checksummed files.
func (o *Options) WriteBufferSize() int {
	return o.writeBufferSize
}

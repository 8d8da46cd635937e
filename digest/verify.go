package digest

import (
	"os"

	"github.com/m3db/m3x/clock"
	xerrors "github.com/m3db/m3x/errors"
	xlog "github.com/m3db/m3x/log"
	"github.com/uber-go/tally"
)

type verifierMetrics struct {
	verified tally.Counter
	failed   tally.Counter
	latency  tally.Timer
}

func newVerifierMetrics(scope tally.Scope) verifierMetrics {
	return verifierMetrics{
		verified: scope.Counter("verified"),
		failed:   scope.Counter("failed"),
		latency:  scope.Timer("verify-latency"),
	}
}

// Verifier validates digest trailers on checksummed files. A Verifier
// reuses its reader across files and must not be shared between goroutines.
type Verifier struct {
	reader  *FileWithDigestReader
	nowFn   clock.NowFn
	logger  xlog.Logger
	metrics verifierMetrics
}

// NewVerifier creates a new verifier.
func NewVerifier(opts *Options) *Verifier {
	if opts == nil {
		opts = NewOptions()
	}
	instrumentOpts := opts.InstrumentOptions()
	return &Verifier{
		reader:  NewFdWithDigestReader(opts.ReadBufferSize()),
		nowFn:   opts.ClockOptions().NowFn(),
		logger:  instrumentOpts.Logger(),
		metrics: newVerifierMetrics(instrumentOpts.MetricsScope()),
	}
}

// VerifyFile validates the digest trailer of a single file.
func (v *Verifier) VerifyFile(path string) error {
	start := v.nowFn()
	err := v.verifyFile(path)
	v.metrics.latency.Record(v.nowFn().Sub(start))
	if err != nil {
		v.metrics.failed.Inc(1)
		v.logger.Errorf("digest verification failed for file %s: %v", path, err)
		return err
	}
	v.metrics.verified.Inc(1)
	return nil
}

// VerifyFiles validates every given file, collecting per-file errors.
func (v *Verifier) VerifyFiles(paths []string) error {
	var multiErr xerrors.MultiError
	for _, path := range paths {
		if err := v.VerifyFile(path); err != nil {
			multiErr = multiErr.Add(err)
		}
	}
	return multiErr.FinalError()
}

func (v *Verifier) verifyFile(path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	v.reader.Reset(fd)
	_, err = v.reader.ReadAllAndValidate()
	return err
}

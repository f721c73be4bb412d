// Package ethinca computes the e-thinca coincidence statistic between pairs
// of single-inspiral event rows.
//
// The overlap computation itself is pluggable: pipelines differ in how they
// define the error-ellipsoid overlap, so a Calculator is built around a
// Metric function and owns only the harness around it, including the pooled
// accuracy parameters and the pairwise scan. A Metric signals "no overlap" by
// returning the REAL8 fail-NaN sentinel (FailNaN), which the Calculator
// translates into ErrNotCoincident.
package ethinca

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/hupe1980/gwtools"
	"github.com/hupe1980/gwtools/record"
)

var (
	// ErrNotCoincident is returned when the metric reports no valid overlap
	// between the two events.
	ErrNotCoincident = errors.New("not coincident")

	// ErrNoMetric is returned by New when no Metric is supplied.
	ErrNoMetric = errors.New("no metric configured")

	// ErrNilRow is returned when a nil event row is passed in.
	ErrNilRow = errors.New("nil event row")
)

// failNaNBits is the bit pattern of the REAL8 fail-NaN sentinel: a quiet NaN
// with a designated payload, distinguishable from arithmetic NaNs.
const failNaNBits = 0x7ff80000000001a1

// FailNaN returns the REAL8 fail-NaN sentinel.
func FailNaN() float64 {
	return math.Float64frombits(failNaNBits)
}

// IsFailNaN reports whether x is the fail-NaN sentinel. Ordinary NaNs do not
// match.
func IsFailNaN(x float64) bool {
	return math.Float64bits(x) == failNaNBits
}

// SnglAccuracy holds the per-detector coincidence tolerances.
type SnglAccuracy struct {
	// DtNanoSec is the allowed end-time mismatch in nanoseconds.
	DtNanoSec float64
	// DMchirp is the allowed chirp-mass mismatch.
	DMchirp float64
	// DEta is the allowed symmetric-mass-ratio mismatch.
	DEta float64
	// Epsilon and Kappa parameterize the effective-distance cut.
	Epsilon float64
	Kappa   float64
}

// AccuracyParams is the transient tolerance structure handed to a Metric.
// Calculators pool these; a Metric must not retain one past its call.
type AccuracyParams struct {
	// Exttrig marks an externally-triggered (targeted) search.
	Exttrig bool
	// IotaCutH1H2 is the amplitude-consistency cut between the co-located
	// Hanford instruments.
	IotaCutH1H2 float64
	// Detectors holds per-instrument tolerances keyed by prefix ("H1", ...).
	Detectors map[string]SnglAccuracy
}

func (p *AccuracyParams) reset() {
	p.Exttrig = false
	p.IotaCutH1H2 = 0
	clear(p.Detectors)
}

// PopulateDefaults fills p with the library-default accuracy settings for
// every cached detector.
func PopulateDefaults(p *AccuracyParams) {
	p.Exttrig = false
	p.IotaCutH1H2 = 0.6
	for _, d := range record.CachedDetectors() {
		p.Detectors[d.Prefix()] = SnglAccuracy{
			DtNanoSec: 10e6,
			DMchirp:   0.01,
			DEta:      0.05,
			Epsilon:   2.0,
			Kappa:     0.01,
		}
	}
}

// Metric computes the pairwise overlap statistic for two event rows under
// the given accuracy parameters. It returns FailNaN() when the events do not
// overlap.
type Metric func(a, b *record.SnglInspiral, p *AccuracyParams) float64

// TimeWindow returns a trivial Metric that accepts two events whose end
// times differ by at most window and scores them by the absolute difference
// in nanoseconds. It exists for tests and examples; production pipelines
// supply their own ellipsoid-overlap metric.
func TimeWindow(window time.Duration) Metric {
	return func(a, b *record.SnglInspiral, _ *AccuracyParams) float64 {
		ta := int64(a.EndTime)*int64(time.Second) + int64(a.EndTimeNS)
		tb := int64(b.EndTime)*int64(time.Second) + int64(b.EndTimeNS)
		dt := ta - tb
		if dt < 0 {
			dt = -dt
		}
		if dt > int64(window) {
			return FailNaN()
		}
		return float64(dt)
	}
}

// Options configures a Calculator.
type Options struct {
	// Populate fills the pooled AccuracyParams before each metric call.
	// Defaults to PopulateDefaults.
	Populate func(*AccuracyParams)
	// Logger receives scan diagnostics. Defaults to a noop logger.
	Logger *gwtools.Logger
	// ScanWorkers caps the goroutines used by ScanPairs. Defaults to
	// runtime.GOMAXPROCS(0).
	ScanWorkers int
}

// Calculator runs a Metric over pairs of event rows.
type Calculator struct {
	metric      Metric
	populate    func(*AccuracyParams)
	logger      *gwtools.Logger
	scanWorkers int

	pool sync.Pool
}

// New creates a Calculator around metric.
func New(metric Metric, optFns ...func(o *Options)) (*Calculator, error) {
	if metric == nil {
		return nil, ErrNoMetric
	}

	opts := Options{
		Populate: PopulateDefaults,
		Logger:   gwtools.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Populate == nil {
		opts.Populate = PopulateDefaults
	}
	if opts.Logger == nil {
		opts.Logger = gwtools.NoopLogger()
	}

	return &Calculator{
		metric:      metric,
		populate:    opts.Populate,
		logger:      opts.Logger,
		scanWorkers: opts.ScanWorkers,
		pool: sync.Pool{
			New: func() any {
				return &AccuracyParams{Detectors: make(map[string]SnglAccuracy)}
			},
		},
	}, nil
}

// EThinca computes the overlap statistic for rows a and b.
//
// The transient AccuracyParams is taken from the pool, populated, and
// returned unconditionally. When the metric yields the fail-NaN sentinel,
// EThinca fails with ErrNotCoincident; otherwise the metric value is
// returned verbatim.
func (c *Calculator) EThinca(a, b *record.SnglInspiral) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilRow
	}

	p := c.pool.Get().(*AccuracyParams)
	defer c.pool.Put(p)

	p.reset()
	c.populate(p)

	result := c.metric(a, b, p)
	if IsFailNaN(result) {
		return 0, ErrNotCoincident
	}
	return result, nil
}

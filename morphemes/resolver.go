package morphemes

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ProbeFunc checks that opened analyzer is usable.
type ProbeFunc func(Analyzer) error

// ProbeMorphs runs canary through Morphs.
func ProbeMorphs(a Analyzer) error {
	_, err := a.Morphs(Canary)
	return err
}

// ProbePos runs canary through Pos.
func ProbePos(a Analyzer) error {
	_, err := a.Pos(Canary)
	return err
}

// Adapter knows how to bring up single analyzer implementation.
type Adapter struct {
	// Name is used for diagnostics and to disable adapter in configuration.
	Name    string
	Backend Backend
	Open    func() (Analyzer, error)
	// Probe defaults to ProbeMorphs.
	Probe ProbeFunc
}

// Resolver selects first working analyzer out of ordered list of adapters.
type Resolver struct {
	log      *zap.Logger
	adapters []Adapter
}

// NewResolver creates resolver which will try adapters in the order they are specified.
func NewResolver(log *zap.Logger, adapters ...Adapter) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		log:      log,
		adapters: adapters,
	}
}

// Adapters returns names of adapters in resolution order.
func (r *Resolver) Adapters() []string {
	names := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		names = append(names, a.Name)
	}
	return names
}

// Resolve returns first analyzer which could be opened and passes probe along with its backend. When nothing works
// it returns (nil, BackendNone), it never fails otherwise - caller has to decide what to do.
func (r *Resolver) Resolve() (Analyzer, Backend) {

	var errs error

	for _, a := range r.adapters {
		start := time.Now()
		analyzer, err := attempt(a)
		if err != nil {
			r.log.Debug("Analyzer is not available",
				zap.String("adapter", a.Name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", a.Name, err))
			continue
		}
		r.log.Debug("Analyzer selected",
			zap.String("adapter", a.Name),
			zap.Stringer("backend", a.Backend),
			zap.Duration("elapsed", time.Since(start)),
		)
		return analyzer, a.Backend
	}

	r.log.Warn("No morpheme analyzer is available", zap.Strings("tried", r.Adapters()), zap.Error(errs))
	return nil, BackendNone
}

var errNoBackend = errors.New("adapter does not specify backend")

// attempt opens and probes single adapter. Panics are treated as any other failure.
func attempt(a Adapter) (analyzer Analyzer, err error) {

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil && analyzer != nil {
			if c, ok := analyzer.(io.Closer); ok {
				err = multierr.Append(err, c.Close())
			}
			analyzer = nil
		}
	}()

	if a.Backend == BackendNone {
		return nil, errNoBackend
	}
	if a.Open == nil {
		return nil, errors.New("adapter cannot be opened")
	}
	if analyzer, err = a.Open(); err != nil {
		return analyzer, fmt.Errorf("unable to open analyzer: %w", err)
	}
	if analyzer == nil {
		return nil, errors.New("adapter returned no analyzer")
	}
	probe := a.Probe
	if probe == nil {
		probe = ProbeMorphs
	}
	if err = probe(analyzer); err != nil {
		return analyzer, fmt.Errorf("analyzer failed probe: %w", err)
	}
	return analyzer, nil
}

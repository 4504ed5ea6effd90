package diphoton

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Source supplies events one at a time. Scan calls fn once per event, in
// file order, and stops at the first error returned by fn. The event is
// only valid for the duration of the call.
type Source interface {
	Scan(ctx context.Context, fn func(ev *Event) error) error
}

// Stats counts what happened to the events of a run.
type Stats struct {
	Events      int64 // events read
	FewPhotons  int64 // fewer than two photons
	FailedCuts  int64 // leading photons failing the cuts
	OutsideGrid int64 // diphoton outside the pt-mass grid
	Filled      int64
}

func (st *Stats) add(o Stats) {
	st.Events += o.Events
	st.FewPhotons += o.FewPhotons
	st.FailedCuts += o.FailedCuts
	st.OutsideGrid += o.OutsideGrid
	st.Filled += o.Filled
}

func (st Stats) String() string {
	return fmt.Sprintf("events=%d few-photons=%d failed-cuts=%d outside-grid=%d filled=%d",
		st.Events, st.FewPhotons, st.FailedCuts, st.OutsideGrid, st.Filled,
	)
}

// Analysis fills the ratio distributions of a HistogramSet from a stream of
// events. It is not safe for concurrent use; run one Analysis per goroutine
// and Merge the results.
type Analysis struct {
	Cuts  Cuts
	Hists *HistogramSet
	Stats Stats

	// Name identifies the event source in progress reports.
	Name string

	// Log receives progress reports every ProgressEvery events when both
	// are set.
	Log           *log.Logger
	ProgressEvery int64
}

func NewAnalysis(cfg Config) (*Analysis, error) {
	hs, err := cfg.NewHistogramSet()
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Cuts:          cfg.Cuts,
		Hists:         hs,
		ProgressEvery: cfg.ProgressEvery,
	}, nil
}

// Process runs one event through selection, grid lookup and filling.
func (ana *Analysis) Process(ev *Event) error {
	ana.Stats.Events++
	yy, ok, err := ana.Cuts.Select(ev)
	switch {
	case err != nil:
		return fmt.Errorf("event %d: %w", ana.Stats.Events-1, err)
	case !ok && ev.N < 2:
		ana.Stats.FewPhotons++
		return nil
	case !ok:
		ana.Stats.FailedCuts++
		return nil
	}

	if !ana.Hists.Fill(yy.Pt(), yy.M(), yy.Ratio()) {
		ana.Stats.OutsideGrid++
		return nil
	}
	ana.Stats.Filled++
	return nil
}

// Run processes every event of src.
func (ana *Analysis) Run(ctx context.Context, src Source) error {
	start := time.Now()
	return src.Scan(ctx, func(ev *Event) error {
		err := ana.Process(ev)
		if err != nil {
			return err
		}
		if ana.Log != nil && ana.ProgressEvery > 0 && ana.Stats.Events%ana.ProgressEvery == 0 {
			ana.Log.Printf("%s: processed %d events (%v)", ana.Name, ana.Stats.Events, time.Since(start).Round(time.Millisecond))
		}
		return nil
	})
}

// Merge folds the results of o into ana.
func (ana *Analysis) Merge(o *Analysis) error {
	if err := ana.Hists.Merge(o.Hists); err != nil {
		return err
	}
	ana.Stats.add(o.Stats)
	return nil
}

// Events is an in-memory Source.
type Events []Event

func (evs Events) Scan(ctx context.Context, fn func(ev *Event) error) error {
	for i := range evs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(&evs[i]); err != nil {
			return err
		}
	}
	return nil
}

func sourceName(src Source, i int) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("source %d", i)
}

// RunAll processes srcs with up to njobs concurrent workers, one Analysis
// per source, and merges the results in source order.
func RunAll(ctx context.Context, cfg Config, srcs []Source, njobs int, msg *log.Logger) (*Analysis, error) {
	if njobs < 1 {
		njobs = 1
	}
	anas := make([]*Analysis, len(srcs))
	for i := range anas {
		ana, err := NewAnalysis(cfg)
		if err != nil {
			return nil, err
		}
		ana.Log = msg
		ana.Name = sourceName(srcs[i], i)
		anas[i] = ana
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(njobs)
	for i, src := range srcs {
		ana := anas[i]
		src := src
		grp.Go(func() error {
			return ana.Run(ctx, src)
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	tot, err := NewAnalysis(cfg)
	if err != nil {
		return nil, err
	}
	for _, ana := range anas {
		if err := tot.Merge(ana); err != nil {
			return nil, err
		}
	}
	return tot, nil
}

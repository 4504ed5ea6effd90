package diphoton

import (
	"context"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/rtree"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// TreeSource reads the photon columns of a flat ROOT tree:
// photon_n (int32) and the photon_pt, photon_eta, photon_phi and photon_m
// float32 arrays indexed by it.
type TreeSource struct {
	File string
	Tree string
}

func (src TreeSource) String() string { return src.File }

func (src TreeSource) Scan(ctx context.Context, fn func(ev *Event) error) error {
	f, err := groot.Open(src.File)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", src.File, err)
	}
	defer f.Close()

	o, err := f.Get(src.Tree)
	if err != nil {
		return fmt.Errorf("could not find tree %q in %q: %w", src.Tree, src.File, err)
	}
	t, ok := o.(rtree.Tree)
	if !ok {
		return fmt.Errorf("%q in %q is a %T, not a tree", src.Tree, src.File, o)
	}

	var (
		n               int32
		pt, eta, phi, m []float32
	)
	rvars := []rtree.ReadVar{
		{Name: "photon_n", Value: &n},
		{Name: "photon_pt", Value: &pt},
		{Name: "photon_eta", Value: &eta},
		{Name: "photon_phi", Value: &phi},
		{Name: "photon_m", Value: &m},
	}
	r, err := rtree.NewReader(t, rvars)
	if err != nil {
		return fmt.Errorf("could not create reader for %q: %w", src.File, err)
	}
	defer r.Close()

	var ev Event
	err = r.Read(func(rctx rtree.RCtx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev.N = int(n)
		ev.Pt = widen(ev.Pt, pt)
		ev.Eta = widen(ev.Eta, eta)
		ev.Phi = widen(ev.Phi, phi)
		ev.M = widen(ev.M, m)
		if err := fn(&ev); err != nil {
			return fmt.Errorf("%s entry %d: %w", src.File, rctx.Entry, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not read %q: %w", src.File, err)
	}
	return nil
}

func widen(dst []float64, src []float32) []float64 {
	dst = dst[:0]
	for _, v := range src {
		dst = append(dst, float64(v))
	}
	return dst
}

// WriteROOT stores every distribution of hs in a new ROOT file, keyed by
// its slot name.
func WriteROOT(fname string, hs *HistogramSet) error {
	f, err := groot.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", fname, err)
	}
	defer f.Close()

	for slot := 0; slot < hs.Len(); slot++ {
		key := hs.Grid.Name(slot)
		err := f.Put(key, rhist.NewH1DFrom(hs.H1D(slot)))
		if err != nil {
			return fmt.Errorf("could not write %q: %w", key, err)
		}
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("could not close %q: %w", fname, err)
	}
	return nil
}

// ReadROOT loads the distributions written by WriteROOT for grid, in
// slot order.
func ReadROOT(fname string, grid Grid) ([]*hbook.H1D, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", fname, err)
	}
	defer f.Close()

	hists := make([]*hbook.H1D, grid.Len())
	for slot := range hists {
		key := grid.Name(slot)
		o, err := f.Get(key)
		if err != nil {
			return nil, fmt.Errorf("could not find %q in %q: %w", key, fname, err)
		}
		h, ok := o.(rhist.H1)
		if !ok {
			return nil, fmt.Errorf("%q in %q is a %T, not a 1-D histogram", key, fname, o)
		}
		hists[slot] = rootcnv.H1D(h)
	}
	return hists, nil
}

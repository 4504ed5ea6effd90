package diphoton

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/hbook"
)

var ErrIncompatible = errors.New("incompatible histogram sets")

const ratioTitle = "p_{T}^{#gamma_{1}} / p_{T}^{#gamma_{2}}"

// HistogramSet holds one ratio distribution per grid slot. All
// distributions share the same fixed binning; values outside it land in
// the under/overflow of the distribution instead of being dropped.
type HistogramSet struct {
	Grid Grid

	nbins    int
	low, upp float64
	hists    []*hbook.H1D
}

func NewHistogramSet(grid Grid, nbins int, low, upp float64) *HistogramSet {
	hs := &HistogramSet{
		Grid:  grid,
		nbins: nbins,
		low:   low,
		upp:   upp,
		hists: make([]*hbook.H1D, grid.Len()),
	}
	for slot := range hs.hists {
		hs.hists[slot] = hs.newH1D(slot)
	}
	return hs
}

func (hs *HistogramSet) newH1D(slot int) *hbook.H1D {
	h := hbook.NewH1D(hs.nbins, hs.low, hs.upp)
	h.Annotation()["name"] = hs.Grid.Name(slot)
	h.Annotation()["title"] = ratioTitle
	return h
}

// Len returns the number of slots.
func (hs *HistogramSet) Len() int { return len(hs.hists) }

// Record adds one observation to the distribution of slot.
func (hs *HistogramSet) Record(slot int, v float64) {
	hs.hists[slot].Fill(v, 1)
}

// Fill locates (pt, m) on the grid and records v there. It reports false
// when (pt, m) is outside the grid.
func (hs *HistogramSet) Fill(pt, m, v float64) bool {
	slot, ok := hs.Grid.Locate(pt, m)
	if !ok {
		return false
	}
	hs.Record(slot, v)
	return true
}

// H1D returns the distribution of slot.
func (hs *HistogramSet) H1D(slot int) *hbook.H1D {
	return hs.hists[slot]
}

// Merge adds the contents of o into hs, slot by slot.
func (hs *HistogramSet) Merge(o *HistogramSet) error {
	if !hs.Grid.equal(o.Grid) {
		return fmt.Errorf("%w: grids differ", ErrIncompatible)
	}
	if hs.nbins != o.nbins || hs.low != o.low || hs.upp != o.upp {
		return fmt.Errorf("%w: binning [%d, %g, %g) vs [%d, %g, %g)",
			ErrIncompatible, hs.nbins, hs.low, hs.upp, o.nbins, o.low, o.upp,
		)
	}
	for slot, h := range hs.hists {
		sum := hbook.AddH1D(h, o.hists[slot])
		if sum.Ann == nil {
			sum.Ann = make(hbook.Annotation)
		}
		sum.Annotation()["name"] = hs.Grid.Name(slot)
		sum.Annotation()["title"] = ratioTitle
		hs.hists[slot] = sum
	}
	return nil
}

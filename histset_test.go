package diphoton

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramSetRecord(t *testing.T) {
	hs := NewHistogramSet(refGrid(), 38, 1, 20)
	require.Equal(t, 12, hs.Len())

	for slot := 0; slot < hs.Len(); slot++ {
		h := hs.H1D(slot)
		assert.Equal(t, 38, h.Len())
		assert.Equal(t, refGrid().Name(slot), h.Name())
		assert.Equal(t, int64(0), h.Entries())
	}

	hs.Record(4, 2.5)
	hs.Record(4, 3.5)
	assert.Equal(t, int64(2), hs.H1D(4).Entries())
	assert.InDelta(t, 3, hs.H1D(4).XMean(), 1e-12)
	assert.Panics(t, func() { hs.Record(12, 1) })
}

func TestHistogramSetOutflows(t *testing.T) {
	hs := NewHistogramSet(refGrid(), 38, 1, 20)
	hs.Record(0, 0.5)
	hs.Record(0, 25)
	hs.Record(0, 20)

	h := hs.H1D(0)
	assert.Equal(t, int64(3), h.Entries(), "out of range ratios are kept")
	assert.Equal(t, int64(1), h.Binning.Outflows[0].Entries())
	assert.Equal(t, int64(2), h.Binning.Outflows[1].Entries())
}

func TestHistogramSetFill(t *testing.T) {
	hs := NewHistogramSet(refGrid(), 38, 1, 20)
	assert.True(t, hs.Fill(320, 140, 2))
	assert.False(t, hs.Fill(320, 170, 2), "grid misses are dropped")
	assert.False(t, hs.Fill(math.NaN(), 140, 2))

	for slot := 0; slot < hs.Len(); slot++ {
		want := int64(0)
		if slot == 5 {
			want = 1
		}
		assert.Equal(t, want, hs.H1D(slot).Entries(), "slot %d", slot)
	}
}

func TestHistogramSetMerge(t *testing.T) {
	a := NewHistogramSet(refGrid(), 38, 1, 20)
	b := NewHistogramSet(refGrid(), 38, 1, 20)
	all := NewHistogramSet(refGrid(), 38, 1, 20)

	for i, v := range []float64{1.2, 3.4, 5, 19.9, 25, 0.1, 7.7} {
		slot := i % 3
		all.Record(slot, v)
		if i%2 == 0 {
			a.Record(slot, v)
		} else {
			b.Record(slot, v)
		}
	}

	require.NoError(t, a.Merge(b))
	for slot := 0; slot < a.Len(); slot++ {
		assert.Equal(t, refGrid().Name(slot), a.H1D(slot).Name())
		assert.Equal(t, ratioTitle, a.H1D(slot).Annotation()["title"])
	}
	for slot := 0; slot < all.Len(); slot++ {
		want, got := all.H1D(slot), a.H1D(slot)
		assert.Equal(t, want.Entries(), got.Entries())
		assert.InDelta(t, want.SumW(), got.SumW(), 1e-12)
		for i := range want.Binning.Bins {
			assert.Equal(t, want.Binning.Bins[i].Entries(), got.Binning.Bins[i].Entries())
		}
		for i := range want.Binning.Outflows {
			assert.Equal(t, want.Binning.Outflows[i].Entries(), got.Binning.Outflows[i].Entries())
		}
		assert.InDelta(t, want.XMean(), got.XMean(), 1e-12)
	}
}

func TestHistogramSetMergeIncompatible(t *testing.T) {
	hs := NewHistogramSet(refGrid(), 38, 1, 20)

	other := NewGrid(MustBinEdges(250, 300), MustBinEdges(105, 160))
	assert.ErrorIs(t, hs.Merge(NewHistogramSet(other, 38, 1, 20)), ErrIncompatible)
	assert.ErrorIs(t, hs.Merge(NewHistogramSet(refGrid(), 19, 1, 20)), ErrIncompatible)
}

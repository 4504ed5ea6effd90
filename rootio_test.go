package diphoton

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// createTree writes evs as a "mini" tree with the photon branches.
func createTree(t *testing.T, fname string, evs Events) {
	t.Helper()

	f, err := groot.Create(fname)
	require.NoError(t, err)
	defer f.Close()

	var (
		n               int32
		pt, eta, phi, m []float32
	)
	wvars := []rtree.WriteVar{
		{Name: "photon_n", Value: &n},
		{Name: "photon_pt", Value: &pt, Count: "photon_n"},
		{Name: "photon_eta", Value: &eta, Count: "photon_n"},
		{Name: "photon_phi", Value: &phi, Count: "photon_n"},
		{Name: "photon_m", Value: &m, Count: "photon_n"},
	}
	w, err := rtree.NewWriter(f, "mini", wvars)
	require.NoError(t, err)

	narrow := func(vs []float64) []float32 {
		out := make([]float32, len(vs))
		for i, v := range vs {
			out[i] = float32(v)
		}
		return out
	}
	for _, ev := range evs {
		n = int32(ev.N)
		pt, eta, phi, m = narrow(ev.Pt), narrow(ev.Eta), narrow(ev.Phi), narrow(ev.M)
		_, err = w.Write()
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestTreeSource(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "data.root")
	evs := Events{
		{N: 0, Pt: []float64{}, Eta: []float64{}, Phi: []float64{}, M: []float64{}},
		*photons([]float64{120, 80, 30}, []float64{0.5, -1, 2}, []float64{1, -2, 3}),
		diphotonEvent(325, 140, 2),
	}
	createTree(t, fname, evs)

	var got []Event
	src := TreeSource{File: fname, Tree: "mini"}
	err := src.Scan(context.Background(), func(ev *Event) error {
		got = append(got, Event{
			N:   ev.N,
			Pt:  append([]float64(nil), ev.Pt...),
			Eta: append([]float64(nil), ev.Eta...),
			Phi: append([]float64(nil), ev.Phi...),
			M:   append([]float64(nil), ev.M...),
		})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, len(evs))

	for i, want := range evs {
		assert.Equal(t, want.N, got[i].N, "event %d", i)
		require.Len(t, got[i].Pt, want.N)
		for j := 0; j < want.N; j++ {
			assert.InDelta(t, want.Pt[j], got[i].Pt[j], 1e-4)
			assert.InDelta(t, want.Eta[j], got[i].Eta[j], 1e-6)
			assert.InDelta(t, want.Phi[j], got[i].Phi[j], 1e-6)
			assert.InDelta(t, want.M[j], got[i].M[j], 1e-6)
		}
	}

	ana, err := NewAnalysis(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, ana.Run(context.Background(), src))
	assert.Equal(t, Stats{Events: 3, FewPhotons: 1, OutsideGrid: 1, Filled: 1}, ana.Stats)
}

func TestTreeSourceMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "data.root")
	createTree(t, fname, Events{diphotonEvent(325, 140, 2)})

	err := TreeSource{File: fname, Tree: "nope"}.Scan(context.Background(), func(*Event) error { return nil })
	assert.Error(t, err)

	err = TreeSource{File: fname + ".missing", Tree: "mini"}.Scan(context.Background(), func(*Event) error { return nil })
	assert.Error(t, err)
}

func TestWriteReadROOT(t *testing.T) {
	hs := NewHistogramSet(refGrid(), 38, 1, 20)
	hs.Record(5, 2)
	hs.Record(5, 3)
	hs.Record(5, 4)
	hs.Record(11, 1.5)

	fname := filepath.Join(t.TempDir(), "ptrat.root")
	require.NoError(t, WriteROOT(fname, hs))

	hists, err := ReadROOT(fname, refGrid())
	require.NoError(t, err)
	require.Len(t, hists, hs.Len())

	for slot, got := range hists {
		want := hs.H1D(slot)
		assert.Equal(t, want.Len(), got.Len(), "slot %d", slot)
		for i := range want.Binning.Bins {
			assert.InDelta(t, want.Binning.Bins[i].SumW(), got.Binning.Bins[i].SumW(), 1e-12, "slot %d bin %d", slot, i)
		}
	}

	other := NewGrid(MustBinEdges(0, 10), MustBinEdges(0, 10))
	_, err = ReadROOT(fname, other)
	assert.Error(t, err)
}

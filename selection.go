package diphoton

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrMalformedEvent = errors.New("malformed event")

// Event is one entry of the photon columns of the input tree. The first N
// elements of each slice describe the photon candidates, in file order.
type Event struct {
	N   int
	Pt  []float64
	Eta []float64
	Phi []float64
	M   []float64
}

func (ev *Event) check() error {
	if ev.N < 0 {
		return fmt.Errorf("%w: negative photon count %d", ErrMalformedEvent, ev.N)
	}
	for _, col := range [][]float64{ev.Pt, ev.Eta, ev.Phi, ev.M} {
		if len(col) < ev.N {
			return fmt.Errorf("%w: photon count %d but column has %d entries", ErrMalformedEvent, ev.N, len(col))
		}
	}
	return nil
}

// Cuts are the photon acceptance requirements. Transverse momentum
// thresholds are fractions of a reference mass.
type Cuts struct {
	RefMass       float64 `yaml:"ref_mass"`
	LeadPtFrac    float64 `yaml:"lead_pt_frac"`
	SubleadPtFrac float64 `yaml:"sublead_pt_frac"`
	CrackLow      float64 `yaml:"crack_low"`
	CrackHigh     float64 `yaml:"crack_high"`
	MaxAbsEta     float64 `yaml:"max_abs_eta"`
}

func DefaultCuts() Cuts {
	return Cuts{
		RefMass:       125,
		LeadPtFrac:    0.35,
		SubleadPtFrac: 0.25,
		CrackLow:      1.37,
		CrackHigh:     1.52,
		MaxAbsEta:     2.37,
	}
}

// EtaVeto reports whether |eta| falls in the barrel/endcap transition
// region or beyond the acceptance. Both bounds are exclusive.
func (c Cuts) EtaVeto(absEta float64) bool {
	return (c.CrackLow < absEta && absEta < c.CrackHigh) || c.MaxAbsEta < absEta
}

// Diphoton is the leading photon pair of an accepted event.
type Diphoton struct {
	Lead, Sublead Vector4
	Sum           Vector4
}

func (d Diphoton) Pt() float64 { return d.Sum.Pt() }
func (d Diphoton) M() float64  { return d.Sum.M() }

// Ratio is the leading over subleading transverse momentum.
func (d Diphoton) Ratio() float64 {
	return math.Abs(d.Lead.Pt() / d.Sublead.Pt())
}

// Select builds the photons of ev, orders them by decreasing transverse
// momentum and applies the cuts to the two leading ones. Photons with equal
// transverse momentum keep their input order. It reports false for events
// with fewer than two photons or failing the cuts; only malformed input
// yields an error.
func (c Cuts) Select(ev *Event) (Diphoton, bool, error) {
	if err := ev.check(); err != nil {
		return Diphoton{}, false, err
	}
	if ev.N < 2 {
		return Diphoton{}, false, nil
	}

	photons := make([]Vector4, ev.N)
	for i := range photons {
		photons[i] = NewPtEtaPhiM(ev.Pt[i], ev.Eta[i], ev.Phi[i], ev.M[i])
	}
	slices.SortStableFunc(photons, func(a, b Vector4) int {
		switch pa, pb := a.Pt(), b.Pt(); {
		case pa > pb:
			return -1
		case pa < pb:
			return +1
		}
		return 0
	})

	y1, y2 := photons[0], photons[1]
	if y1.Pt() < c.LeadPtFrac*c.RefMass ||
		y2.Pt() < c.SubleadPtFrac*c.RefMass ||
		c.EtaVeto(math.Abs(y1.Eta())) ||
		c.EtaVeto(math.Abs(y2.Eta())) {
		return Diphoton{}, false, nil
	}

	return Diphoton{Lead: y1, Sublead: y2, Sum: y1.Add(y2)}, true, nil
}

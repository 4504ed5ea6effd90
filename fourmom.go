package diphoton

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Vector4 is a four-momentum held in Cartesian form.
type Vector4 struct {
	p fmom.PxPyPzE
}

// NewPtEtaPhiM builds a four-momentum from transverse momentum,
// pseudorapidity, azimuth and mass.
func NewPtEtaPhiM(pt, eta, phi, m float64) Vector4 {
	var v Vector4
	v.p.SetPtEtaPhiM(pt, eta, phi, m)
	return v
}

func (v Vector4) Px() float64 { return v.p.Px() }
func (v Vector4) Py() float64 { return v.p.Py() }
func (v Vector4) Pz() float64 { return v.p.Pz() }
func (v Vector4) E() float64  { return v.p.E() }

func (v Vector4) Pt() float64 { return math.Hypot(v.p.Px(), v.p.Py()) }

func (v Vector4) Eta() float64 { return v.p.Eta() }

// M returns the invariant mass. A negative m^2 from rounding or
// unphysical input yields zero.
func (v Vector4) M() float64 {
	return math.Sqrt(math.Max(0, v.p.M2()))
}

// Add returns the sum of v and o.
func (v Vector4) Add(o Vector4) Vector4 {
	var sum Vector4
	sum.p.Set(fmom.Add(&v.p, &o.p))
	return sum
}

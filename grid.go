package diphoton

import (
	"fmt"
	"slices"
)

// Grid combines a transverse momentum axis and a mass axis into a dense
// rectangular grid of slots. Slot numbering is row-major in pt:
// slot = iPt*nMass + iMass.
type Grid struct {
	Pt   BinEdges
	Mass BinEdges
}

func NewGrid(pt, mass BinEdges) Grid {
	return Grid{Pt: pt, Mass: mass}
}

// Len returns the number of slots.
func (g Grid) Len() int {
	return g.Pt.Len() * g.Mass.Len()
}

// Slot returns the flat slot of the (iPt, iMass) cell.
func (g Grid) Slot(iPt, iMass int) int {
	return iPt*g.Mass.Len() + iMass
}

// Cell is the inverse of Slot.
func (g Grid) Cell(slot int) (iPt, iMass int) {
	n := g.Mass.Len()
	return slot / n, slot % n
}

// Locate maps (pt, m) to a slot. Values outside either axis are not
// clamped: Locate reports false and the observation is dropped.
func (g Grid) Locate(pt, m float64) (int, bool) {
	i, ok := g.Pt.Index(pt)
	if !ok {
		return -1, false
	}
	j, ok := g.Mass.Index(m)
	if !ok {
		return -1, false
	}
	return g.Slot(i, j), true
}

// Name is the histogram key of a slot, e.g. "ptrat pt_yy:300-350 m_yy:121-129".
func (g Grid) Name(slot int) string {
	i, j := g.Cell(slot)
	ptLo, ptHi := g.Pt.Bin(i)
	mLo, mHi := g.Mass.Bin(j)
	return fmt.Sprintf("ptrat pt_yy:%g-%g m_yy:%g-%g", ptLo, ptHi, mLo, mHi)
}

// Label is a human-readable description of a slot.
func (g Grid) Label(slot int) string {
	i, j := g.Cell(slot)
	ptLo, ptHi := g.Pt.Bin(i)
	mLo, mHi := g.Mass.Bin(j)
	return fmt.Sprintf("pt in [%g,%g), m in [%g,%g)", ptLo, ptHi, mLo, mHi)
}

func (g Grid) equal(o Grid) bool {
	return slices.Equal(g.Pt.edges, o.Pt.edges) && slices.Equal(g.Mass.edges, o.Mass.edges)
}

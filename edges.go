package diphoton

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrInvalidEdges = errors.New("invalid bin edges")

// BinEdges is an immutable, strictly increasing list of bin boundaries.
// N edges define N-1 bins, each closed on its lower edge and open on its
// upper edge. The last edge may be +Inf, making the top bin unbounded.
type BinEdges struct {
	edges []float64
}

func NewBinEdges(edges ...float64) (BinEdges, error) {
	if len(edges) < 2 {
		return BinEdges{}, fmt.Errorf("%w: need at least 2 edges, got %d", ErrInvalidEdges, len(edges))
	}
	for i, x := range edges {
		switch {
		case math.IsNaN(x):
			return BinEdges{}, fmt.Errorf("%w: edge %d is NaN", ErrInvalidEdges, i)
		case math.IsInf(x, -1):
			return BinEdges{}, fmt.Errorf("%w: edge %d is -Inf", ErrInvalidEdges, i)
		case math.IsInf(x, 1) && i != len(edges)-1:
			return BinEdges{}, fmt.Errorf("%w: only the last edge may be +Inf", ErrInvalidEdges)
		case i > 0 && x <= edges[i-1]:
			return BinEdges{}, fmt.Errorf("%w: edges not strictly increasing at %d (%g <= %g)", ErrInvalidEdges, i, x, edges[i-1])
		}
	}
	return BinEdges{edges: append([]float64(nil), edges...)}, nil
}

// MustBinEdges is like NewBinEdges but panics on invalid input.
func MustBinEdges(edges ...float64) BinEdges {
	b, err := NewBinEdges(edges...)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of bins.
func (b BinEdges) Len() int {
	if len(b.edges) == 0 {
		return 0
	}
	return len(b.edges) - 1
}

func (b BinEdges) Edges() []float64 {
	return append([]float64(nil), b.edges...)
}

// Bin returns the lower and upper edge of bin i.
func (b BinEdges) Bin(i int) (lo, hi float64) {
	return b.edges[i], b.edges[i+1]
}

// Index returns the bin holding x, found from the first edge strictly
// greater than x. It reports false when x is below the first edge, at or
// above the last one, or NaN.
func (b BinEdges) Index(x float64) (int, bool) {
	i := sort.Search(len(b.edges), func(i int) bool { return b.edges[i] > x })
	if i == 0 || i == len(b.edges) {
		return -1, false
	}
	return i - 1, true
}

package diphoton

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places labelled major ticks on round values, with about
// NSuggestedTicks of them over the axis range, and unlabelled minor ticks
// in between.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.NSuggestedTicks
	if n < 2 {
		n = 4
	}
	if max <= min {
		panic("illegal range")
	}

	mult, tens := majorStep(min, max, n)
	major := float64(mult) * tens
	pow := math.Pow10(max0(-int(math.Floor(math.Log10(tens)))))

	var ticks []plot.Tick
	for k := math.Ceil(min / major); k*major <= max; k++ {
		v := math.Round(k*major*pow) / pow
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}

	// minor ticks falling on a multiple of ndiv coincide with a major one
	ndiv := minorDivisions(mult)
	minor := major / float64(ndiv)
	for k := math.Ceil(min / minor); k*minor <= max; k++ {
		if math.Mod(k, float64(ndiv)) == 0 {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: k * minor})
	}
	return ticks
}

// majorStep returns the spacing of major ticks as mult*tens, tens being a
// power of ten.
func majorStep(min, max float64, n int) (mult int, tens float64) {
	tens = math.Pow10(int(math.Floor(math.Log10(max - min))))
	span := (max - min) / tens
	for span < float64(n)-1 {
		tens /= 10
		span = (max - min) / tens
	}

	mult = int(span / float64(n-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	return mult, tens
}

func minorDivisions(mult int) int {
	switch mult {
	case 3, 6:
		return 3
	case 5:
		return 5
	}
	return 2
}

func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

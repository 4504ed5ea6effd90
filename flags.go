package diphoton

import (
	"fmt"
	"strconv"
	"strings"
)

// EdgesFlag is a flag.Value collecting bin edges. Values may be given as
// repeated flags, as a comma-separated list, or both; "inf" denotes an
// unbounded top edge. The first Set discards the default edges.
type EdgesFlag struct {
	Edges   []float64
	beenSet bool
}

func (f *EdgesFlag) Set(valueStr string) error {
	if !f.beenSet {
		f.beenSet = true
		f.Edges = nil
	}

	for _, field := range strings.Split(valueStr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("invalid bin edge %q: %w", field, err)
		}
		f.Edges = append(f.Edges, value)
	}
	return nil
}

func (f *EdgesFlag) String() string {
	if f == nil {
		return ""
	}
	strs := make([]string, len(f.Edges))
	for i, v := range f.Edges {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, ",")
}

// IsSet reports whether the flag was given on the command line.
func (f *EdgesFlag) IsSet() bool { return f.beenSet }

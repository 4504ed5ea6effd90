package diphoton

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of analysis constants.
type Config struct {
	Tree      string    `yaml:"tree"`
	PtEdges   []float64 `yaml:"pt_edges"`
	MassEdges []float64 `yaml:"m_edges"`

	RatioBins int     `yaml:"ratio_bins"`
	RatioMin  float64 `yaml:"ratio_min"`
	RatioMax  float64 `yaml:"ratio_max"`

	Cuts Cuts `yaml:"cuts"`

	// ProgressEvery is the number of events between progress reports.
	// Zero disables them.
	ProgressEvery int64 `yaml:"progress_every"`
}

func DefaultConfig() Config {
	return Config{
		Tree:          "mini",
		PtEdges:       []float64{250, 300, 350, 400, math.Inf(+1)},
		MassEdges:     []float64{105, 121, 129, 160},
		RatioBins:     38,
		RatioMin:      1,
		RatioMax:      20,
		Cuts:          DefaultCuts(),
		ProgressEvery: 1000000,
	}
}

// LoadConfig reads a YAML file on top of the default configuration.
// The unbounded top edge is written as .inf.
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(fname)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("could not decode config %q: %w", fname, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", fname, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if _, err := cfg.Grid(); err != nil {
		return err
	}
	if cfg.RatioBins <= 0 {
		return fmt.Errorf("ratio binning needs at least one bin, got %d", cfg.RatioBins)
	}
	if !(cfg.RatioMin < cfg.RatioMax) {
		return fmt.Errorf("ratio range [%g, %g) is empty", cfg.RatioMin, cfg.RatioMax)
	}
	if cfg.Cuts.CrackLow > cfg.Cuts.CrackHigh {
		return fmt.Errorf("crack window (%g, %g) is inverted", cfg.Cuts.CrackLow, cfg.Cuts.CrackHigh)
	}
	return nil
}

// Grid builds the pt-mass grid from the configured edges.
func (cfg Config) Grid() (Grid, error) {
	pt, err := NewBinEdges(cfg.PtEdges...)
	if err != nil {
		return Grid{}, fmt.Errorf("pt edges: %w", err)
	}
	m, err := NewBinEdges(cfg.MassEdges...)
	if err != nil {
		return Grid{}, fmt.Errorf("mass edges: %w", err)
	}
	return NewGrid(pt, m), nil
}

// NewHistogramSet allocates an empty histogram set for cfg.
func (cfg Config) NewHistogramSet() (*HistogramSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	return NewHistogramSet(grid, cfg.RatioBins, cfg.RatioMin, cfg.RatioMax), nil
}

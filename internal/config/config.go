package config

import (
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/qsweep/internal/sweep"
)

const (
	DefaultEc         = 0.3
	DefaultN          = 10
	DefaultNgPoints   = 21
	DefaultRatioMin   = 1.0
	DefaultRatioMax   = 100.0
	DefaultRatioCount = 50
)

type Config struct {
	Ec         float64   `yaml:"ec"`
	N          int       `yaml:"n"`
	NgPoints   int       `yaml:"ng_points"`
	RatioMin   float64   `yaml:"ratio_min"`
	RatioMax   float64   `yaml:"ratio_max"`
	RatioCount int       `yaml:"ratio_count"`
	Ratios     []float64 `yaml:"ratios,omitempty"`
	Workers    int       `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Ec:         DefaultEc,
		N:          DefaultN,
		NgPoints:   DefaultNgPoints,
		RatioMin:   DefaultRatioMin,
		RatioMax:   DefaultRatioMax,
		RatioCount: DefaultRatioCount,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RatioValues returns the Ej/Ec values to sweep. An explicit ratios list
// takes precedence; otherwise RatioCount values are spaced evenly over
// [RatioMin, RatioMax].
func (c *Config) RatioValues() []float64 {
	if len(c.Ratios) > 0 {
		out := make([]float64, len(c.Ratios))
		copy(out, c.Ratios)
		return out
	}
	if c.RatioCount <= 0 {
		return nil
	}
	if c.RatioCount == 1 {
		return []float64{c.RatioMin}
	}
	return floats.Span(make([]float64, c.RatioCount), c.RatioMin, c.RatioMax)
}

// SweepConfig translates the file-level configuration into the engine's.
func (c *Config) SweepConfig() sweep.Config {
	return sweep.Config{
		Ec:       c.Ec,
		N:        c.N,
		NgPoints: c.NgPoints,
		Ratios:   c.RatioValues(),
		Workers:  c.Workers,
	}
}

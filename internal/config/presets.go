package config

import "sort"

var Presets = map[string]*Config{
	// The canonical design sweep: 50 ratios from the charge-qubit boundary
	// deep into the transmon regime.
	"standard": {
		Ec: 0.3, N: 10, NgPoints: 21,
		RatioMin: 1, RatioMax: 100, RatioCount: 50,
	},
	// Low ratios, where charge dispersion dominates; denser ng grid to
	// resolve the steep f01(ng) bands.
	"charge_qubit": {
		Ec: 0.3, N: 10, NgPoints: 41,
		RatioMin: 1, RatioMax: 10, RatioCount: 30,
	},
	// High ratios need a wider charge basis to keep truncation error out
	// of the upper levels.
	"deep": {
		Ec: 0.25, N: 15, NgPoints: 21,
		RatioMin: 50, RatioMax: 200, RatioCount: 40,
	},
	"fine": {
		Ec: 0.3, N: 10, NgPoints: 41,
		RatioMin: 1, RatioMax: 100, RatioCount: 200,
		Workers: 4,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

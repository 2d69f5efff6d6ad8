package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig holds every tunable of a simulation run. Zero values are
// filled from defaults before flag and file resolution.
type runConfig struct {
	ChainLength int     `yaml:"chain_length"`
	Steps       int     `yaml:"steps"`
	SampleEvery int     `yaml:"sample_every"`
	Seed        int64   `yaml:"seed"`
	EndWeight   float64 `yaml:"end_weight"`
	CornerW     float64 `yaml:"corner_weight"`
	CrankW      float64 `yaml:"crankshaft_weight"`
	HPSequence  string  `yaml:"hp_sequence"`
	KT          float64 `yaml:"kt"`
	TrajPath    string  `yaml:"traj"`
	CSVPath     string  `yaml:"csv"`
	PrintEvery  int     `yaml:"print_every"`
}

// defaultConfig mirrors the original workflow's defaults: a 6-bead chain,
// 20000 steps, sampling every 50, seed 123, 0.4/0.4/0.2 move weights.
func defaultConfig() runConfig {
	return runConfig{
		ChainLength: 6,
		Steps:       20000,
		SampleEvery: 50,
		Seed:        123,
		EndWeight:   0.4,
		CornerW:     0.4,
		CrankW:      0.2,
		KT:          0.5,
		TrajPath:    "traj.xyz",
		CSVPath:     "saw_observables.csv",
		PrintEvery:  1000,
	}
}

// loadConfigFile overlays a YAML file onto cfg. Unknown keys are
// rejected so typos surface instead of silently running defaults.
func loadConfigFile(path string, cfg *runConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

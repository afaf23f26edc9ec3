// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the JSON-driven input file that ties together
// a soil-type table, a layer stack and the engine's forcing/solver
// options, in the same decode-then-validate style gofem uses for its
// .sim files.
package config

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lgar/layer"
	"github.com/cpmech/lgar/soiltype"
)

// integerRatioTolerance bounds how far forcing_interval_h/substep_h may
// stray from a whole number and still be accepted as one.
const integerRatioTolerance = 1e-9

// Verbosity is the string enum the config file spells out, decoded into
// the level the engine and CLI actually compare against.
type Verbosity string

const (
	VerbosityNone Verbosity = "none"
	VerbosityLow  Verbosity = "low"
	VerbosityHigh Verbosity = "high"
)

// Level maps the enum onto the integer ordering bmi.Engine compares
// against (none < low < high).
func (v Verbosity) Level() int {
	switch v {
	case VerbosityLow:
		return 1
	case VerbosityHigh:
		return 2
	default:
		return 0
	}
}

// SoilEntry is one row of the soil-type table: a name plus the van
// Genuchten-Mualem parameters soiltype.New accepts.
type SoilEntry struct {
	Name string   `json:"name"`
	Prms fun.Prms `json:"prms"`
}

// LayerEntry ties a layer to a soil-type name by reference, the way
// inp/mat.go's material database is referenced by name from elements.
type LayerEntry struct {
	ThicknessCm  float64 `json:"thickness_cm"`
	Soil         string  `json:"soil"`
	InitialPsiCm float64 `json:"initial_psi_cm"`
	FrozenFactor float64 `json:"frozen_factor"`
}

// Config is the full contents of a .lgar JSON input file.
type Config struct {
	Desc               string       `json:"desc"`
	Soils              []SoilEntry  `json:"soils"`
	Layers             []LayerEntry `json:"layers"`
	ForcingIntervalH   float64      `json:"forcing_interval_h"`
	SubStepH           float64      `json:"substep_h"`
	MaxPondingCm       float64      `json:"max_ponding_cm"`
	WiltingPsiCm       float64      `json:"wilting_psi_cm"`
	Nint               int          `json:"nint"`
	SftCoupled         bool         `json:"sft_coupled"`
	FrozenThawedAboveK float64      `json:"frozen_thawed_above_k"`
	FrozenBelowK       float64      `json:"frozen_below_k"`
	FrozenMinFactor    float64      `json:"frozen_min_factor"`
	GiuhOrdinatesH     []float64    `json:"giuh_ordinates_h"`
	Verbosity          Verbosity    `json:"verbosity"`
}

// Read loads and validates a .lgar JSON file, returning the soil-type
// table by name and the assembled Column, ready for the engine.
func Read(path string) (*Config, map[string]*soiltype.Type, *layer.Column, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, nil, nil, chk.Err("config: cannot read file %q: %v", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, nil, nil, chk.Err("config: cannot unmarshal %q: %v", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, nil, err
	}

	soils := make(map[string]*soiltype.Type, len(cfg.Soils))
	for _, se := range cfg.Soils {
		st, err := soiltype.New(se.Name, se.Prms)
		if err != nil {
			return nil, nil, nil, chk.Err("config: soil %q: %v", se.Name, err)
		}
		soils[se.Name] = st
	}

	layers := make([]*layer.Layer, len(cfg.Layers))
	for i, le := range cfg.Layers {
		st, ok := soils[le.Soil]
		if !ok {
			return nil, nil, nil, chk.Err("config: layer %d references unknown soil %q", i+1, le.Soil)
		}
		bgTheta := st.Theta(le.InitialPsiCm)
		frozen := le.FrozenFactor
		if frozen == 0 {
			frozen = 1.0
		}
		layers[i] = &layer.Layer{
			Num:             i + 1,
			ThicknessCm:     le.ThicknessCm,
			Soil:            st,
			FrozenFactor:    frozen,
			BackgroundTheta: bgTheta,
		}
	}
	col, err := layer.NewColumn(layers)
	if err != nil {
		return nil, nil, nil, err
	}
	return &cfg, soils, col, nil
}

// validate applies the fatal-before-any-step-runs checks: the forcing
// interval must be positive and every layer must reference a soil that
// is actually in the table.
func (cfg *Config) validate() error {
	if cfg.ForcingIntervalH <= 0 {
		return chk.Err("config: forcing_interval_h must be positive, got %v", cfg.ForcingIntervalH)
	}
	if cfg.SubStepH > 0 {
		ratio := cfg.ForcingIntervalH / cfg.SubStepH
		rounded := math.Round(ratio)
		if rounded < 1 || math.Abs(ratio-rounded) > integerRatioTolerance {
			return chk.Err("config: forcing_interval_h/substep_h must be a positive integer, got %v/%v", cfg.ForcingIntervalH, cfg.SubStepH)
		}
	}
	switch cfg.Verbosity {
	case "":
		cfg.Verbosity = VerbosityNone
	case VerbosityNone, VerbosityLow, VerbosityHigh:
	default:
		return chk.Err("config: verbosity must be one of none, low, high, got %q", cfg.Verbosity)
	}
	if len(cfg.Layers) == 0 {
		return chk.Err("config: at least one layer is required")
	}
	known := make(map[string]bool, len(cfg.Soils))
	for _, se := range cfg.Soils {
		if se.Name == "" {
			return chk.Err("config: a soil entry is missing its name")
		}
		known[se.Name] = true
	}
	for i, le := range cfg.Layers {
		if le.ThicknessCm <= 0 {
			return chk.Err("config: layer %d: thickness_cm must be positive", i+1)
		}
		if !known[le.Soil] {
			return chk.Err("config: layer %d references unknown soil %q", i+1, le.Soil)
		}
	}
	if cfg.Nint < 2 {
		cfg.Nint = 2
	}
	return nil
}

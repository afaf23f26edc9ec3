// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bmi adapts the solver to a Basic Model Interface style
// lifecycle: Initialize/Update/UpdateUntil/Finalize plus GetValue/SetValue,
// following the method set of the BmiLGAR class.
package bmi

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lgar/config"
	"github.com/cpmech/lgar/front"
	"github.com/cpmech/lgar/frozen"
	"github.com/cpmech/lgar/giuh"
	"github.com/cpmech/lgar/layer"
	"github.com/cpmech/lgar/lgar"
	"github.com/cpmech/lgar/units"
)

// Engine is the component-model instance: one configured column, its
// current front list, cumulative mass-balance ledger, and time state.
type Engine struct {
	cfg     *config.Config
	col     *layer.Column
	fronts  *front.List
	coupler *frozen.Coupler
	giuhBuf *giuh.Buffer
	units   units.Units

	cumulative lgar.Ledger
	lastStep   lgar.Ledger
	pondCm     float64

	precipCmPerH float64
	petCmPerH    float64
	tempProfileK []float64

	timeH    float64
	endTimeH float64

	verbosity int
}

// Initialize reads a .lgar config file and builds a ready-to-run Engine,
// matching BmiLGAR::Initialize's read-config-then-allocate-state order.
func Initialize(configPath string) (*Engine, error) {
	cfg, _, col, err := config.Read(configPath)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		col:       col,
		fronts:    front.NewList(),
		units:     units.Standard(),
		verbosity: cfg.Verbosity.Level(),
	}
	if cfg.SftCoupled {
		c, err := frozen.NewCoupler(cfg.FrozenThawedAboveK, cfg.FrozenBelowK, cfg.FrozenMinFactor)
		if err != nil {
			return nil, err
		}
		e.coupler = c
	}
	if len(cfg.GiuhOrdinatesH) > 0 {
		buf, err := giuh.NewBuffer(cfg.GiuhOrdinatesH)
		if err != nil {
			return nil, err
		}
		e.giuhBuf = buf
	}
	if e.verbosity > 0 {
		io.Pf("lgar: initialized column with %d layer(s) from %q\n", col.NumLayers(), configPath)
	}
	return e, nil
}

// SetEndTime sets the simulation's end time (hours), reported by EndTime.
func (e *Engine) SetEndTime(endTimeH float64) {
	e.endTimeH = endTimeH
}

// SetForcing pushes the current step's precipitation and PET rates
// (mm/h, the BMI boundary's unit) into the engine, converting to the
// solver's internal cm/h via e.units. The Go equivalent of a framework
// calling SetValue("precipitation_rate", ...) before Update.
func (e *Engine) SetForcing(precipMmPerH, petMmPerH float64) {
	e.precipCmPerH = e.units.MmPerHToCmPerH(precipMmPerH)
	e.petCmPerH = e.units.MmPerHToCmPerH(petMmPerH)
}

// CurrentTime returns the simulation clock, hours.
func (e *Engine) CurrentTime() float64 { return e.timeH }

// EndTime returns the configured end time, hours.
func (e *Engine) EndTime() float64 { return e.endTimeH }

// TimeStep returns the configured forcing interval, hours.
func (e *Engine) TimeStep() float64 { return e.cfg.ForcingIntervalH }

// Update advances the column by one forcing interval, routing that
// interval's surface runoff through the GIUH buffer if one is
// configured, and folds the step into the cumulative ledger.
func (e *Engine) Update() error {
	if e.coupler != nil && len(e.tempProfileK) == e.col.NumLayers() {
		if err := e.coupler.Update(e.col.Layers, e.tempProfileK); err != nil {
			return err
		}
	}

	in := lgar.StepInputs{
		DtH:          e.cfg.ForcingIntervalH,
		SubDtH:       e.cfg.SubStepH,
		PrecipCmPerH: e.precipCmPerH,
		PETCmPerH:    e.petCmPerH,
		PondedCm:     e.pondCm,
		MaxPondingCm: e.cfg.MaxPondingCm,
		WiltingPsiCm: e.cfg.WiltingPsiCm,
		Nint:         e.cfg.Nint,
	}
	res, err := lgar.RunStep(in, e.col, e.fronts)
	if err != nil {
		return err
	}
	e.pondCm = res.PondingCm
	if e.giuhBuf != nil {
		res.Ledger.RoutedCm = e.giuhBuf.Convolve(res.Ledger.RunoffCm)
	}
	e.lastStep = res.Ledger
	e.cumulative.Add(res.Ledger)
	e.timeH += e.cfg.ForcingIntervalH

	if e.verbosity >= 2 {
		io.Pf("lgar: t=%.3fh infil=%.4f runoff=%.4f aet=%.4f storage=%.4f\n",
			e.timeH, res.Ledger.InfiltrationCm, res.Ledger.RunoffCm, res.Ledger.AETCm, res.Ledger.StorageCm)
	}
	return nil
}

// UpdateUntil steps the engine until its clock reaches t (hours). A t
// earlier than the current time is rejected outright, leaving engine
// state untouched, rather than silently treated as a no-op.
func (e *Engine) UpdateUntil(t float64) error {
	if t < e.timeH {
		return chk.Err("bmi: UpdateUntil: t=%v is earlier than the current time %v", t, e.timeH)
	}
	for e.timeH < t-1e-9 {
		if err := e.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Finalize releases no external resources (the column lives entirely in
// memory) but prints the final time and cumulative storage when verbose.
func (e *Engine) Finalize() error {
	if e.verbosity > 0 {
		io.Pf("lgar: finalized at t=%.3fh, cumulative storage=%.4f cm\n", e.timeH, e.cumulative.StorageCm)
	}
	return nil
}

// GetValue exposes the engine's named scalar exchange items. Rate and
// depth items are converted at this boundary: rates echo back in mm/h,
// depths report in m, per e.units.
func (e *Engine) GetValue(name string) (float64, error) {
	switch name {
	case "precipitation_rate":
		return e.units.CmPerHToMmPerH(e.precipCmPerH), nil
	case "potential_evapotranspiration_rate":
		return e.units.CmPerHToMmPerH(e.petCmPerH), nil
	case "precipitation":
		return e.units.CmToMeters(e.cumulative.PrecipCm), nil
	case "potential_evapotranspiration":
		return e.units.CmToMeters(e.cumulative.PETCm), nil
	case "surface_runoff":
		return e.units.CmToMeters(e.cumulative.RunoffCm), nil
	case "giuh_runoff":
		return e.units.CmToMeters(e.cumulative.RoutedCm), nil
	case "total_discharge":
		return e.units.CmToMeters(e.cumulative.RoutedCm), nil
	case "infiltration":
		return e.units.CmToMeters(e.cumulative.InfiltrationCm), nil
	case "percolation":
		return e.units.CmToMeters(e.cumulative.PercolationCm), nil
	case "actual_evapotranspiration":
		return e.units.CmToMeters(e.cumulative.AETCm), nil
	case "soil_storage":
		return e.units.CmToMeters(e.cumulative.StorageCm), nil
	case "ponded_depth":
		return e.units.CmToMeters(e.pondCm), nil
	}
	return 0, chk.Err("bmi: unknown variable %q", name)
}

// SetValue pushes a forcing value into the engine ahead of the next
// Update, mirroring BmiLGAR's exposed SetValue targets. Rates arrive in
// mm/h and are converted to the solver's internal cm/h.
func (e *Engine) SetValue(name string, value float64) error {
	switch name {
	case "precipitation_rate":
		e.precipCmPerH = e.units.MmPerHToCmPerH(value)
	case "potential_evapotranspiration_rate":
		e.petCmPerH = e.units.MmPerHToCmPerH(value)
	default:
		return chk.Err("bmi: unknown or read-only variable %q", name)
	}
	return nil
}

// GetValuesArray exposes the engine's named array exchange items: the
// per-layer moisture/thickness profile and the per-front moisture/depth
// profile, plus the scalar front count as a one-element array. Depths
// convert to m via e.units; moistures are dimensionless and pass through.
func (e *Engine) GetValuesArray(name string) ([]float64, error) {
	switch name {
	case "soil_moisture_layers":
		out := make([]float64, e.col.NumLayers())
		for i := 1; i <= e.col.NumLayers(); i++ {
			out[i-1] = lgar.LayerAverageTheta(e.fronts, e.col, i)
		}
		return out, nil
	case "soil_thickness_layers":
		out := make([]float64, e.col.NumLayers())
		for i := 1; i <= e.col.NumLayers(); i++ {
			out[i-1] = e.units.CmToMeters(e.col.At(i).ThicknessCm)
		}
		return out, nil
	case "soil_moisture_wetting_fronts":
		out := make([]float64, 0, e.fronts.Len())
		e.fronts.Walk(func(i int, f *front.Front) { out = append(out, f.Theta) })
		return out, nil
	case "soil_thickness_wetting_fronts":
		out := make([]float64, 0, e.fronts.Len())
		e.fronts.Walk(func(i int, f *front.Front) { out = append(out, e.units.CmToMeters(f.DepthCm)) })
		return out, nil
	case "soil_num_wetting_fronts":
		return []float64{float64(e.fronts.Len())}, nil
	}
	return nil, chk.Err("bmi: unknown array variable %q", name)
}

// SetValuesArray pushes an array-valued forcing input into the engine
// ahead of the next Update. soil_temperature_profile is the only target:
// one Kelvin temperature per layer, top to bottom, consumed by the
// frozen-soil coupler when sft_coupled is set.
func (e *Engine) SetValuesArray(name string, values []float64) error {
	switch name {
	case "soil_temperature_profile":
		if len(values) != e.col.NumLayers() {
			return chk.Err("bmi: soil_temperature_profile has %d entries, column has %d layers", len(values), e.col.NumLayers())
		}
		e.tempProfileK = append(e.tempProfileK[:0], values...)
		return nil
	}
	return chk.Err("bmi: unknown or read-only array variable %q", name)
}

// Column exposes the underlying column for callers that need direct
// access (e.g. the CLI's summary output).
func (e *Engine) Column() *layer.Column { return e.col }

// Fronts exposes the current wetting-front list.
func (e *Engine) Fronts() *front.List { return e.fronts }

// LastStep returns the most recent Update's per-step ledger.
func (e *Engine) LastStep() lgar.Ledger { return e.lastStep }

// Cumulative returns the run-to-date ledger.
func (e *Engine) Cumulative() lgar.Ledger { return e.cumulative }

// Units exposes the conversion-factor record this engine was built
// with, so callers (the CLI, tests) never need their own copy.
func (e *Engine) Units() units.Units { return e.units }

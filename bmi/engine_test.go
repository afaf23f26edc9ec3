// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmi

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigJSON = `{
	"desc": "single sand layer, smoke test",
	"soils": [
		{"name": "sand", "prms": [
			{"n": "thetar", "v": 0.02},
			{"n": "thetas", "v": 0.41},
			{"n": "alpha", "v": 0.145},
			{"n": "n", "v": 2.0},
			{"n": "ks", "v": 29.7},
			{"n": "psiae", "v": 0},
			{"n": "lambda", "v": 0}
		]}
	],
	"layers": [
		{"thickness_cm": 100, "soil": "sand", "initial_psi_cm": 200, "frozen_factor": 1.0}
	],
	"forcing_interval_h": 1.0,
	"substep_h": 0.1,
	"max_ponding_cm": 2.0,
	"wilting_psi_cm": 15000,
	"nint": 5,
	"verbosity": "none"
}`

func writeTestConfig(tst *testing.T) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "test.lgar")
	if err := os.WriteFile(path, []byte(testConfigJSON), 0644); err != nil {
		tst.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func Test_Initialize_reads_config_and_builds_column(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if e.Column().NumLayers() != 1 {
		tst.Errorf("NumLayers() = %v, want 1", e.Column().NumLayers())
	}
}

func Test_Update_advances_clock_and_accumulates_ledger(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	e.SetForcing(0.01, 0.0) // mm/h
	if err := e.Update(); err != nil {
		tst.Fatalf("Update failed: %v", err)
	}
	if e.CurrentTime() != 1.0 {
		tst.Errorf("CurrentTime() = %v, want 1.0", e.CurrentTime())
	}
	if e.Cumulative().InfiltrationCm <= 0 {
		tst.Errorf("expected positive cumulative infiltration, got %v", e.Cumulative().InfiltrationCm)
	}
}

func Test_UpdateUntil_loops_to_the_requested_time(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	e.SetForcing(0.005, 0.0) // mm/h
	if err := e.UpdateUntil(3.5); err != nil {
		tst.Fatalf("UpdateUntil failed: %v", err)
	}
	if e.CurrentTime() < 3.5 {
		tst.Errorf("CurrentTime() = %v, want >= 3.5", e.CurrentTime())
	}
}

func Test_UpdateUntil_rejects_a_time_before_current(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if err := e.UpdateUntil(-1); err == nil {
		tst.Errorf("expected an error for a t earlier than the current time")
	}
	if e.CurrentTime() != 0 {
		tst.Errorf("CurrentTime() = %v, want 0 (no steps taken)", e.CurrentTime())
	}
}

func Test_GetValue_rejects_unknown_name(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if _, err := e.GetValue("not_a_real_variable"); err == nil {
		tst.Errorf("expected an error for an unknown variable name")
	}
}

func Test_SetValue_and_GetValue_round_trip_forcing(tst *testing.T) {
	path := writeTestConfig(tst)
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if err := e.SetValue("precipitation_rate", 0.01); err != nil {
		tst.Fatalf("SetValue failed: %v", err)
	}
	v, err := e.GetValue("precipitation_rate")
	if err != nil {
		tst.Fatalf("GetValue failed: %v", err)
	}
	if v != 0.01 {
		tst.Errorf("GetValue(precipitation_rate) = %v, want 0.01", v)
	}
}

const twoLayerFrozenConfigJSON = `{
	"desc": "two sand layers, frozen-soil coupling smoke test",
	"soils": [
		{"name": "sand", "prms": [
			{"n": "thetar", "v": 0.02},
			{"n": "thetas", "v": 0.41},
			{"n": "alpha", "v": 0.145},
			{"n": "n", "v": 2.0},
			{"n": "ks", "v": 29.7},
			{"n": "psiae", "v": 0},
			{"n": "lambda", "v": 0}
		]}
	],
	"layers": [
		{"thickness_cm": 50, "soil": "sand", "initial_psi_cm": 200, "frozen_factor": 1.0},
		{"thickness_cm": 50, "soil": "sand", "initial_psi_cm": 200, "frozen_factor": 1.0}
	],
	"forcing_interval_h": 1.0,
	"substep_h": 0.1,
	"max_ponding_cm": 2.0,
	"wilting_psi_cm": 15000,
	"nint": 5,
	"sft_coupled": true,
	"frozen_thawed_above_k": 275.15,
	"frozen_below_k": 271.15,
	"frozen_min_factor": 0.1,
	"verbosity": "none"
}`

func Test_GetValuesArray_reports_per_layer_and_per_front_profiles(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "two_layer.lgar")
	if err := os.WriteFile(path, []byte(twoLayerFrozenConfigJSON), 0644); err != nil {
		tst.Fatalf("failed to write test config: %v", err)
	}
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	e.SetForcing(5.0, 0.0) // mm/h
	if err := e.Update(); err != nil {
		tst.Fatalf("Update failed: %v", err)
	}
	thickness, err := e.GetValuesArray("soil_thickness_layers")
	if err != nil {
		tst.Fatalf("GetValuesArray(soil_thickness_layers) failed: %v", err)
	}
	if len(thickness) != 2 || thickness[0] != 0.5 {
		tst.Errorf("soil_thickness_layers = %v, want [0.5 0.5] (m)", thickness)
	}
	moisture, err := e.GetValuesArray("soil_moisture_layers")
	if err != nil {
		tst.Fatalf("GetValuesArray(soil_moisture_layers) failed: %v", err)
	}
	if len(moisture) != 2 {
		tst.Errorf("soil_moisture_layers has %d entries, want 2", len(moisture))
	}
	n, err := e.GetValuesArray("soil_num_wetting_fronts")
	if err != nil {
		tst.Fatalf("GetValuesArray(soil_num_wetting_fronts) failed: %v", err)
	}
	if len(n) != 1 || n[0] != float64(e.Fronts().Len()) {
		tst.Errorf("soil_num_wetting_fronts = %v, want [%v]", n, e.Fronts().Len())
	}
	if _, err := e.GetValuesArray("not_a_real_array"); err == nil {
		tst.Errorf("expected an error for an unknown array variable name")
	}
}

func Test_SetValuesArray_soil_temperature_profile_drives_the_frozen_coupler(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "two_layer.lgar")
	if err := os.WriteFile(path, []byte(twoLayerFrozenConfigJSON), 0644); err != nil {
		tst.Fatalf("failed to write test config: %v", err)
	}
	e, err := Initialize(path)
	if err != nil {
		tst.Fatalf("Initialize failed: %v", err)
	}
	if err := e.SetValuesArray("soil_temperature_profile", []float64{280, 260}); err != nil {
		tst.Fatalf("SetValuesArray failed: %v", err)
	}
	e.SetForcing(1.0, 0.0)
	if err := e.Update(); err != nil {
		tst.Fatalf("Update failed: %v", err)
	}
	if e.Column().At(1).FrozenFactor != 1.0 {
		tst.Errorf("layer 1 frozen factor = %v, want 1.0 (above thawed threshold)", e.Column().At(1).FrozenFactor)
	}
	if e.Column().At(2).FrozenFactor != 0.1 {
		tst.Errorf("layer 2 frozen factor = %v, want 0.1 (below frozen threshold)", e.Column().At(2).FrozenFactor)
	}
	if err := e.SetValuesArray("soil_temperature_profile", []float64{280}); err == nil {
		tst.Errorf("expected an error for a mismatched profile length")
	}
}

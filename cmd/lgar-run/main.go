// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lgar-run drives a Engine through a forcing time series read
// from a CSV file, printing a per-step mass-balance summary and a final
// cumulative report.
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/lgar/bmi"
)

// forcingRow is one interval's precipitation and potential
// evapotranspiration rate, both mm/h — the BMI boundary's unit. Engine
// converts to its internal cm/h representation itself; nothing here does.
type forcingRow struct {
	PrecipMmPerH float64
	PETMmPerH    float64
}

// readForcing parses a two-column CSV (optionally header'd) of
// precip_mm_per_h,pet_mm_per_h rows, one per forcing interval.
func readForcing(path string) ([]forcingRow, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read forcing file %q: %v", path, err)
	}
	rdr := csv.NewReader(bytes.NewReader(raw))
	rdr.FieldsPerRecord = -1
	records, err := rdr.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot parse forcing file %q: %v", path, err)
	}
	rows := make([]forcingRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		p, errP := strconv.ParseFloat(rec[0], 64)
		e, errE := strconv.ParseFloat(rec[1], 64)
		if errP != nil || errE != nil {
			if i == 0 {
				continue // tolerate a header row
			}
			return nil, chk.Err("forcing file %q: row %d: invalid number", path, i+1)
		}
		rows = append(rows, forcingRow{PrecipMmPerH: p, PETMmPerH: e})
	}
	if len(rows) == 0 {
		return nil, chk.Err("forcing file %q contains no data rows", path)
	}
	return rows, nil
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	io.PfWhite("\nlgar-run -- Layered Green-Ampt with Redistribution\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	// configuration and forcing filenamepaths
	verbose := flag.Bool("v", false, "print a step-by-step trace, in addition to the config file's verbosity")
	flag.Parse()
	if len(flag.Args()) < 2 {
		chk.Panic("Please, provide a config file and a forcing file. Ex.: column.lgar forcing.csv\n")
	}
	configPath := flag.Arg(0)
	if io.FnExt(configPath) == "" {
		configPath += ".lgar"
	}
	forcingPath := flag.Arg(1)

	// load
	e, err := bmi.Initialize(configPath)
	if err != nil {
		chk.Panic("%v", err)
	}
	forcing, err := readForcing(forcingPath)
	if err != nil {
		chk.Panic("%v", err)
	}
	e.SetEndTime(float64(len(forcing)) * e.TimeStep())
	if *verbose {
		io.Pf("running %d forcing interval(s) of %v h each\n", len(forcing), e.TimeStep())
	}

	// run
	for i, row := range forcing {
		e.SetForcing(row.PrecipMmPerH, row.PETMmPerH)
		if err := e.Update(); err != nil {
			chk.Panic("step %d: %v", i+1, err)
		}
		step := e.LastStep()
		if *verbose {
			io.Pf("t=%6.2fh  precip=%8.4f  infil=%8.4f  runoff=%8.4f  aet=%8.4f  percol=%8.4f  storage=%8.4f\n",
				e.CurrentTime(), step.PrecipCm, step.InfiltrationCm, step.RunoffCm, step.AETCm, step.PercolationCm, step.StorageCm)
		}
	}
	if err := e.Finalize(); err != nil {
		chk.Panic("%v", err)
	}

	// summary -- read back through GetValue so the reported figures are in
	// the BMI boundary's unit (m), with the engine's own Units doing the
	// conversion rather than this command hard-coding a factor.
	io.Pf("\n")
	io.Pfyel("cumulative mass balance over %v h\n", e.CurrentTime())
	for _, item := range []struct{ label, name string }{
		{"precipitation", "precipitation"},
		{"infiltration", "infiltration"},
		{"runoff", "surface_runoff"},
		{"routed runoff", "giuh_runoff"},
		{"AET", "actual_evapotranspiration"},
		{"percolation", "percolation"},
		{"final storage", "soil_storage"},
	} {
		v, err := e.GetValue(item.name)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("  %-14s %10.6f m\n", item.label, v)
	}
}

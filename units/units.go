// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units holds the single conversion-factor record shared by every
// component that crosses a unit boundary (BMI scalar I/O in mm/h and m,
// the CLI's forcing file, the solver's internal cm/hour representation),
// so no component hard-codes 3600 or 0.1 locally.
package units

// Units is the conversion-factor record threaded from the engine to
// every component that needs one.
type Units struct {
	HrToSec float64 // 3600
	CmToM   float64 // 0.01
	MmToCm  float64 // 0.1
}

// Standard returns the conversion factors this engine is built around:
// hours to seconds, centimeters to meters, millimeters to centimeters.
func Standard() Units {
	return Units{HrToSec: 3600, CmToM: 0.01, MmToCm: 0.1}
}

// MmPerHToCmPerH converts a BMI-input rate (mm/h) to the solver's
// internal cm/h representation.
func (u Units) MmPerHToCmPerH(mmPerH float64) float64 {
	return mmPerH * u.MmToCm
}

// CmPerHToMmPerH is the inverse of MmPerHToCmPerH, used to echo a forcing
// rate back out through GetValue in its original unit.
func (u Units) CmPerHToMmPerH(cmPerH float64) float64 {
	return cmPerH / u.MmToCm
}

// CmToMeters converts an internal cm depth to the meters the BMI output
// interface is denominated in.
func (u Units) CmToMeters(cm float64) float64 {
	return cm * u.CmToM
}

// HoursToSeconds converts the engine's internal hour-based clock to the
// seconds the BMI time interface is denominated in.
func (u Units) HoursToSeconds(hours float64) float64 {
	return hours * u.HrToSec
}

// SecondsToHours is the inverse of HoursToSeconds.
func (u Units) SecondsToHours(seconds float64) float64 {
	return seconds / u.HrToSec
}

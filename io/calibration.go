package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/spectators/param"
)

// ReadCalibration reads a table of parameterization coefficients. The table
// has three columns, c0, c1 and c2, and three rows: the impact parameter
// density, the mean multiplicity and the multiplicity width. bMax is the
// largest impact parameter, in fm.
func ReadCalibration(fname string, bMax float64) (param.Calibration, error) {
	cal := param.Calibration{BMax: bMax}

	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return cal, fmt.Errorf("Could not read calibration file %s: %w",
			fname, err)
	}

	rows := []*[3]float64{
		&cal.ImpactDensity, &cal.MeanMultiplicity, &cal.MultiplicityWidth,
	}
	for j := range cols {
		if len(cols[j]) != len(rows) {
			return cal, fmt.Errorf(
				"Calibration file %s must have %d rows, but has %d.",
				fname, len(rows), len(cols[j]),
			)
		}
	}

	for i, row := range rows {
		for j := range row {
			row[j] = cols[j][i]
		}
	}

	if err := cal.Validate(); err != nil {
		return cal, fmt.Errorf("Calibration file %s is invalid: %w", fname, err)
	}
	return cal, nil
}

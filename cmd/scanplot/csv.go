package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/navscan/internal/scan"
)

// readRows parses two-column numeric CSV. Blank lines and lines starting
// with '#' are skipped.
func readRows(r io.Reader) ([][2]float32, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][2]float32
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse CSV: %w", err)
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("record %d: expected 2 fields, got %d", line, len(rec))
		}

		var row [2]float32
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, fmt.Errorf("record %d field %d: %w", line, i+1, err)
			}
			row[i] = float32(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cartesianRows(rows [][2]float32) []scan.CartesianPoint {
	out := make([]scan.CartesianPoint, len(rows))
	for i, row := range rows {
		out[i] = scan.CartesianPoint{X: row[0], Y: row[1]}
	}
	return out
}

func polarRows(rows [][2]float32) []scan.PolarPoint {
	out := make([]scan.PolarPoint, len(rows))
	for i, row := range rows {
		out[i] = scan.PolarPoint{Radius: row[0], Theta: row[1]}
	}
	return out
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Column names expected in a record source header. Matching is case-sensitive.
const (
	ColPatientID       = "PatientID"
	ColName            = "Name"
	ColAge             = "Age"
	ColDiagnosis       = "Diagnosis"
	ColBloodPressure   = "BloodPressure"
	ColPulse           = "Pulse"
	ColBodyTemperature = "BodyTemperature"
)

var Columns = []string{
	ColPatientID, ColName, ColAge, ColDiagnosis, ColBloodPressure, ColPulse, ColBodyTemperature,
}

// Row is one header-keyed input record, as produced by a CSV dict reader.
type Row map[string]string

type LoadOption func(*loadOptions)

type loadOptions struct {
	progress func(done int)
}

// WithProgress calls fn after each record is inserted with the running count.
func WithProgress(fn func(done int)) LoadOption {
	return func(o *loadOptions) {
		o.progress = fn
	}
}

// BulkLoad converts rows to records and inserts them. Every row is checked
// before the first insert, so on error the store is left as it was. The
// returned count is the number of records added.
func (s *Store) BulkLoad(rows []Row, opts ...LoadOption) (int, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	parsed := make([]PatientRecord, 0, len(rows))
	batch := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		rec, err := parseRow(i+1, row)
		if err != nil {
			return 0, err
		}
		if _, dup := batch[rec.PatientID]; dup || s.Contains(rec.PatientID) {
			return 0, &DataFormatError{
				Row:   i + 1,
				Field: ColPatientID,
				Value: row[ColPatientID],
				Err:   ErrDuplicateID,
			}
		}
		batch[rec.PatientID] = struct{}{}
		parsed = append(parsed, rec)
	}

	for i, rec := range parsed {
		if err := s.AddRecord(rec); err != nil {
			// Unreachable after the checks above
			return i, fmt.Errorf("row %d: %w", i+1, err)
		}
		if o.progress != nil {
			o.progress(i + 1)
		}
	}
	return len(parsed), nil
}

// UpsertRow converts row like BulkLoad does and stores it, replacing any
// record with the same ID. It reports whether a record was replaced.
func (s *Store) UpsertRow(row Row) (bool, error) {
	rec, err := parseRow(1, row)
	if err != nil {
		return false, err
	}
	return s.Upsert(rec), nil
}

// LoadCSV reads a header-driven CSV stream and bulk loads it.
func (s *Store) LoadCSV(r io.Reader, opts ...LoadOption) (int, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return 0, err
	}
	return s.BulkLoad(rows, opts...)
}

// LoadCSVFile bulk loads the CSV file at path. A file that cannot be opened
// or read yields a *FileAccessError; bad content yields a *DataFormatError.
func (s *Store) LoadCSVFile(path string, opts ...LoadOption) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	n, err := s.LoadCSV(file, opts...)
	if err != nil {
		var dfe *DataFormatError
		if !errors.As(err, &dfe) {
			return n, &FileAccessError{Path: path, Err: err}
		}
	}
	return n, err
}

// ReadCSV turns a CSV stream into rows keyed by the header line. Extra
// columns are kept; missing required columns are reported against row 0.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, csvError(0, err)
	}
	for _, col := range Columns {
		if !slices.Contains(header, col) {
			return nil, &DataFormatError{Row: 0, Field: col, Err: ErrMissingField}
		}
	}

	var rows []Row
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(line, err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func csvError(row int, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &DataFormatError{Row: row, Err: perr}
	}
	return fmt.Errorf("reading records: %w", err)
}

func parseRow(n int, row Row) (PatientRecord, error) {
	var rec PatientRecord
	var err error

	field := func(name string) (string, error) {
		v, ok := row[name]
		if !ok {
			return "", &DataFormatError{Row: n, Field: name, Err: ErrMissingField}
		}
		return v, nil
	}
	intField := func(name string) (int, error) {
		v, err := field(name)
		if err != nil {
			return 0, err
		}
		i, perr := strconv.Atoi(strings.TrimSpace(v))
		if perr != nil {
			return 0, &DataFormatError{Row: n, Field: name, Value: v, Err: ErrInvalidNumber}
		}
		return i, nil
	}

	if rec.PatientID, err = intField(ColPatientID); err != nil {
		return rec, err
	}
	if rec.Name, err = field(ColName); err != nil {
		return rec, err
	}
	if rec.Age, err = intField(ColAge); err != nil {
		return rec, err
	}
	if rec.Diagnosis, err = field(ColDiagnosis); err != nil {
		return rec, err
	}
	if rec.BloodPressure, err = field(ColBloodPressure); err != nil {
		return rec, err
	}
	if rec.Pulse, err = intField(ColPulse); err != nil {
		return rec, err
	}

	temp, err := field(ColBodyTemperature)
	if err != nil {
		return rec, err
	}
	rec.BodyTemperature, err = strconv.ParseFloat(strings.TrimSpace(temp), 64)
	if err != nil {
		return rec, &DataFormatError{Row: n, Field: ColBodyTemperature, Value: temp, Err: ErrInvalidNumber}
	}
	return rec, nil
}

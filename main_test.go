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
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cybrota/patient-records/records"
)

func TestPrintRecords(t *testing.T) {
	var buf bytes.Buffer
	printRecords(&buf, nil)
	if got := buf.String(); got != "No patient records.\n" {
		t.Errorf("printRecords(nil) = %q", got)
	}

	buf.Reset()
	recs := []records.PatientRecord{
		{PatientID: 1, Name: "Ann", Age: 30, Diagnosis: "Flu", BloodPressure: "120/80", Pulse: 72, BodyTemperature: 98.6},
		{PatientID: 2, Name: "Ben", Age: 41, Diagnosis: "Cold", BloodPressure: "125/82", Pulse: 75, BodyTemperature: 99},
	}
	printRecords(&buf, recs)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	want := "Patient ID: 2, Name: Ben, Age: 41, Diagnosis: Cold, BP: 125/82, Pulse: 75, Temp: 99.0"
	if lines[1] != want {
		t.Errorf("line 2 = %q; want %q", lines[1], want)
	}
}

func TestHelpMessageListsColumns(t *testing.T) {
	msg := getHelpMessage()
	for _, col := range records.Columns {
		if !strings.Contains(msg, col) {
			t.Errorf("help message does not mention column %q", col)
		}
	}
}

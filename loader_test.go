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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/patient-records/records"
)

const loaderCSV = `PatientID,Name,Age,Diagnosis,BloodPressure,Pulse,BodyTemperature
50,Alice,30,Flu,120/80,72,98.6
30,Bob,45,Cold,130/85,80,99.1
70,Carol,60,Asthma,110/70,65,97.9
`

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestResolveDataPath(t *testing.T) {
	config := defaults()
	config.Data.CSVPath = "from-config.csv"

	tests := []struct {
		name     string
		flagPath string
		want     string
	}{
		{"flag wins", "from-flag.csv", "from-flag.csv"},
		{"config fallback", "", "from-config.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveDataPath(tt.flagPath, config); got != tt.want {
				t.Errorf("resolveDataPath(%q) = %q; want %q", tt.flagPath, got, tt.want)
			}
		})
	}
}

func TestLoadStore(t *testing.T) {
	path := writeCSV(t, loaderCSV)

	for _, progress := range []bool{false, true} {
		store, err := loadStore(path, defaults(), progress)
		if err != nil {
			t.Fatalf("loadStore(progress=%v) error = %v", progress, err)
		}
		if store.Len() != 3 {
			t.Errorf("Len() = %d; want 3", store.Len())
		}
		if rec, ok := store.Search(30); !ok || rec.Name != "Bob" {
			t.Errorf("Search(30) = %+v, %v; want Bob", rec, ok)
		}
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := loadStore(path, defaults(), false)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") || !strings.Contains(err.Error(), configFileName) {
		t.Errorf("error %q should mention the missing file and the config file", err)
	}
}

func TestLoadStoreMalformedFile(t *testing.T) {
	path := writeCSV(t, loaderCSV+"80,Dave,old,Flu,120/80,72,98.6\n")

	_, err := loadStore(path, defaults(), false)
	var dfe *records.DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("error = %v; want a *records.DataFormatError", err)
	}
	if dfe.Field != records.ColAge {
		t.Errorf("Field = %q; want %q", dfe.Field, records.ColAge)
	}
	if !strings.Contains(err.Error(), "nothing was loaded") {
		t.Errorf("error %q should say nothing was loaded", err)
	}
}

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
	"fmt"
	"strconv"
	"strings"
)

// PatientRecord holds one patient's vitals. Fields are stored as given; no
// range checks are applied.
type PatientRecord struct {
	PatientID       int
	Name            string
	Age             int
	Diagnosis       string
	BloodPressure   string // Free-form, e.g. "120/80"
	Pulse           int
	BodyTemperature float64
}

func (r PatientRecord) String() string {
	return fmt.Sprintf("Patient ID: %d, Name: %s, Age: %d, Diagnosis: %s, BP: %s, Pulse: %d, Temp: %s",
		r.PatientID, r.Name, r.Age, r.Diagnosis, r.BloodPressure, r.Pulse, formatTemperature(r.BodyTemperature))
}

// Markdown renders the record as a detail card.
func (r PatientRecord) Markdown() string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", r.Name))
	content.WriteString(fmt.Sprintf("**Patient ID:** %d\n\n", r.PatientID))
	content.WriteString(fmt.Sprintf("**Age:** %d\n\n", r.Age))
	content.WriteString(fmt.Sprintf("**Diagnosis:** %s\n\n", r.Diagnosis))
	content.WriteString("## Vitals\n\n")
	content.WriteString("| Blood Pressure | Pulse | Temperature |\n")
	content.WriteString("|---|---|---|\n")
	content.WriteString(fmt.Sprintf("| %s | %d | %s |\n", r.BloodPressure, r.Pulse, formatTemperature(r.BodyTemperature)))
	return content.String()
}

// formatTemperature prints the shortest exact form, keeping one decimal place
// for whole numbers (37 -> "37.0").
func formatTemperature(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

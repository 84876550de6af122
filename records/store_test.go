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
	"errors"
	"testing"

	"github.com/willf/bloom"
)

func newPatient(id int, name string) PatientRecord {
	return PatientRecord{
		PatientID:       id,
		Name:            name,
		Age:             40,
		Diagnosis:       "Hypertension",
		BloodPressure:   "140/90",
		Pulse:           80,
		BodyTemperature: 98.6,
	}
}

func idsOf(recs []PatientRecord) []int {
	ids := make([]int, len(recs))
	for i, r := range recs {
		ids[i] = r.PatientID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListAllOrdersByID(t *testing.T) {
	s := NewStore()
	for _, id := range []int{50, 30, 70, 20, 40} {
		if err := s.AddRecord(newPatient(id, "p")); err != nil {
			t.Fatalf("AddRecord(%d): %v", id, err)
		}
	}
	got := idsOf(s.ListAll())
	want := []int{20, 30, 40, 50, 70}
	if !equalInts(got, want) {
		t.Errorf("ListAll() IDs = %v; want %v", got, want)
	}
}

func TestAddSearchDelete(t *testing.T) {
	s := NewStore()
	if err := s.Add(10, "Alice", 34, "Flu", "120/80", 72, 99.1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rec, ok := s.Search(10)
	if !ok {
		t.Fatal("Search(10) reported not found")
	}
	if rec.Name != "Alice" {
		t.Errorf("Search(10).Name = %q; want Alice", rec.Name)
	}
	want := PatientRecord{10, "Alice", 34, "Flu", "120/80", 72, 99.1}
	if rec != want {
		t.Errorf("Search(10) = %+v; want %+v", rec, want)
	}

	if !s.Delete(10) {
		t.Error("Delete(10) reported missing record")
	}
	if _, ok := s.Search(10); ok {
		t.Error("Search(10) found a deleted record")
	}
}

func TestSearchNeverInserted(t *testing.T) {
	s := NewStore()
	if _, ok := s.Search(1); ok {
		t.Error("Search on empty store reported a match")
	}
	s.AddRecord(newPatient(5, "Bob"))
	for _, id := range []int{-1, 0, 4, 6, 1 << 40} {
		if rec, ok := s.Search(id); ok {
			t.Errorf("Search(%d) = %+v; want not found", id, rec)
		}
	}
}

func TestDeleteKeepsOtherRecords(t *testing.T) {
	s := NewStore()
	ids := []int{50, 30, 70, 20, 40, 60, 80}
	for _, id := range ids {
		s.AddRecord(newPatient(id, "p"))
	}
	s.Delete(30)

	for _, id := range ids {
		rec, ok := s.Search(id)
		if id == 30 {
			if ok {
				t.Error("deleted record 30 still found")
			}
			continue
		}
		if !ok || rec != newPatient(id, "p") {
			t.Errorf("Search(%d) = %+v, %v after deleting 30", id, rec, ok)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewStore()
	s.AddRecord(newPatient(1, "a"))
	s.AddRecord(newPatient(2, "b"))

	if !s.Delete(1) {
		t.Fatal("first Delete(1) failed")
	}
	if s.Delete(1) {
		t.Error("second Delete(1) reported a removal")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d; want 1", s.Len())
	}
	if NewStore().Delete(9) {
		t.Error("Delete on empty store reported a removal")
	}
}

func TestDeleteTwoChildNode(t *testing.T) {
	s := NewStore()
	for _, id := range []int{50, 30, 70, 60} {
		s.AddRecord(newPatient(id, "p"))
	}
	s.Delete(50)

	got := idsOf(s.ListAll())
	if !equalInts(got, []int{30, 60, 70}) {
		t.Errorf("ListAll() after deleting 50 = %v; want [30 60 70]", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d; want 3", s.Len())
	}
}

func TestAddDuplicateID(t *testing.T) {
	s := NewStore()
	s.AddRecord(newPatient(7, "First"))

	err := s.AddRecord(newPatient(7, "Second"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate AddRecord: got %v, want ErrDuplicateID", err)
	}
	if rec, _ := s.Search(7); rec.Name != "First" {
		t.Errorf("duplicate add replaced record: %q", rec.Name)
	}
}

func TestUpsertReplaces(t *testing.T) {
	s := NewStore()
	if s.Upsert(newPatient(3, "Old")) {
		t.Error("Upsert of new ID reported a replacement")
	}
	if !s.Upsert(newPatient(3, "New")) {
		t.Error("Upsert of existing ID did not report a replacement")
	}
	if rec, _ := s.Search(3); rec.Name != "New" {
		t.Errorf("Search(3).Name = %q; want New", rec.Name)
	}
}

func TestDeletedIDCanBeAddedAgain(t *testing.T) {
	s := NewStore()
	s.AddRecord(newPatient(3, "Old"))
	s.Delete(3)
	if err := s.AddRecord(newPatient(3, "Again")); err != nil {
		t.Fatalf("re-adding deleted ID: %v", err)
	}
	if rec, ok := s.Search(3); !ok || rec.Name != "Again" {
		t.Errorf("Search(3) = %+v, %v", rec, ok)
	}
}

func TestListRange(t *testing.T) {
	s := NewStore()
	for _, id := range []int{5, 1, 9, 3, 7} {
		s.AddRecord(newPatient(id, "p"))
	}
	if got := idsOf(s.ListRange(3, 8)); !equalInts(got, []int{3, 5, 7}) {
		t.Errorf("ListRange(3, 8) = %v; want [3 5 7]", got)
	}
}

func TestHeightTracksInsertOrder(t *testing.T) {
	sorted := NewStore()
	for id := 1; id <= 10; id++ {
		sorted.AddRecord(newPatient(id, "p"))
	}
	if sorted.Height() != 10 {
		t.Errorf("sorted insert Height() = %d; want 10", sorted.Height())
	}

	balanced := NewStore(WithExpectedRecords(16))
	for _, id := range []int{4, 2, 6, 1, 3, 5, 7} {
		balanced.AddRecord(newPatient(id, "p"))
	}
	if balanced.Height() != 3 {
		t.Errorf("balanced insert Height() = %d; want 3", balanced.Height())
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		rec      PatientRecord
		expected string
	}{
		{
			PatientRecord{1, "Alice", 30, "Flu", "120/80", 72, 98.6},
			"Patient ID: 1, Name: Alice, Age: 30, Diagnosis: Flu, BP: 120/80, Pulse: 72, Temp: 98.6",
		},
		{
			PatientRecord{2, "Bob", 61, "Asthma", "130/85", 88, 37},
			"Patient ID: 2, Name: Bob, Age: 61, Diagnosis: Asthma, BP: 130/85, Pulse: 88, Temp: 37.0",
		},
	}
	for _, tc := range tests {
		if got := tc.rec.String(); got != tc.expected {
			t.Errorf("String() = %q; want %q", got, tc.expected)
		}
	}
}

func TestExpectedRecordsIsCapped(t *testing.T) {
	s := NewStore(WithExpectedRecords(1 << 50))
	wantBits, _ := bloom.EstimateParameters(MaxExpectedRecords, DefaultFalsePositive)
	if got := s.seen.Cap(); got != wantBits {
		t.Errorf("filter size = %d bits; want %d", got, wantBits)
	}
	if err := s.Add(1, "Ann", 30, "Flu", "120/80", 72, 98.6); err != nil {
		t.Fatalf("Add on capped store: %v", err)
	}
	if _, ok := s.Search(1); !ok {
		t.Error("Search(1) missed on capped store")
	}
}

func TestIDRange(t *testing.T) {
	s := NewStore()
	if _, _, ok := s.IDRange(); ok {
		t.Error("IDRange on empty store reported ok")
	}
	for _, id := range []int{50, 30, 70, 20} {
		s.AddRecord(newPatient(id, "P"))
	}
	lo, hi, ok := s.IDRange()
	if !ok || lo != 20 || hi != 70 {
		t.Errorf("IDRange() = %d, %d, %v; want 20, 70, true", lo, hi, ok)
	}
}

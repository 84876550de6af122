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

// Package records keeps patient records in a binary search tree keyed by
// patient ID, with CSV bulk loading and a graph export of the tree shape.
package records

import (
	"strconv"

	"github.com/cybrota/patient-records/bst"
	"github.com/willf/bloom"
)

const (
	DefaultExpectedRecords = 10000
	DefaultFalsePositive   = 0.01

	// MaxExpectedRecords caps the filter size hint, about 12MB of bits.
	MaxExpectedRecords = 10_000_000
)

// Store is the patient-facing façade over the tree. It is not safe for
// concurrent use.
type Store struct {
	tree *bst.Tree[PatientRecord]

	// seen holds every ID ever inserted. A miss proves absence without
	// walking the tree. Deleted IDs stay in the filter.
	seen *bloom.BloomFilter
}

type Option func(*storeOptions)

type storeOptions struct {
	expected      uint
	falsePositive float64
}

// WithExpectedRecords sizes the lookup filter for roughly n records.
// Non-positive values keep the default and larger ones are capped at
// MaxExpectedRecords.
func WithExpectedRecords(n int) Option {
	return func(o *storeOptions) {
		if n > 0 {
			o.expected = uint(min(n, MaxExpectedRecords))
		}
	}
}

func NewStore(opts ...Option) *Store {
	o := storeOptions{expected: DefaultExpectedRecords, falsePositive: DefaultFalsePositive}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		tree: bst.New[PatientRecord](),
		seen: bloom.NewWithEstimates(o.expected, o.falsePositive),
	}
}

// Add builds a record from its fields and inserts it.
func (s *Store) Add(id int, name string, age int, diagnosis, bloodPressure string, pulse int, temperature float64) error {
	return s.AddRecord(PatientRecord{
		PatientID:       id,
		Name:            name,
		Age:             age,
		Diagnosis:       diagnosis,
		BloodPressure:   bloodPressure,
		Pulse:           pulse,
		BodyTemperature: temperature,
	})
}

// AddRecord inserts rec keyed by its PatientID. An ID that is already
// present is rejected with ErrDuplicateID and the stored record is kept.
func (s *Store) AddRecord(rec PatientRecord) error {
	if err := s.tree.Insert(rec.PatientID, rec); err != nil {
		return ErrDuplicateID
	}
	s.seen.AddString(idKey(rec.PatientID))
	return nil
}

// Upsert inserts rec or replaces the record with the same ID, reporting
// whether a replacement happened.
func (s *Store) Upsert(rec PatientRecord) bool {
	s.seen.AddString(idKey(rec.PatientID))
	return s.tree.Upsert(rec.PatientID, rec)
}

// Search returns the record for id, or false if no such patient exists.
func (s *Store) Search(id int) (PatientRecord, bool) {
	if !s.seen.TestString(idKey(id)) {
		return PatientRecord{}, false
	}
	return s.tree.Get(id)
}

// Contains reports whether a record with id is stored.
func (s *Store) Contains(id int) bool {
	_, ok := s.Search(id)
	return ok
}

// Delete removes the record for id. Deleting a missing ID is a no-op that
// returns false.
func (s *Store) Delete(id int) bool {
	if !s.seen.TestString(idKey(id)) {
		return false
	}
	return s.tree.Remove(id)
}

// ListAll returns every record in ascending patient ID order.
func (s *Store) ListAll() []PatientRecord {
	return s.tree.InOrder()
}

// ListRange returns the records with from <= ID < to in ascending order.
func (s *Store) ListRange(from, to int) []PatientRecord {
	return s.tree.Range(from, to)
}

// IDRange returns the smallest and largest stored patient IDs.
func (s *Store) IDRange() (lowest, highest int, ok bool) {
	lo, ok := s.tree.Min()
	if !ok {
		return 0, 0, false
	}
	hi, _ := s.tree.Max()
	return lo.Key(), hi.Key(), true
}

func (s *Store) Len() int {
	return s.tree.Len()
}

// Height is the depth of the underlying tree. It equals Len when records
// were inserted in sorted order.
func (s *Store) Height() int {
	return s.tree.Height()
}

func idKey(id int) string {
	return strconv.Itoa(id)
}

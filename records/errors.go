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
	"fmt"

	"github.com/cybrota/patient-records/bst"
)

var (
	ErrDuplicateID   = fmt.Errorf("patient ID already present: %w", bst.ErrDuplicateKey)
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidNumber = errors.New("invalid number")
)

// DataFormatError reports a row that could not be turned into a record.
// Row 0 is the header; data rows count from 1.
type DataFormatError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *DataFormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	if e.Value == "" {
		return fmt.Sprintf("row %d: field %q: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: field %q: %v %q", e.Row, e.Field, e.Err, e.Value)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a record source that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read records from %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

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
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/patient-records/records"
)

var errEmptyCommand = errors.New("type a command: add, set, find or del")

// commandResult describes what a command bar line did to the store
type commandResult struct {
	message   string
	focus     bool
	focusID   int
	changed   bool
	changedID int
}

// splitCommand splits a command bar line into words, honouring quotes.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// executeCommand runs one command bar line against the store.
//
//	add ID NAME AGE DIAGNOSIS BP PULSE TEMP
//	set ID NAME AGE DIAGNOSIS BP PULSE TEMP
//	find ID
//	del ID
//
// A bare number is treated as find.
func executeCommand(store *records.Store, line string) (commandResult, error) {
	args, err := splitCommand(strings.TrimSpace(line))
	if err != nil {
		return commandResult{}, err
	}
	if len(args) == 0 {
		return commandResult{}, errEmptyCommand
	}

	verb := strings.ToLower(args[0])
	if _, err := strconv.Atoi(verb); err == nil {
		args = append([]string{"find"}, args...)
		verb = "find"
	}

	switch verb {
	case "add":
		return addCommand(store, args[1:])
	case "set", "upsert":
		return setCommand(store, verb, args[1:])
	case "find", "search":
		id, err := idArg(verb, args[1:])
		if err != nil {
			return commandResult{}, err
		}
		if !store.Contains(id) {
			return commandResult{}, fmt.Errorf("patient %d not found", id)
		}
		return commandResult{message: fmt.Sprintf("Found patient %d", id), focus: true, focusID: id}, nil
	case "del", "delete", "rm":
		id, err := idArg(verb, args[1:])
		if err != nil {
			return commandResult{}, err
		}
		if !store.Delete(id) {
			return commandResult{}, fmt.Errorf("patient %d not found, nothing deleted", id)
		}
		return commandResult{message: fmt.Sprintf("🗑️  Deleted patient %d", id), changed: true, changedID: id}, nil
	default:
		return commandResult{}, fmt.Errorf("unknown command %q: use add, set, find or del", args[0])
	}
}

// applyCommand runs line and drops the cached card of any record it changed.
func applyCommand(store *records.Store, cards *cache.Cache, line string) (commandResult, error) {
	result, err := executeCommand(store, line)
	if err != nil {
		return result, err
	}
	if result.changed {
		InvalidateRecordCard(cards, result.changedID)
	}
	return result, nil
}

// addCommand inserts one record using the same validation as a CSV row.
func addCommand(store *records.Store, args []string) (commandResult, error) {
	row, err := rowArgs("add", args)
	if err != nil {
		return commandResult{}, err
	}
	if _, err := store.BulkLoad([]records.Row{row}); err != nil {
		return commandResult{}, err
	}

	id, _ := strconv.Atoi(strings.TrimSpace(row[records.ColPatientID]))
	return commandResult{
		message:   fmt.Sprintf("✅ Added patient %d", id),
		focus:     true,
		focusID:   id,
		changed:   true,
		changedID: id,
	}, nil
}

// setCommand adds a record or replaces the one with the same ID.
func setCommand(store *records.Store, verb string, args []string) (commandResult, error) {
	row, err := rowArgs(verb, args)
	if err != nil {
		return commandResult{}, err
	}
	replaced, err := store.UpsertRow(row)
	if err != nil {
		return commandResult{}, err
	}

	id, _ := strconv.Atoi(strings.TrimSpace(row[records.ColPatientID]))
	msg := fmt.Sprintf("✅ Added patient %d", id)
	if replaced {
		msg = fmt.Sprintf("✏️  Updated patient %d", id)
	}
	return commandResult{
		message:   msg,
		focus:     true,
		focusID:   id,
		changed:   true,
		changedID: id,
	}, nil
}

// rowArgs maps positional values onto the CSV columns.
func rowArgs(verb string, args []string) (records.Row, error) {
	if len(args) != len(records.Columns) {
		return nil, fmt.Errorf("%s needs %d values: %s", verb, len(records.Columns), strings.Join(records.Columns, " "))
	}
	row := make(records.Row, len(records.Columns))
	for i, col := range records.Columns {
		row[col] = args[i]
	}
	return row, nil
}

func idArg(verb string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s needs exactly one patient ID", verb)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: invalid patient ID %q", verb, args[0])
	}
	return id, nil
}

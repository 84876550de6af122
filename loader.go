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
	"io/fs"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/patient-records/records"
)

// resolveDataPath picks the --file flag value, falling back to the config.
func resolveDataPath(flagPath string, config *Config) string {
	if flagPath != "" {
		return flagPath
	}
	return config.Data.CSVPath
}

// loadStore builds a store from the CSV file at path. With showProgress a
// progress bar tracks the insert phase on stderr.
func loadStore(path string, config *Config, showProgress bool) (*records.Store, error) {
	store := records.NewStore(records.WithExpectedRecords(config.Data.ExpectedRecords))

	var opts []records.LoadOption
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🩺 Indexing patients..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Indexing completed!\n")
			}),
		)
		opts = append(opts, records.WithProgress(func(int) {
			bar.Add(1)
		}))
	}

	n, err := store.LoadCSVFile(path, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, describeLoadError(err)
	}

	log.Printf("Loaded %d patient records from %s (tree height %d)", n, path, store.Height())
	return store, nil
}

// describeLoadError adds a hint for the common failure cases.
func describeLoadError(err error) error {
	var fae *records.FileAccessError
	if errors.As(err, &fae) && errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("record file %s not found. Pass --file or set data.csv_path in ~/%s", fae.Path, configFileName)
	}
	var dfe *records.DataFormatError
	if errors.As(err, &dfe) {
		return fmt.Errorf("malformed record source, nothing was loaded: %w", err)
	}
	return err
}

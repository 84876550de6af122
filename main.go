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
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybrota/patient-records/records"
	"github.com/cybrota/patient-records/render"
)

func main() {
	InitializeColors()

	asciiLogo := `
┌─┐┌─┐┌┬┐┬┌─┐┌┐┌┌┬┐  ┬─┐┌─┐┌─┐┌─┐┬─┐┌┬┐┌─┐
├─┘├─┤ │ │├┤ │││ │   ├┬┘├┤ │  │ │├┬┘ ││└─┐
┴  ┴ ┴ ┴ ┴└─┘┘└┘ ┴   ┴└─└─┘└─┘└─┘┴└──┴┘└─┘
Ordered patient record index with CSV loading and tree views [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = defaults()
	}

	var dataPath string

	// mustLoad is shared by every command that works on the record source
	mustLoad := func(showProgress bool) *records.Store {
		store, err := loadStore(resolveDataPath(dataPath, config), config, showProgress)
		if err != nil {
			log.Fatalf("Error loading patient records: %v", err)
		}
		return store
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Launches the interactive patient browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a terminal UI to list, search, add and delete records`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			if err := runBubbleTeaApp(store, config); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print patient records in ascending ID order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			from, _ := cmd.Flags().GetInt("from")
			to, _ := cmd.Flags().GetInt("to")

			var recs []records.PatientRecord
			if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
				recs = store.ListRange(from, to)
			} else {
				recs = store.ListAll()
			}
			printRecords(os.Stdout, recs)
		},
	}
	cmdList.Flags().Int("from", math.MinInt, "smallest patient ID to include")
	cmdList.Flags().Int("to", math.MaxInt, "list IDs strictly below this value")

	var cmdSearch = &cobra.Command{
		Use:   "search",
		Short: "Look up one patient by ID",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			id, _ := cmd.Flags().GetInt("id")
			rec, ok := store.Search(id)
			if !ok {
				fmt.Fprintf(os.Stderr, "%sPatient %d not found%s\n", Warning, id, Reset)
				os.Exit(1)
			}
			fmt.Println(rec)
		},
	}
	cmdSearch.Flags().Int("id", 0, "patient ID to look up")
	cmdSearch.MarkFlagRequired("id")

	var cmdDelete = &cobra.Command{
		Use:   "delete",
		Short: "Delete a patient by ID and print the remaining records",
		Long:  "Delete removes a record from the loaded index. The CSV file itself is not modified.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			id, _ := cmd.Flags().GetInt("id")
			if store.Delete(id) {
				fmt.Fprintf(os.Stderr, "%sDeleted patient %d%s\n", Green, id, Reset)
			} else {
				fmt.Fprintf(os.Stderr, "%sPatient %d not found, nothing deleted%s\n", Warning, id, Reset)
			}
			printRecords(os.Stdout, store.ListAll())
		},
	}
	cmdDelete.Flags().Int("id", 0, "patient ID to delete")
	cmdDelete.MarkFlagRequired("id")

	var cmdGraph = &cobra.Command{
		Use:   "graph",
		Short: "Render the index tree",
		Long:  fmt.Sprintf("Graph renders the index tree. Formats: %s", strings.Join(render.Formats, ", ")),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = config.Display.GraphFormat
			}
			out, err := render.NewManager().Render(format, store.ExportGraph())
			if err != nil {
				log.Fatalf("Error rendering graph: %v", err)
			}

			outPath, _ := cmd.Flags().GetString("out")
			if outPath == "" {
				os.Stdout.Write(out)
				return
			}
			if err := os.WriteFile(outPath, out, 0644); err != nil {
				log.Fatalf("Error writing graph: %v", err)
			}
			fmt.Fprintf(os.Stderr, "%sWrote %s graph to %s%s\n", Green, format, outPath, Reset)
		},
	}
	cmdGraph.Flags().String("format", "", "output format (defaults to display.graph_format)")
	cmdGraph.Flags().String("out", "", "write to this file instead of stdout")

	var cmdTree = &cobra.Command{
		Use:   "tree",
		Short: "Explore the index tree interactively",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := mustLoad(false)
			runTreeView(store)
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load",
		Short: "Validate a record source and report how it indexes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			showProgress, _ := cmd.Flags().GetBool("progress")
			store := mustLoad(showProgress)
			fmt.Printf("📋 Records: %s%d%s\n", Green, store.Len(), Reset)
			fmt.Printf("🌳 Tree height: %s%d%s\n", Green, store.Height(), Reset)
			if lo, hi, ok := store.IDRange(); ok {
				fmt.Printf("🔢 Patient IDs: %s%d..%d%s\n", Green, lo, hi, Reset)
			}
			if store.Len() > 2 && store.Height() == store.Len() {
				fmt.Printf("%s⚠️  Records were sorted by ID, so the index is a single chain and lookups are linear.%s\n", Warning, Reset)
			}
		},
	}
	cmdLoad.Flags().Bool("progress", true, "show a progress bar while indexing")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating a default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "patients",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the browser when no subcommand is provided
			cmdBrowse.Run(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&dataPath, "file", "f", "", "CSV record source (defaults to data.csv_path)")
	rootCmd.AddCommand(cmdBrowse, cmdList, cmdSearch, cmdDelete, cmdGraph, cmdTree, cmdLoad, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printRecords(w io.Writer, recs []records.PatientRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No patient records.")
		return
	}
	for _, rec := range recs {
		fmt.Fprintln(w, rec)
	}
}

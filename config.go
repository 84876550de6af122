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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/patient-records/records"
)

const configFileName = ".patients.yaml"

type DataConfig struct {
	CSVPath         string `yaml:"csv_path"`
	ExpectedRecords int    `yaml:"expected_records"`
}

type DisplayConfig struct {
	GraphFormat string `yaml:"graph_format"`
	WordWrap    int    `yaml:"word_wrap"`
}

type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type Config struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Cache   CacheConfig   `yaml:"cache"`
}

var defaultConfig = Config{
	Data: DataConfig{
		CSVPath:         "patients.csv",
		ExpectedRecords: records.DefaultExpectedRecords,
	},
	Display: DisplayConfig{
		GraphFormat: "ascii",
		WordWrap:    72,
	},
	Cache: CacheConfig{
		TTLMinutes: 30,
	},
}

// LoadConfig reads ~/.patients.yaml. Any problem with the file falls back to
// the defaults, and keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), nil
	}
	config.normalize()

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	if c.Data.ExpectedRecords <= 0 {
		c.Data.ExpectedRecords = defaultConfig.Data.ExpectedRecords
	}
	if c.Data.ExpectedRecords > records.MaxExpectedRecords {
		c.Data.ExpectedRecords = records.MaxExpectedRecords
	}
	if c.Display.GraphFormat == "" {
		c.Display.GraphFormat = defaultConfig.Display.GraphFormat
	}
	if c.Display.WordWrap <= 0 {
		c.Display.WordWrap = defaultConfig.Display.WordWrap
	}
	if c.Cache.TTLMinutes <= 0 {
		c.Cache.TTLMinutes = defaultConfig.Cache.TTLMinutes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, _ := loadConfigFrom(configPath)

	fmt.Printf("🔧 Patient Records Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🗂  %sData:%s\n", Green, Reset)
	fmt.Printf("  • %scsv_path%s: %s\n", Green, Reset, config.Data.CSVPath)
	fmt.Printf("    Record source used when --file is not given\n")
	fmt.Printf("  • %sexpected_records%s: %d\n", Green, Reset, config.Data.ExpectedRecords)
	fmt.Printf("    Sizing hint for the ID lookup filter\n\n")

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sgraph_format%s: %s\n", Green, Reset, config.Display.GraphFormat)
	fmt.Printf("  • %sword_wrap%s: %d\n\n", Green, Reset, config.Display.WordWrap)

	fmt.Printf("⏱  %sCache:%s\n", Green, Reset)
	fmt.Printf("  • %sttl_minutes%s: %d\n\n", Green, Reset, config.Cache.TTLMinutes)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}

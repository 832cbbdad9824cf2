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
)

type BenchConfig struct {
	Inserts int    `yaml:"inserts"`
	Pattern string `yaml:"pattern"` // random or sorted
}

type IndexConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type UIConfig struct {
	Color bool `yaml:"color"`
}

type Config struct {
	Bench BenchConfig `yaml:"bench"`
	Index IndexConfig `yaml:"index"`
	UI    UIConfig    `yaml:"ui"`
}

var defaultConfig = Config{
	Bench: BenchConfig{
		Inserts: 100000,
		Pattern: "random",
	},
	Index: IndexConfig{
		BloomFilterSize:   1 << 20,
		BloomFilterHashes: 5,
	},
	UI: UIConfig{
		Color: true,
	},
}

// LoadConfig reads ~/.avlctl.yaml, falling back to defaults whenever
// the file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &defaultConfig, nil
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	config := defaultConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, err
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avlctl.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("Failed to get config path: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("avlctl configuration\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("Config file: %s\n\n", configPath)
	fmt.Printf("%sbench%s\n", Green, Reset)
	fmt.Printf("  inserts: %d\n", config.Bench.Inserts)
	fmt.Printf("  pattern: %s\n", config.Bench.Pattern)
	fmt.Printf("%sindex%s\n", Green, Reset)
	fmt.Printf("  bloom_filter_size:   %d\n", config.Index.BloomFilterSize)
	fmt.Printf("  bloom_filter_hashes: %d\n", config.Index.BloomFilterHashes)
	fmt.Printf("%sui%s\n", Green, Reset)
	fmt.Printf("  color: %t\n", config.UI.Color)
}

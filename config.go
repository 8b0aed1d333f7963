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
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/collisions/store"
)

const configFileName = ".collisions.yaml"

type DataConfig struct {
	File         string `yaml:"file"`
	ShowProgress bool   `yaml:"show_progress"`
}

type IndexConfig struct {
	ZoneFilterSize   uint `yaml:"zone_filter_size"`
	ZoneFilterHashes uint `yaml:"zone_filter_hashes"`
}

type ReportConfig struct {
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	CopyToClipboard bool          `yaml:"copy_to_clipboard"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Data   DataConfig   `yaml:"data"`
	Index  IndexConfig  `yaml:"index"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// envOverrides are read from COLLISIONS_* variables and win over the file.
type envOverrides struct {
	DataFile     string `envconfig:"DATA_FILE"`
	ShowProgress string `envconfig:"SHOW_PROGRESS"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

func defaultConfig() Config {
	return Config{
		Data: DataConfig{
			ShowProgress: true,
		},
		Index: IndexConfig{
			ZoneFilterSize:   store.DefaultZoneFilterSize,
			ZoneFilterHashes: store.DefaultZoneFilterHashes,
		},
		Report: ReportConfig{
			CacheTTL: store.DefaultReportTTL,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) StoreOptions() store.Options {
	return store.Options{
		ZoneFilterSize:   c.Index.ZoneFilterSize,
		ZoneFilterHashes: c.Index.ZoneFilterHashes,
		ReportTTL:        c.Report.CacheTTL,
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config at path, or ~/.collisions.yaml when path is
// empty. A missing file yields the defaults. A file that cannot be parsed
// yields the defaults together with the parse error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			config := defaultConfig()
			return &config, applyEnv(&config)
		}
		path = p
	}

	config, err := readConfigFile(path)
	if err != nil {
		fallback := defaultConfig()
		if envErr := applyEnv(&fallback); envErr != nil {
			return &fallback, envErr
		}
		return &fallback, err
	}
	return config, applyEnv(config)
}

func readConfigFile(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	return &config, nil
}

func applyEnv(config *Config) error {
	var env envOverrides
	if err := envconfig.Process("collisions", &env); err != nil {
		return fmt.Errorf("failed to read environment: %v", err)
	}

	if env.DataFile != "" {
		config.Data.File = env.DataFile
	}
	if env.LogLevel != "" {
		config.Log.Level = env.LogLevel
	}
	if env.ShowProgress != "" {
		show, err := strconv.ParseBool(env.ShowProgress)
		if err != nil {
			return fmt.Errorf("invalid COLLISIONS_SHOW_PROGRESS %q: %v", env.ShowProgress, err)
		}
		config.Data.ShowProgress = show
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

// displaySettings prints the active configuration, creating the default file
// first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %v", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Collisions Configuration Settings\n")
	fmt.Fprintf(w, "═════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	dataFile := config.Data.File
	if dataFile == "" {
		dataFile = "(none, pass a file argument)"
	}
	fmt.Fprintf(w, "%sData:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • file: %s\n", dataFile)
	fmt.Fprintf(w, "  • show_progress: %t\n", config.Data.ShowProgress)
	fmt.Fprintf(w, "%sIndex:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • zone_filter_size: %d\n", config.Index.ZoneFilterSize)
	fmt.Fprintf(w, "  • zone_filter_hashes: %d\n", config.Index.ZoneFilterHashes)
	fmt.Fprintf(w, "%sReport:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • cache_ttl: %s\n", config.Report.CacheTTL)
	fmt.Fprintf(w, "  • copy_to_clipboard: %t\n", config.Report.CopyToClipboard)
	fmt.Fprintf(w, "%sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • level: %s\n", config.Log.Level)
	return nil
}

// Copyright (c) 2021 - LBRY Inc.
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

package config

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/lbryio/unorm/param"
)

const (
	defaultConfigFilename = "unorm.conf"
	defaultLogFilename    = "unorm.log"
)

var (
	appDir = btcutil.AppDataDir("unorm", false)

	// DefaultConfigFile is read by Load when no path is given.
	DefaultConfigFile = filepath.Join(appDir, defaultConfigFilename)

	DefaultConfig = Config{
		DataDir:    filepath.Join(appDir, "data"),
		LogDir:     filepath.Join(appDir, "logs"),
		DebugLevel: "info",

		TableRepoPebble: "ucd_pebble_db",

		CacheSize: param.DefaultCacheSize,
		Workers:   param.DefaultWorkers,
	}
)

// Config is the container of all configurations.
type Config struct {
	DataDir    string `long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	// Path of the property table repo, relative to DataDir.
	TableRepoPebble string `long:"tablerepo" description:"Pebble database holding property table snapshots, relative to datadir"`

	CacheSize uint `long:"cachesize" description:"Number of already normal inputs to remember"`
	Workers   int  `long:"workers" description:"Number of goroutines used for conformance runs"`
}

// TableRepoPath returns the absolute path of the property table repo.
func (c *Config) TableRepoPath() string {
	if filepath.IsAbs(c.TableRepoPebble) {
		return c.TableRepoPebble
	}
	return filepath.Join(c.DataDir, c.TableRepoPebble)
}

// LogFile returns the path of the rotated log file.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, defaultLogFilename)
}

// Load returns DefaultConfig overlaid with the INI formatted file at path.  A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	err := flags.NewIniParser(parser).ParseFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "parse config file %s", path)
	}

	if cfg.Workers < 1 {
		return cfg, errors.Errorf("workers must be positive, got %d", cfg.Workers)
	}

	return cfg, nil
}

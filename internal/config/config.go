// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads upm settings from YAML files
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"

	iu "github.com/choria-io/upm/internal/util"
	"github.com/choria-io/upm/model"
)

const (
	fileName        = "config.yaml"
	systemConfigDir = "/etc/choria/upm"
)

// DefaultFiles is the list of configuration files in the order they are merged
func DefaultFiles() []string {
	return []string{
		filepath.Join(systemConfigDir, fileName),
		filepath.Join(xdg.ConfigHome, "choria", "upm", fileName),
	}
}

// Load reads file when set, otherwise merges those DefaultFiles that exist with later files taking precedence
func Load(file string, log model.Logger) (model.Config, error) {
	if file != "" {
		if !iu.FileExists(file) {
			return model.Config{}, fmt.Errorf("configuration file %s does not exist", file)
		}

		return loadFiles([]string{file}, log)
	}

	var found []string
	for _, f := range DefaultFiles() {
		if iu.FileExists(f) {
			found = append(found, f)
		}
	}

	return loadFiles(found, log)
}

func loadFiles(files []string, log model.Logger) (model.Config, error) {
	var cfg model.Config

	merged := map[string]any{}

	for _, f := range files {
		log.Debug("Reading configuration", "file", f)

		cb, err := os.ReadFile(f)
		if err != nil {
			return cfg, fmt.Errorf("could not read configuration %s: %w", f, err)
		}

		var m map[string]any
		err = yaml.Unmarshal(cb, &m)
		if err != nil {
			return cfg, fmt.Errorf("could not parse configuration %s: %w", f, err)
		}

		merged = iu.DeepMergeMap(merged, m)
	}

	if len(merged) == 0 {
		return cfg, nil
	}

	mb, err := yaml.Marshal(merged)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(mb, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Override applies command line settings over file settings, flags can only enable options
func Override(file model.Config, flags model.Config) model.Config {
	res := file

	res.DryRun = file.DryRun || flags.DryRun
	res.NoConfirm = file.NoConfirm || flags.NoConfirm
	res.Needed = file.Needed || flags.Needed
	res.NoCache = file.NoCache || flags.NoCache

	if flags.Backend != "" {
		res.Backend = flags.Backend
	}
	if flags.MetricsFile != "" {
		res.MetricsFile = flags.MetricsFile
	}
	if flags.SessionDirectory != "" {
		res.SessionDirectory = flags.SessionDirectory
	}

	return res
}

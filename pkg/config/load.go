// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/antgroup/heckel/modules/strengthen"
)

const (
	ENV_HECKEL_CONFIG_SYSTEM = "HECKEL_CONFIG_SYSTEM"
	ENV_HECKEL_CONFIG_GLOBAL = "HECKEL_CONFIG_GLOBAL"
)

func configSystemPath() string {
	if p, ok := os.LookupEnv(ENV_HECKEL_CONFIG_SYSTEM); ok {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	prefix := filepath.Dir(exe)
	if filepath.Base(prefix) == "bin" {
		prefix = filepath.Dir(prefix)
	}
	return filepath.Join(prefix, "etc/heckel.toml")
}

func configGlobalPath() string {
	if p, ok := os.LookupEnv(ENV_HECKEL_CONFIG_GLOBAL); ok {
		return p
	}
	return strengthen.ExpandPath("~/.heckel.toml")
}

// LoadFile decodes one config file; a missing file yields an empty config.
func LoadFile(p string) (*Config, error) {
	var cfg Config
	if len(p) == 0 {
		return &cfg, nil
	}
	if _, err := os.Stat(p); err != nil && os.IsNotExist(err) {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(p, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadBaseline merges the system config with the global one, the latter
// taking precedence.
func LoadBaseline() (*Config, error) {
	cfg, err := LoadFile(configSystemPath())
	if err != nil {
		return nil, err
	}
	gc, err := LoadFile(configGlobalPath())
	if err != nil {
		return nil, err
	}
	cfg.Overwrite(gc)
	return cfg, nil
}

// Load builds the effective configuration: baseline, then the explicit
// file (if any), then -X overrides.
func Load(explicit string, values []string) (*Config, error) {
	cfg, err := LoadBaseline()
	if err != nil {
		return nil, err
	}
	if len(explicit) != 0 {
		var ec Config
		if _, err := toml.DecodeFile(strengthen.ExpandPath(explicit), &ec); err != nil {
			return nil, err
		}
		cfg.Overwrite(&ec)
	}
	if err := cfg.ApplyValues(values); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Copyright (c) 2024, The hii Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glboot/hii/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile returns the path of the default config file,
// <user config dir>/hii/config.toml.
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			return "", errors.Errorf("config: no config directory: %w", errors.Join(err, herr))
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hii", "config.toml"), nil
}

// Open reads the given config file into cfg, overwriting only the
// fields present in the file. The format is chosen from the file
// extension: .toml, or .yaml / .yml. A leading ~ is expanded to the
// user's home directory.
func Open(cfg *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return errors.Wrap(err)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err)
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return errors.Errorf("config: unsupported config file extension %q in %q", ext, file)
	}
	if err != nil {
		return errors.Errorf("config: parsing %q: %w", file, err)
	}
	return nil
}

// Save writes the given config to the given file, creating the
// parent directory if needed. The format is chosen as in [Open].
func Save(cfg *Config, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return errors.Wrap(err)
	}
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		b = buf.Bytes()
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return errors.Errorf("config: unsupported config file extension %q in %q", ext, file)
	}
	if err != nil {
		return errors.Wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(os.WriteFile(file, b, 0644))
}

// Load returns the default config overlaid with the given config file.
// If file is empty, [DefaultFile] is used, and it is not an error for
// it to be missing. The resolved file name is returned along with the
// config ("" if no file was read).
func Load(file string) (*Config, string, error) {
	cfg := Default()
	explicit := file != ""
	if !explicit {
		var err error
		file, err = DefaultFile()
		if err != nil {
			return cfg, "", nil
		}
	}
	err := Open(cfg, file)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, "", nil
		}
		return nil, "", err
	}
	return cfg, file, nil
}

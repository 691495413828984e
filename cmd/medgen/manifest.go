package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestFileName = "medgen.toml"

// manifest is a discovered medgen.toml with its location. Every field in the
// file is optional; it only overrides the built-in defaults.
type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Solidity solidityConfig `toml:"solidity"`
	Campaign campaignConfig `toml:"campaign"`
}

type solidityConfig struct {
	Version string `toml:"version"`
	License string `toml:"license"`
}

type campaignConfig struct {
	Handlers   int    `toml:"handlers"`
	Properties int    `toml:"properties"`
	Out        string `toml:"out"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Campaign.Handlers < 0 {
		return manifestConfig{}, fmt.Errorf("%s: [campaign].handlers must not be negative", path)
	}
	if cfg.Campaign.Properties < 0 {
		return manifestConfig{}, fmt.Errorf("%s: [campaign].properties must not be negative", path)
	}
	return cfg, nil
}

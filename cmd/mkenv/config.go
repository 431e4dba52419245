package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type unmarshal func([]byte, any) error

// Profile carries per-board defaults so flash geometry doesn't have to be
// retyped on every invocation. Explicit command-line flags override it.
type Profile struct {
	// Size uses the same grammar as --size.
	Size      string `toml:"size" yaml:"size" json:"size"`
	Redundant bool   `toml:"redundant" yaml:"redundant" json:"redundant"`
}

// loadProfile finds the profiles config file (explicit path first, then
// the XDG config directory) and returns the named profile from it.
func loadProfile(path, name string, logger *slog.Logger) (*Profile, error) {
	if path == "" {
		var err error
		path, err = findProfilesFile()
		if err != nil {
			return nil, err
		}
	}
	logger.Info("using config file", "path", path)

	profiles, err := loadProfilesFile(path)
	if err != nil {
		return nil, err
	}

	prof, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("no profile %q in %s", name, path)
	}
	return &prof, nil
}

func findProfilesFile() (string, error) {
	for _, ext := range []string{"toml", "yaml", "yml", "json"} {
		maybe := filepath.Join(xdg.ConfigHome, "mkenv", "profiles."+ext)
		if _, err := os.Stat(maybe); err != nil {
			continue
		}
		return maybe, nil
	}
	return "", errors.New("no profiles config file found")
}

func loadProfilesFile(path string) (map[string]Profile, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return parseProfiles(toml.Unmarshal, body)
	case ".yaml", ".yml":
		return parseProfiles(yaml.Unmarshal, body)
	case ".json":
		return parseProfiles(json.Unmarshal, body)
	default:
		return nil, fmt.Errorf("unknown config file type %q", ext)
	}
}

func parseProfiles(un unmarshal, body []byte) (map[string]Profile, error) {
	profiles := map[string]Profile{}
	if err := un(body, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

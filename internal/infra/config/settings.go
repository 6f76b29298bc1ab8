package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings is the resolved application configuration.
// Priority: settings.yml > environment > defaults.
type Settings struct {
	// DBPath is the location of the JSON snapshot file
	DBPath string
}

// rawSettings mirrors the settings.yml structure. Pointer fields
// distinguish "absent" from "set to the zero value".
type rawSettings struct {
	DBPath *string `yaml:"db_path"`
}

const (
	defaultHome   = ".jira-cli"
	defaultDBFile = "db.json"

	envHome   = "JIRA_CLI_HOME"
	envDBPath = "JIRA_CLI_DB"
)

// Load resolves the settings. The app home directory is $JIRA_CLI_HOME or
// ./.jira-cli; a settings.yml inside it overrides defaults, and
// $JIRA_CLI_DB overrides the snapshot path over both. A malformed
// settings file is an error so a typo cannot silently retarget the data
// file.
func Load(fs afero.Fs) (Settings, error) {
	home := defaultHome
	if v := os.Getenv(envHome); v != "" {
		home = v
	}

	settings := Settings{
		DBPath: filepath.Join(home, defaultDBFile),
	}

	data, err := afero.ReadFile(fs, filepath.Join(home, "settings.yml"))
	if err == nil {
		var raw rawSettings
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Settings{}, err
		}
		if raw.DBPath != nil && *raw.DBPath != "" {
			settings.DBPath = *raw.DBPath
		}
	} else if !os.IsNotExist(err) {
		return Settings{}, err
	}

	if v := os.Getenv(envDBPath); v != "" {
		settings.DBPath = v
	}
	return settings, nil
}

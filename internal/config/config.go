// Package config loads runtime configuration from defaults, an optional
// YAML file, and GENEALOGY_* environment variables, in increasing
// precedence.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	keyTransport = "transport"
	keyPort      = "port"
	keyDataDir   = "data_dir"
	keyDBFile    = "db_file"
)

// Config holds the server's runtime settings.
type Config struct {
	Transport string
	Port      int
	DataDir   string
	DBFile    string
}

// Load builds the configuration. cfgFile may be empty; a named file that
// cannot be read is an error, since the caller asked for it explicitly.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyTransport, "stdio")
	v.SetDefault(keyPort, 8080)
	v.SetDefault(keyDataDir, "./data")
	v.SetDefault(keyDBFile, "genealogy.db")

	v.SetEnvPrefix("GENEALOGY")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	return &Config{
		Transport: v.GetString(keyTransport),
		Port:      v.GetInt(keyPort),
		DataDir:   v.GetString(keyDataDir),
		DBFile:    v.GetString(keyDBFile),
	}, nil
}

// DBPath returns the full path of the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

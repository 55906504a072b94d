package commands

import (
	"os"
	"path/filepath"
	"time"

	"apptendo/lib/configutil"
	"apptendo/lib/productdb"
	"apptendo/lib/timeline"
)

const configName = "apptendo.json5"

type Config struct {
	// every relative path below is resolved against this, defaults to the
	// working directory
	BaseDir        string           `json:"base_dir"`
	Url            string           `json:"url"`
	UserAgent      string           `json:"user_agent"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	Limit          int              `json:"limit"`
	JsonFile       string           `json:"json_file"`
	DB             productdb.Config `json:"db"`
	Debug          bool             `json:"debug"`
	// directory to dump HTTP exchanges into when debug is on
	DumpHttp string `json:"dump_http"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) resolve(path string) string {
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

func (c Config) withDefaults() (Config, error) {
	if c.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return c, err
		}
		c.BaseDir = wd
	}
	if c.Url == "" {
		c.Url = timeline.DefaultURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.Limit <= 0 || c.Limit > timeline.DefaultLimit {
		c.Limit = timeline.DefaultLimit
	}
	if c.JsonFile == "" {
		c.JsonFile = "apple_products.json"
	}
	if c.DB.Url == "" && c.DB.File == "" {
		c.DB.File = "Apptendo.db"
	}

	c.JsonFile = c.resolve(c.JsonFile)
	c.DB.File = c.resolve(c.DB.File)
	c.DumpHttp = c.resolve(c.DumpHttp)
	return c, nil
}

// LoadConfig reads apptendo.json5 (and apptendo.local.json5) from the
// working directory or the closest parent that has one. Without a config
// file every field takes its default.
func LoadConfig() (Config, error) {
	cfg, _, err := configutil.ReadRecursively[Config](configName)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	return cfg.withDefaults()
}

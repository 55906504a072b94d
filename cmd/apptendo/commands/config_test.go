package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"apptendo/lib/productdb"
	"apptendo/lib/timeline"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := Config{BaseDir: "/srv/apptendo"}.withDefaults()
	require.NoError(t, err)

	require.Equal(t, timeline.DefaultURL, cfg.Url)
	require.Equal(t, timeline.DefaultLimit, cfg.Limit)
	require.Equal(t, 30*time.Second, cfg.Timeout())
	require.Equal(t, filepath.Join("/srv/apptendo", "apple_products.json"), cfg.JsonFile)
	require.Equal(t, filepath.Join("/srv/apptendo", "Apptendo.db"), cfg.DB.File)
	require.Equal(t, "", cfg.DumpHttp)
}

func TestConfigLimitIsCapped(t *testing.T) {
	cfg, err := Config{BaseDir: "/srv/apptendo", Limit: 100}.withDefaults()
	require.NoError(t, err)
	require.Equal(t, timeline.DefaultLimit, cfg.Limit)

	cfg, err = Config{BaseDir: "/srv/apptendo", Limit: 5}.withDefaults()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Limit)
}

func TestConfigKeepsAbsoluteAndRemote(t *testing.T) {
	cfg, err := Config{
		BaseDir:  "/srv/apptendo",
		JsonFile: "/var/lib/apptendo/products.json",
		DumpHttp: ".dev/resty",
	}.withDefaults()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/apptendo/products.json", cfg.JsonFile)
	require.Equal(t, filepath.Join("/srv/apptendo", ".dev/resty"), cfg.DumpHttp)

	cfg, err = Config{BaseDir: "/srv", DB: productdb.Config{Url: "libsql://apptendo.turso.io"}}.withDefaults()
	require.NoError(t, err)
	require.Equal(t, "", cfg.DB.File)
	require.Equal(t, "libsql://apptendo.turso.io", cfg.DB.Url)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(`{
		// scrape fewer rows per run
		limit: 10,
		json_file: "cache/products.json",
		db: {file: "cache/products.db"}
	}`), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Limit)
	require.True(t, strings.HasSuffix(cfg.JsonFile, filepath.Join("cache", "products.json")))
	require.True(t, filepath.IsAbs(cfg.DB.File))
}

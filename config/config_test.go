package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ibflex.yaml")
	content := `
service:
  token: tok123
  query_id: "456"
  poll_interval: 2s
parse:
  date_mode: us
  strict: true
archive:
  db_path: /tmp/st.db
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "tok123", cfg.Service.Token)
	assert.Equal(t, "456", cfg.Service.QueryID)
	assert.Equal(t, "us", cfg.Parse.DateMode)
	assert.True(t, cfg.Parse.Strict)
	assert.Equal(t, "/tmp/st.db", cfg.Archive.DBPath)

	d, err := cfg.Service.ParsePollInterval()
	assert.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ibflex.json")
	content := `{"service": {"token": "tok123", "query_id": "456"}}`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "tok123", cfg.Service.Token)
	// Unset sections keep their defaults.
	assert.Equal(t, "auto", cfg.Parse.DateMode)
}

func TestLoadFromFileInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "bad-mode.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("parse:\n  date_mode: banana\n"), 0644))
	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "date_mode")

	path = filepath.Join(dir, "bad-interval.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("service:\n  poll_interval: soon\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "poll_interval")

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Service.Token = "tok123"
	cfg.Service.QueryID = "456"
	assert.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateDefaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

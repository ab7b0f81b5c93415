package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", "size: 5\ntarget: 512\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Size)
	assert.Equal(t, 512, cfg.Target)
	assert.InDelta(t, 0.10, cfg.Spawn4Probability, 1e-9, "missing fields keep defaults")
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadUserConfigBeatsLocal(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, ".term2048/config.yaml", "size: 6\n")
	writeFile(t, ".", LocalPath, "size: 3\n")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Size)
}

func TestLoadLocalConfig(t *testing.T) {
	isolate(t)
	writeFile(t, ".", LocalPath, "seed: 42\n")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 4, cfg.Size)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "bad.yaml", "size: [1, 2\n")

	_, err := Load(path)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"smallest board", func(c *Config) { c.Size = 2 }, true},
		{"largest board", func(c *Config) { c.Size = 16 }, true},
		{"board too small", func(c *Config) { c.Size = 1 }, false},
		{"board too large", func(c *Config) { c.Size = 17 }, false},
		{"small target", func(c *Config) { c.Target = 4 }, true},
		{"target too small", func(c *Config) { c.Target = 2 }, false},
		{"target not a power of two", func(c *Config) { c.Target = 1000 }, false},
		{"always fours", func(c *Config) { c.Spawn4Probability = 1 }, true},
		{"negative odds", func(c *Config) { c.Spawn4Probability = -0.1 }, false},
		{"odds above one", func(c *Config) { c.Spawn4Probability = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadValidates(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "big.yaml", "size: 40\n")

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Config{Size: 5, Target: 4096, Spawn4Probability: 0.25, Seed: 9}

	data, err := cfg.YAML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://todo.test:9000/\nclient_timeout: 3s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://todo.test:9000", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)

	t.Setenv("SERVER_URL", "http://override.test")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override.test", cfg.ServerURL)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{ServerURL: "http://localhost:8000", Timeout: time.Second}},
		{name: "empty url", cfg: Config{Timeout: time.Second}, wantErr: true},
		{name: "relative url", cfg: Config{ServerURL: "localhost:8000", Timeout: time.Second}, wantErr: true},
		{name: "zero timeout", cfg: Config{ServerURL: "http://localhost:8000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (testing.T.Chdir requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

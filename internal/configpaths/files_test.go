package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Alia5/usbclass/internal/configpaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG lookup is unix only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "usbclass"), dir)

	p, err := configpaths.DefaultNamedConfigPath("usbclass", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "usbclass", "usbclass.yaml"), p)
}

func TestExt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"json", "json"},
		{"yaml", "yaml"},
		{"yml", "yaml"},
		{"toml", "toml"},
		{"cbor", "json"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, configpaths.Ext(tt.in))
		})
	}
}

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		wantJSON bool
		wantYAML bool
		wantTOML bool
	}{
		{"json", "my.json", true, false, false},
		{"yaml", "my.yaml", false, true, false},
		{"yml", "my.yml", false, true, false},
		{"toml", "my.toml", false, false, true},
		{"no extension", "my", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tt.user)
			assert.Equal(t, tt.wantJSON, j[0] == tt.user)
			assert.Equal(t, tt.wantYAML, y[0] == tt.user)
			assert.Equal(t, tt.wantTOML, tm[0] == tt.user)
		})
	}
}

func TestConfigCandidatePathsWorkingDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	j, _, _ := configpaths.ConfigCandidatePaths("")
	require.NotEmpty(t, j)
	assert.Equal(t, "usbclass.json", filepath.Base(j[0]))
	assert.Equal(t, filepath.Base(dir), filepath.Base(filepath.Dir(j[0])))
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/usbclass/internal/config"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args []string, opts ...kong.Option) (*config.CLI, *kong.Context) {
	t.Helper()
	var cli config.CLI
	parser, err := kong.New(&cli, append([]kong.Option{kong.Name("usbclass"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseDefaults(t *testing.T) {
	unsetenv(t, "USBCLASS_FORMAT", "USBCLASS_LOG_LEVEL")
	cli, ctx := parse(t, []string{"decode", "0x08", "6", "50h"})
	assert.Equal(t, "decode <base> <subclass> <protocol>", ctx.Command())
	assert.Equal(t, "auto", cli.Format)
	assert.Equal(t, "warn", cli.Log.Level)
	assert.Equal(t, "0x08", cli.Decode.Base)
	assert.Equal(t, "6", cli.Decode.SubClass)
	assert.Equal(t, "50h", cli.Decode.Protocol)
}

func TestParseGlobals(t *testing.T) {
	unsetenv(t, "USBCLASS_FORMAT", "USBCLASS_LOG_LEVEL")
	cli, ctx := parse(t, []string{"--format=yaml", "--log.level=debug", "table", "--base=0x02", "--device"})
	assert.Equal(t, "table", ctx.Command())
	assert.Equal(t, "yaml", cli.Format)
	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, "0x02", cli.Table.Base)
	assert.True(t, cli.Table.Device)
}

func TestParseRejectsBadEnum(t *testing.T) {
	var cli config.CLI
	parser, err := kong.New(&cli, kong.Name("usbclass"))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--format=xml", "table"})
	assert.Error(t, err)

	_, err = parser.Parse([]string{"table", "--device", "--interface"})
	assert.Error(t, err)
}

func TestParseConfigFiles(t *testing.T) {
	unsetenv(t, "USBCLASS_FORMAT", "USBCLASS_LOG_LEVEL")
	dir := t.TempDir()

	tests := []struct {
		name   string
		file   string
		body   string
		loader kong.ConfigurationLoader
	}{
		{"json", "usbclass.json", `{"format": "toml", "log": {"level": "info"}}`, kong.JSON},
		{"yaml", "usbclass.yaml", "format: toml\nlog:\n  level: info\n", kongyaml.Loader},
		{"toml", "usbclass.toml", "format = \"toml\"\n[log]\nlevel = \"info\"\n", kongtoml.Loader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			cli, _ := parse(t, []string{"table"}, kong.Configuration(tt.loader, path))
			assert.Equal(t, "toml", cli.Format)
			assert.Equal(t, "info", cli.Log.Level)

			cli, _ = parse(t, []string{"--format=cbor", "table"}, kong.Configuration(tt.loader, path))
			assert.Equal(t, "cbor", cli.Format)
		})
	}
}

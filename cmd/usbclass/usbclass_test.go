package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("USBCLASS_CONFIG", "")
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{"none", []string{"table"}, "", ""},
		{"separate", []string{"--config", "a.yaml", "table"}, "", "a.yaml"},
		{"equals", []string{"table", "--config=b.toml"}, "", "b.toml"},
		{"dangling", []string{"--config"}, "", ""},
		{"env", []string{"table"}, "c.json", "c.json"},
		{"flag beats env", []string{"--config=d.json"}, "c.json", "d.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("USBCLASS_CONFIG", tt.env)
			assert.Equal(t, tt.want, findUserConfig(tt.args))
		})
	}
}

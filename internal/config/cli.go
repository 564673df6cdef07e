// Package config defines the command line of usbclass.
package config

import "github.com/Alia5/usbclass/internal/cmd"

type CLI struct {
	cmd.Globals `embed:""`

	ConfigFile string `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"USBCLASS_CONFIG"`

	Decode   cmd.Decode        `cmd:"" help:"Classify a base class, subclass and protocol byte"`
	Describe cmd.Describe      `cmd:"" help:"Classify a triple written as bb/ss/pp"`
	Table    cmd.Table         `cmd:"" help:"List every class this tool can decode"`
	Batch    cmd.Batch         `cmd:"" help:"Classify every triple in a file"`
	Inspect  cmd.Inspect       `cmd:"" help:"Classify the descriptors of a built-in device"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

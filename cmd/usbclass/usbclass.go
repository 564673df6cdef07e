package main

import (
	"os"
	"strings"

	"github.com/Alia5/usbclass/internal/cmd"
	"github.com/Alia5/usbclass/internal/config"
	"github.com/Alia5/usbclass/internal/configpaths"
	"github.com/Alia5/usbclass/internal/log"
	"github.com/Alia5/usbclass/internal/util"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	os.Exit(run())
}

func run() int {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("usbclass"),
		kong.Description("Decode USB base class, subclass and protocol codes"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return 2
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var rawLogger log.RawLogger
	if cli.Log.Raw != "" {
		f, err := os.OpenFile(cli.Log.Raw, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.Log.Raw, "error", err)
			rawLogger = log.NewRaw(nil)
		} else {
			rawLogger = log.NewRaw(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		rawLogger = log.NewRaw(os.Stderr)
	} else {
		rawLogger = log.NewRaw(nil)
	}

	out, err := cmd.Stdout(cli.Format)
	if err != nil {
		logger.Error("invalid output format", "format", cli.Format, "error", err)
		return 2
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.Bind(out)

	err = ctx.Run()
	if util.IsRunFromGUI() {
		util.WaitForKey(os.Stderr)
	}
	if err != nil {
		logger.Error("command failed", "command", ctx.Command(), "error", err)
		return 1
	}
	return 0
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("USBCLASS_CONFIG"); v != "" {
		return v
	}
	return ""
}

//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/usbclass/internal/util"
)

func init() {
	if util.IsRunFromGUI() && len(os.Args) < 2 {
		slog.Info("Detected GUI startup, showing the class table")
		slog.Warn("Run from a CLI for more options!")
		os.Args = append(os.Args, "--format=text", "table")
	}
}

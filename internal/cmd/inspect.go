package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/usbclass/apitypes"
	"github.com/Alia5/usbclass/usb/presets"
)

type Inspect struct {
	Preset string `arg:"" help:"Built-in device to inspect (keyboard, mouse, xbox360, dualshock4, steamdeck)"`
}

// Run is called by Kong when the inspect command is executed.
func (i *Inspect) Run(logger *slog.Logger, out *Output) error {
	d, ok := presets.Lookup(i.Preset)
	if !ok {
		return fmt.Errorf("unknown preset %q; expected one of %s", i.Preset, strings.Join(presets.Names(), ", "))
	}
	report := apitypes.NewInspectReport(i.Preset, d)
	logger.Debug("inspected", "preset", i.Preset, "interfaces", len(report.Interfaces), "problem", report.Problem)
	return out.Write(report)
}

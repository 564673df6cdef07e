package cmd

import (
	"log/slog"

	"github.com/Alia5/usbclass/apitypes"
	"github.com/Alia5/usbclass/usb/class"
)

type Table struct {
	Base      string `help:"Only list this base class"`
	Device    bool   `help:"Only list classes allowed in a device descriptor" xor:"level"`
	Interface bool   `help:"Only list classes allowed in an interface descriptor" xor:"level"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger, out *Output) error {
	report, err := t.Build()
	if err != nil {
		return err
	}
	logger.Debug("table built", "classes", len(report.Classes))
	return out.Write(report)
}

// Build filters the known classes by the command's flags.
func (t *Table) Build() (apitypes.TableReport, error) {
	var (
		base    uint8
		hasBase bool
	)
	if t.Base != "" {
		b, err := apitypes.ParseByte(t.Base)
		if err != nil {
			return apitypes.TableReport{}, err
		}
		base, hasBase = b, true
	}

	report := apitypes.TableReport{Classes: []apitypes.ClassReport{}}
	for _, c := range class.Known() {
		if hasBase && uint8(c.Base()) != base {
			continue
		}
		if t.Device && !c.UsableInDeviceDescriptor() {
			continue
		}
		if t.Interface && !c.UsableInInterfaceDescriptor() {
			continue
		}
		report.Classes = append(report.Classes, apitypes.NewClassReport(c))
	}
	return report, nil
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alia5/usbclass/apitypes"
	"github.com/Alia5/usbclass/internal/log"
	"github.com/Alia5/usbclass/usb/class"
)

// ErrNotClassified is returned when the requested triple does not classify.
// The report itself has already been written to the output.
var ErrNotClassified = errors.New("not classified")

type Decode struct {
	Base     string `arg:"" help:"Base class byte (0x08, 08h or decimal)"`
	SubClass string `arg:"" name:"subclass" help:"Subclass byte"`
	Protocol string `arg:"" help:"Protocol byte"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	var b [3]uint8
	for i, s := range []string{d.Base, d.SubClass, d.Protocol} {
		v, err := apitypes.ParseByte(s)
		if err != nil {
			return err
		}
		b[i] = v
	}
	return classify(class.Code{Base: b[0], SubClass: b[1], Protocol: b[2]}, logger, rawLogger, out)
}

type Describe struct {
	Code string `arg:"" help:"Class triple as printed by lsusb, e.g. 08/06/50"`
}

// Run is called by Kong when the describe command is executed.
func (d *Describe) Run(logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	code, err := apitypes.ParseCode(d.Code)
	if err != nil {
		return err
	}
	return classify(code, logger, rawLogger, out)
}

func classify(code class.Code, logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	rawLogger.Log(true, []byte{code.Base, code.SubClass, code.Protocol})

	c, err := class.ResolveCode(code)
	if err != nil {
		logger.Debug("classification failed", "code", code, "error", err)
		if werr := out.Write(apitypes.NewErrorReport(code, err)); werr != nil {
			return werr
		}
		return fmt.Errorf("%s: %w", code, ErrNotClassified)
	}

	canonical := c.Code()
	rawLogger.Log(false, []byte{canonical.Base, canonical.SubClass, canonical.Protocol})
	if canonical != code {
		logger.Info("code is not canonical", "given", code, "canonical", canonical)
	}
	logger.Debug("classified", "code", code, "class", c)
	return out.Write(apitypes.NewClassReport(c))
}

package cmd

import (
	"io"
	"os"

	"github.com/Alia5/usbclass/internal/render"
	"github.com/Alia5/usbclass/internal/util"
)

// LogConfig holds the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"warn" env:"USBCLASS_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" type:"path" env:"USBCLASS_LOG_FILE"`
	Raw     string `help:"Trace given and canonical class bytes to this file" type:"path" env:"USBCLASS_LOG_RAW"`
}

// Globals are the flags every command accepts. They are also what
// "config init" writes a template for.
type Globals struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Format string    `help:"Output format; auto picks text on a terminal and json otherwise" enum:"auto,text,json,yaml,toml,cbor" default:"auto" env:"USBCLASS_FORMAT"`
}

// Output is where commands write their reports.
type Output struct {
	W      io.Writer
	Format render.Format
}

// NewOutput resolves the format flag against w.
func NewOutput(w io.Writer, format string) (*Output, error) {
	if format == "" || format == "auto" {
		f := render.JSON
		if util.IsTerminal(w) {
			f = render.Text
		}
		return &Output{W: w, Format: f}, nil
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Output{W: w, Format: f}, nil
}

// Stdout is NewOutput for os.Stdout.
func Stdout(format string) (*Output, error) {
	return NewOutput(os.Stdout, format)
}

func (o *Output) Write(v any) error {
	return render.Write(o.W, o.Format, v)
}

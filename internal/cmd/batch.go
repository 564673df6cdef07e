package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/usbclass/apitypes"
	"github.com/Alia5/usbclass/internal/log"
	"github.com/Alia5/usbclass/usb/class"
)

type Batch struct {
	File string `arg:"" optional:"" help:"Input file; '-' reads stdin. Either a JSON array of {base, subClass, protocol} or one bb/ss/pp triple per line" default:"-"`
}

// Run is called by Kong when the batch command is executed.
func (b *Batch) Run(logger *slog.Logger, rawLogger log.RawLogger, out *Output) error {
	var r io.Reader = os.Stdin
	if b.File != "-" {
		f, err := os.Open(b.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	report, err := Classify(r, rawLogger)
	if err != nil {
		return err
	}
	logger.Info("batch done", "total", len(report.Results), "failed", report.Failed)
	if err := out.Write(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d: %w", report.Failed, len(report.Results), ErrNotClassified)
	}
	return nil
}

type batchInput struct {
	text string
	code class.Code
	err  error
}

// Classify reads triples from r and classifies each of them. Malformed lines
// are reported per entry; only unreadable input fails the whole batch.
func Classify(r io.Reader, rawLogger log.RawLogger) (apitypes.BatchReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return apitypes.BatchReport{}, err
	}

	var inputs []batchInput
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		inputs, err = readJSON(trimmed)
	} else {
		inputs, err = readLines(data)
	}
	if err != nil {
		return apitypes.BatchReport{}, err
	}

	report := apitypes.BatchReport{Results: make([]apitypes.BatchResult, 0, len(inputs))}
	for _, in := range inputs {
		res := apitypes.BatchResult{Input: in.text}
		if in.err != nil {
			e := apitypes.ErrorReport{Code: in.text, Detail: in.err.Error()}
			res.Error = &e
			report.Failed++
			report.Results = append(report.Results, res)
			continue
		}

		rawLogger.Log(true, []byte{in.code.Base, in.code.SubClass, in.code.Protocol})
		c, err := class.ResolveCode(in.code)
		if err != nil {
			e := apitypes.NewErrorReport(in.code, err)
			res.Error = &e
			report.Failed++
		} else {
			canonical := c.Code()
			rawLogger.Log(false, []byte{canonical.Base, canonical.SubClass, canonical.Protocol})
			cr := apitypes.NewClassReport(c)
			res.Class = &cr
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func readJSON(data []byte) ([]batchInput, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("batch input: %w", err)
	}
	inputs := make([]batchInput, 0, len(raw))
	for _, m := range raw {
		var req apitypes.CodeRequest
		in := batchInput{text: string(bytes.TrimSpace(m))}
		if err := json.Unmarshal(m, &req); err != nil {
			in.err = err
		} else {
			in.code = req.Code()
			in.text = in.code.String()
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readLines(data []byte) ([]batchInput, error) {
	var inputs []batchInput
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, err := apitypes.ParseCode(line)
		inputs = append(inputs, batchInput{text: line, code: code, err: err})
	}
	return inputs, sc.Err()
}

// Package render writes classification reports in the output formats the
// command line supports.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/usbclass/apitypes"

	"github.com/fxamacker/cbor/v2"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	CBOR Format = "cbor"
)

// Formats lists every format accepted by ParseFormat, in help order.
var Formats = []Format{Text, JSON, YAML, TOML, CBOR}

// ParseFormat normalizes a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "cbor":
		return CBOR, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// encMode encodes reports with integer keys in canonical order so identical
// reports produce identical bytes.
var encMode cbor.EncMode

func init() {
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	var err error
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// Write encodes v to w. v is one of the apitypes reports; the structured
// formats accept any value.
func Write(w io.Writer, f Format, v any) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case Text:
		return writeText(w, v)
	case JSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(v)
	case TOML:
		data, err = toml.Marshal(v)
	case CBOR:
		data, err = encMode.Marshal(v)
	default:
		return fmt.Errorf("unsupported format: %q", f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}

func writeText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch r := v.(type) {
	case apitypes.ClassReport:
		fmt.Fprintf(tw, "code:\t%s\n", r.Code)
		fmt.Fprintf(tw, "class:\t%s\n", r.Description)
		fmt.Fprintf(tw, "family:\t%s\n", r.Family)
		fmt.Fprintf(tw, "descriptors:\t%s\n", descriptors(r))
	case *apitypes.ClassReport:
		return writeText(w, *r)
	case apitypes.ErrorReport:
		fmt.Fprintf(tw, "%s\n", r.Error())
	case apitypes.TableReport:
		fmt.Fprintln(tw, "CODE\tDESCRIPTORS\tCLASS")
		for _, c := range r.Classes {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Code, descriptors(c), c.Description)
		}
	case apitypes.BatchReport:
		fmt.Fprintln(tw, "INPUT\tCODE\tRESULT")
		for _, res := range r.Results {
			switch {
			case res.Class != nil:
				fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Input, res.Class.Code, res.Class.Description)
			case res.Error != nil:
				fmt.Fprintf(tw, "%s\t%s\terror: %s\n", res.Input, res.Error.Code, res.Error.Detail)
			}
		}
		if r.Failed > 0 {
			fmt.Fprintf(tw, "\n%d of %d failed\n", r.Failed, len(r.Results))
		}
	case apitypes.InspectReport:
		fmt.Fprintf(tw, "device:\t%s:%s\t%s\n", r.VendorID, r.ProductID, result(r.Device, r.DeviceError))
		for _, iface := range r.Interfaces {
			fmt.Fprintf(tw, "interface %d.%d:\t\t%s\n", iface.Number, iface.Alternate, result(iface.Class, iface.Error))
		}
		if r.Problem != "" {
			fmt.Fprintf(tw, "\ninvalid: %s\n", r.Problem)
		}
	case fmt.Stringer:
		fmt.Fprintln(tw, r.String())
	default:
		return fmt.Errorf("no text form for %T", v)
	}
	return tw.Flush()
}

func result(c *apitypes.ClassReport, e *apitypes.ErrorReport) string {
	switch {
	case c != nil:
		return c.Code + "  " + c.Description
	case e != nil:
		return e.Code + "  error: " + e.Detail
	default:
		return "-"
	}
}

func descriptors(r apitypes.ClassReport) string {
	switch {
	case r.DeviceDescriptor && r.InterfaceDescriptor:
		return "device,interface"
	case r.DeviceDescriptor:
		return "device"
	case r.InterfaceDescriptor:
		return "interface"
	default:
		return "-"
	}
}

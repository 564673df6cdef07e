package apitypes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/usbclass/usb"
	"github.com/Alia5/usbclass/usb/class"
)

// ErrorReport describes a triple that failed to classify.
type ErrorReport struct {
	// Code is the input triple, formatted as bb/ss/pp.
	Code string `json:"code" yaml:"code" toml:"code" cbor:"1,keyasint"`
	// Kind is the failure kind (UnknownProtocol, UnknownClass, ...).
	Kind string `json:"kind" yaml:"kind" toml:"kind" cbor:"2,keyasint"`
	// Offending is the byte that did not decode.
	Offending uint8 `json:"offending" yaml:"offending" toml:"offending" cbor:"3,keyasint"`
	// Detail is the error message.
	Detail string `json:"detail" yaml:"detail" toml:"detail" cbor:"4,keyasint"`
}

func (e ErrorReport) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Detail, e.Kind)
}

// NewErrorReport builds a report for code. Errors that are not classification
// errors keep an empty Kind.
func NewErrorReport(code class.Code, err error) ErrorReport {
	r := ErrorReport{Code: code.String(), Detail: err.Error()}
	if kind, b, ok := class.KindOf(err); ok {
		r.Kind = kind.String()
		r.Offending = b
	}
	return r
}

// --

// ClassReport describes a classified triple.
type ClassReport struct {
	Code                string `json:"code" yaml:"code" toml:"code" cbor:"1,keyasint"`
	Base                uint8  `json:"base" yaml:"base" toml:"base" cbor:"2,keyasint"`
	SubClass            uint8  `json:"subClass" yaml:"subClass" toml:"subClass" cbor:"3,keyasint"`
	Protocol            uint8  `json:"protocol" yaml:"protocol" toml:"protocol" cbor:"4,keyasint"`
	Family              string `json:"family" yaml:"family" toml:"family" cbor:"5,keyasint"`
	Description         string `json:"description" yaml:"description" toml:"description" cbor:"6,keyasint"`
	DeviceDescriptor    bool   `json:"deviceDescriptor" yaml:"deviceDescriptor" toml:"deviceDescriptor" cbor:"7,keyasint"`
	InterfaceDescriptor bool   `json:"interfaceDescriptor" yaml:"interfaceDescriptor" toml:"interfaceDescriptor" cbor:"8,keyasint"`
}

// NewClassReport reports c using its canonical encoding.
func NewClassReport(c class.Class) ClassReport {
	code := c.Code()
	return ClassReport{
		Code:                code.String(),
		Base:                code.Base,
		SubClass:            code.SubClass,
		Protocol:            code.Protocol,
		Family:              c.Base().String(),
		Description:         c.String(),
		DeviceDescriptor:    c.UsableInDeviceDescriptor(),
		InterfaceDescriptor: c.UsableInInterfaceDescriptor(),
	}
}

type TableReport struct {
	Classes []ClassReport `json:"classes" yaml:"classes" toml:"classes" cbor:"1,keyasint"`
}

// BatchResult holds either Class or Error for one input line.
type BatchResult struct {
	Input string       `json:"input" yaml:"input" toml:"input" cbor:"1,keyasint"`
	Class *ClassReport `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty" cbor:"2,keyasint,omitempty"`
	Error *ErrorReport `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty" cbor:"3,keyasint,omitempty"`
}

type BatchReport struct {
	Results []BatchResult `json:"results" yaml:"results" toml:"results" cbor:"1,keyasint"`
	Failed  int           `json:"failed" yaml:"failed" toml:"failed" cbor:"2,keyasint"`
}

// --

// CodeRequest is one entry of a batch input file. Each field accepts a JSON
// number or a string in any form [ParseByte] understands.
type CodeRequest struct {
	Base     uint8 `json:"base"`
	SubClass uint8 `json:"subClass"`
	Protocol uint8 `json:"protocol"`
}

func (r CodeRequest) Code() class.Code {
	return class.Code{Base: r.Base, SubClass: r.SubClass, Protocol: r.Protocol}
}

// UnmarshalJSON implements custom unmarshaling to accept both numbers and hex
// strings (e.g., "0x08", "08h" or 8).
func (r *CodeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Base     any `json:"base"`
		SubClass any `json:"subClass"`
		Protocol any `json:"protocol"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		in   any
		out  *uint8
	}{
		{"base", raw.Base, &r.Base},
		{"subClass", raw.SubClass, &r.SubClass},
		{"protocol", raw.Protocol, &r.Protocol},
	}
	for _, f := range fields {
		if f.in == nil {
			return fmt.Errorf("%s: missing", f.name)
		}
		v, err := parseByteOrHex(f.in)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = v
	}
	return nil
}

// parseByteOrHex accepts either a JSON number or a string
func parseByteOrHex(v any) (uint8, error) {
	switch val := v.(type) {
	case float64:
		if val < 0 || val > 255 || val != float64(uint8(val)) {
			return 0, fmt.Errorf("value %v out of byte range", val)
		}
		return uint8(val), nil
	case string:
		return ParseByte(val)
	default:
		return 0, fmt.Errorf("expected number or hex string, got %T", v)
	}
}

// ParseByte parses a single class byte. Accepted forms are "0x50", "50h",
// bare hex containing a-f ("fe") and decimal ("80").
func ParseByte(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	digits := s
	base := 10
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		digits, base = s[2:], 16
	case strings.HasSuffix(lower, "h"):
		digits, base = s[:len(s)-1], 16
	case strings.ContainsAny(s, "abcdefABCDEF"):
		base = 16
	}
	parsed, err := strconv.ParseUint(digits, base, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex/numeric byte %q: %w", s, err)
	}
	return uint8(parsed), nil
}

var errCodeFormat = errors.New("expected base/subclass/protocol")

// ParseCode parses a triple written as "08/06/50", "08:06:50" or
// "0x08 0x06 0x50". Slash and colon separated parts are read as hex, like
// lsusb prints them; space separated parts follow [ParseByte].
func ParseCode(s string) (class.Code, error) {
	s = strings.TrimSpace(s)
	var parts []string
	hex := false
	switch {
	case strings.Contains(s, "/"):
		parts, hex = strings.Split(s, "/"), true
	case strings.Contains(s, ":"):
		parts, hex = strings.Split(s, ":"), true
	default:
		parts = strings.Fields(s)
	}
	if len(parts) != 3 {
		return class.Code{}, fmt.Errorf("%q: %w", s, errCodeFormat)
	}

	var b [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		var v uint8
		var err error
		if hex && !strings.HasPrefix(strings.ToLower(p), "0x") && !strings.HasSuffix(strings.ToLower(p), "h") {
			var u uint64
			u, err = strconv.ParseUint(p, 16, 8)
			v = uint8(u)
		} else {
			v, err = ParseByte(p)
		}
		if err != nil {
			return class.Code{}, fmt.Errorf("%q: %w", s, err)
		}
		b[i] = v
	}
	return class.Code{Base: b[0], SubClass: b[1], Protocol: b[2]}, nil
}

// --

// InterfaceReport is the classification of one interface (alternate setting).
type InterfaceReport struct {
	Number    uint8        `json:"number" yaml:"number" toml:"number" cbor:"1,keyasint"`
	Alternate uint8        `json:"alternate" yaml:"alternate" toml:"alternate" cbor:"2,keyasint"`
	Class     *ClassReport `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty" cbor:"3,keyasint,omitempty"`
	Error     *ErrorReport `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty" cbor:"4,keyasint,omitempty"`
}

// InspectReport classifies every class triple of a descriptor set.
type InspectReport struct {
	Name        string            `json:"name" yaml:"name" toml:"name" cbor:"1,keyasint"`
	VendorID    string            `json:"vendorId" yaml:"vendorId" toml:"vendorId" cbor:"2,keyasint"`
	ProductID   string            `json:"productId" yaml:"productId" toml:"productId" cbor:"3,keyasint"`
	Device      *ClassReport      `json:"device,omitempty" yaml:"device,omitempty" toml:"device,omitempty" cbor:"4,keyasint,omitempty"`
	DeviceError *ErrorReport      `json:"deviceError,omitempty" yaml:"deviceError,omitempty" toml:"deviceError,omitempty" cbor:"5,keyasint,omitempty"`
	Interfaces  []InterfaceReport `json:"interfaces" yaml:"interfaces" toml:"interfaces" cbor:"6,keyasint"`
	// Problem is the first validation failure, empty when the descriptor is valid.
	Problem string `json:"problem,omitempty" yaml:"problem,omitempty" toml:"problem,omitempty" cbor:"7,keyasint,omitempty"`
}

// NewInspectReport classifies d. Classification failures are recorded per
// descriptor rather than returned.
func NewInspectReport(name string, d usb.Descriptor) InspectReport {
	r := InspectReport{
		Name:       name,
		VendorID:   fmt.Sprintf("%04x", d.Device.IDVendor),
		ProductID:  fmt.Sprintf("%04x", d.Device.IDProduct),
		Interfaces: make([]InterfaceReport, 0, len(d.Interfaces)),
	}

	if c, err := d.Device.Class(); err != nil {
		e := NewErrorReport(d.Device.ClassCode(), err)
		r.DeviceError = &e
	} else {
		cr := NewClassReport(c)
		r.Device = &cr
	}

	classes, errs := d.InterfaceClasses()
	for i, iface := range d.Interfaces {
		ir := InterfaceReport{Number: iface.Descriptor.BInterfaceNumber, Alternate: iface.Descriptor.BAlternateSetting}
		if errs[i] != nil {
			e := NewErrorReport(iface.Descriptor.ClassCode(), errs[i])
			ir.Error = &e
		} else {
			cr := NewClassReport(classes[i])
			ir.Class = &cr
		}
		r.Interfaces = append(r.Interfaces, ir)
	}

	if err := d.Validate(); err != nil {
		r.Problem = err.Error()
	}
	return r
}

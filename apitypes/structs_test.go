package apitypes_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Alia5/usbclass/apitypes"
	"github.com/Alia5/usbclass/usb/class"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByte(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{"0x50", 0x50, false},
		{"0X50", 0x50, false},
		{"50h", 0x50, false},
		{"fe", 0xfe, false},
		{"80", 80, false},
		{" 255 ", 255, false},
		{"256", 0, true},
		{"0x100", 0, true},
		{"", 0, true},
		{"zz", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := apitypes.ParseByte(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    class.Code
		wantErr bool
	}{
		{"08/06/50", class.Code{Base: 0x08, SubClass: 0x06, Protocol: 0x50}, false},
		{"e0:01:01", class.Code{Base: 0xe0, SubClass: 0x01, Protocol: 0x01}, false},
		{"0x08 6 0x50", class.Code{Base: 0x08, SubClass: 6, Protocol: 0x50}, false},
		{"10/10/10", class.Code{Base: 0x10, SubClass: 0x10, Protocol: 0x10}, false},
		{"08/06", class.Code{}, true},
		{"08/06/500", class.Code{}, true},
		{"", class.Code{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := apitypes.ParseCode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeRequestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    class.Code
		wantErr bool
	}{
		{"numbers", `{"base":8,"subClass":6,"protocol":80}`, class.Code{Base: 8, SubClass: 6, Protocol: 80}, false},
		{"hex strings", `{"base":"0x08","subClass":"06h","protocol":"0x50"}`, class.Code{Base: 8, SubClass: 6, Protocol: 0x50}, false},
		{"missing field", `{"base":8,"subClass":6}`, class.Code{}, true},
		{"out of range", `{"base":300,"subClass":6,"protocol":0}`, class.Code{}, true},
		{"fraction", `{"base":1.5,"subClass":6,"protocol":0}`, class.Code{}, true},
		{"bool", `{"base":true,"subClass":6,"protocol":0}`, class.Code{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r apitypes.CodeRequest
			err := json.Unmarshal([]byte(tt.in), &r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Code())
		})
	}
}

func TestNewClassReport(t *testing.T) {
	r := apitypes.NewClassReport(class.Hub(class.HubFullSpeed))
	assert.Equal(t, apitypes.ClassReport{
		Code:                "09/00/00",
		Base:                0x09,
		Family:              "Hub",
		Description:         "Hub (Full Speed)",
		DeviceDescriptor:    true,
		InterfaceDescriptor: false,
	}, r)
}

func TestNewErrorReport(t *testing.T) {
	code := class.Code{Base: 0x07, SubClass: 0x02, Protocol: 0x01}
	_, err := class.ResolveCode(code)
	require.Error(t, err)

	r := apitypes.NewErrorReport(code, err)
	assert.Equal(t, "07/02/01", r.Code)
	assert.Equal(t, "UnknownSubClass", r.Kind)
	assert.Equal(t, uint8(0x02), r.Offending)
	assert.Equal(t, "07/02/01: unknown subclass code: 0x02 (UnknownSubClass)", r.Error())

	other := apitypes.NewErrorReport(code, errors.New("boom"))
	assert.Empty(t, other.Kind)
	assert.Equal(t, "07/02/01: boom", other.Error())
}

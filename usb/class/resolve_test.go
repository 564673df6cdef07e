package class_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/usbclass/usb/class"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		code     class.Code
		expected class.Class
	}{
		{"device", class.Code{0x00, 0x00, 0x00}, class.Device()},
		{"audio control", class.Code{0x01, 0x01, 0x00}, class.Audio(class.AudioControl)},
		{"audio streaming", class.Code{0x01, 0x02, 0x00}, class.Audio(class.AudioStreaming)},
		{"audio midi", class.Code{0x01, 0x03, 0x00}, class.Audio(class.AudioMIDIStreaming)},
		{"cdc acm v250", class.Code{0x02, 0x02, 0x01}, class.CDCControl(class.CDCAbstract, class.CDCProtocolV250)},
		{"cdc ncm", class.Code{0x02, 0x0D, 0x00}, class.CDCControl(class.CDCNetworkControl, class.CDCProtocolUSB)},
		{"cdc ecm external", class.Code{0x02, 0x06, 0xFE}, class.CDCControl(class.CDCEthernetNetworking, class.CDCProtocolExternal)},
		{"cdc vendor range start", class.Code{0x02, 0x80, 0x00}, class.CDCControl(class.CDCSubClassVendorSpecific, class.CDCProtocolUSB)},
		{"cdc vendor range mid", class.Code{0x02, 0xC3, 0xFF}, class.CDCControl(class.CDCSubClassVendorSpecific, class.CDCProtocolVendorSpecific)},
		{"hid generic", class.Code{0x03, 0x00, 0x00}, class.HumanInterfaceDevice(class.HIDNoSubClass, class.HIDProtocolNone)},
		{"hid boot keyboard", class.Code{0x03, 0x01, 0x01}, class.HumanInterfaceDevice(class.HIDBoot, class.HIDKeyboard)},
		{"hid boot mouse", class.Code{0x03, 0x01, 0x02}, class.HumanInterfaceDevice(class.HIDBoot, class.HIDMouse)},
		{"still imaging", class.Code{0x06, 0x01, 0x01}, class.StillImaging()},
		{"printer unidirectional", class.Code{0x07, 0x01, 0x01}, class.Printer(class.PrinterUnidirectional)},
		{"printer bidirectional", class.Code{0x07, 0x01, 0x02}, class.Printer(class.PrinterBidirectional)},
		{"printer 1284.4", class.Code{0x07, 0x01, 0x03}, class.Printer(class.PrinterBidirectional1284)},
		{"printer vendor", class.Code{0x07, 0x01, 0xFF}, class.Printer(class.PrinterVendorSpecific)},
		{"mass storage scsi bot", class.Code{0x08, 0x06, 0x50}, class.MassStorage(class.MassStorageSCSI, class.MassStorageBulkOnly)},
		{"mass storage scsi uas", class.Code{0x08, 0x06, 0x62}, class.MassStorage(class.MassStorageSCSI, class.MassStorageUAS)},
		{"mass storage ufi cbi", class.Code{0x08, 0x04, 0x00}, class.MassStorage(class.MassStorageUFI, class.MassStorageCBIInterrupt)},
		{"mass storage vendor", class.Code{0x08, 0xFF, 0xFF}, class.MassStorage(class.MassStorageSubClassVendorSpecific, class.MassStorageProtocolVendorSpecific)},
		{"hub", class.Code{0x09, 0x00, 0x00}, class.Hub(class.HubFullSpeed)},
		{"cdc data usb", class.Code{0x0A, 0x00, 0x00}, class.CDCData(class.CDCDataUSB)},
		{"cdc data ntb", class.Code{0x0A, 0x00, 0x01}, class.CDCData(class.CDCDataNTB)},
		{"cdc data host based", class.Code{0x0A, 0x00, 0xFD}, class.CDCData(class.CDCDataHostBased)},
		{"smart card bulk", class.Code{0x0B, 0x00, 0x00}, class.SmartCard(class.SmartCardBulk)},
		{"smart card control", class.Code{0x0B, 0x00, 0x02}, class.SmartCard(class.SmartCardControlInterrupt)},
		{"content security", class.Code{0x0D, 0x00, 0x00}, class.ContentSecurity()},
		{"video control", class.Code{0x0E, 0x01, 0x01}, class.Video(class.VideoControl)},
		{"video collection", class.Code{0x0E, 0x03, 0x01}, class.Video(class.VideoInterfaceCollection)},
		{"av control", class.Code{0x10, 0x01, 0x00}, class.AudioVideo(class.AVControl)},
		{"av audio streaming", class.Code{0x10, 0x03, 0x00}, class.AudioVideo(class.AVAudioStreaming)},
		{"billboard", class.Code{0x11, 0x00, 0x00}, class.Billboard()},
		{"type-c bridge", class.Code{0x12, 0x00, 0x00}, class.TypeCBridge()},
		{"i3c", class.Code{0x3C, 0x00, 0x00}, class.I3CDevice()},
		{"vendor specific", class.Code{0xFF, 0x12, 0x34}, class.VendorSpecific(0x12, 0x34)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := class.Resolve(tt.code.Base, tt.code.SubClass, tt.code.Protocol)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, class.BaseClass(tt.code.Base), c.Base())
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     class.Code
		kind     class.ErrorKind
		sentinel error
		culprit  uint8
	}{
		{"device bad protocol", class.Code{0x00, 0x00, 0x01}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x01},
		{"device bad subclass", class.Code{0x00, 0x01, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x01},
		{"device subclass checked first", class.Code{0x00, 0x07, 0x09}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x07},
		{"unassigned base", class.Code{0x04, 0x00, 0x00}, class.UnknownClass, class.ErrUnknownClass, 0x04},
		{"unassigned base 0x13", class.Code{0x13, 0x00, 0x00}, class.UnknownClass, class.ErrUnknownClass, 0x13},
		{"audio undefined subclass", class.Code{0x01, 0x00, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x00},
		{"audio bad protocol", class.Code{0x01, 0x01, 0x20}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x20},
		{"cdc below vendor range", class.Code{0x02, 0x7F, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x7F},
		{"cdc zero subclass", class.Code{0x02, 0x00, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x00},
		{"cdc first unassigned model", class.Code{0x02, 0x0E, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x0E},
		{"cdc bad protocol", class.Code{0x02, 0x02, 0x08}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x08},
		{"hid bad subclass", class.Code{0x03, 0x02, 0x01}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x02},
		{"hid bad protocol", class.Code{0x03, 0x01, 0x03}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x03},
		{"still imaging bad subclass", class.Code{0x06, 0x00, 0x01}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x00},
		{"still imaging bad protocol", class.Code{0x06, 0x01, 0x00}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x00},
		{"printer bad subclass", class.Code{0x07, 0x02, 0x01}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x02},
		{"printer bad protocol", class.Code{0x07, 0x01, 0x04}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x04},
		{"mass storage bad subclass", class.Code{0x08, 0x03, 0x50}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x03},
		{"mass storage bad protocol", class.Code{0x08, 0x06, 0x51}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x51},
		{"mass storage both bad", class.Code{0x08, 0x05, 0x51}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x05},
		{"hub bad subclass", class.Code{0x09, 0x01, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x01},
		{"cdc data bad subclass", class.Code{0x0A, 0x01, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x01},
		{"cdc data bad protocol", class.Code{0x0A, 0x00, 0x02}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x02},
		{"smart card bad protocol", class.Code{0x0B, 0x00, 0x03}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x03},
		{"content security bad protocol", class.Code{0x0D, 0x00, 0x01}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x01},
		{"video bad protocol", class.Code{0x0E, 0x01, 0x00}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x00},
		{"video bad subclass", class.Code{0x0E, 0x04, 0x01}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x04},
		{"av bad protocol", class.Code{0x10, 0x02, 0x01}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x01},
		{"billboard bad subclass", class.Code{0x11, 0x01, 0x00}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x01},
		{"type-c bad protocol", class.Code{0x12, 0x00, 0x01}, class.UnknownProtocol, class.ErrUnknownProtocol, 0x01},
		{"i3c bad subclass", class.Code{0x3C, 0x01, 0x01}, class.UnknownSubClass, class.ErrUnknownSubClass, 0x01},
		{"physical", class.Code{0x05, 0x00, 0x00}, class.Unimplemented, class.ErrUnimplemented, 0x05},
		{"personal healthcare", class.Code{0x0F, 0x00, 0x00}, class.Unimplemented, class.ErrUnimplemented, 0x0F},
		{"diagnostic", class.Code{0xDC, 0x01, 0x01}, class.Unimplemented, class.ErrUnimplemented, 0xDC},
		{"wireless bluetooth", class.Code{0xE0, 0x01, 0x01}, class.Unimplemented, class.ErrUnimplemented, 0xE0},
		{"miscellaneous iad", class.Code{0xEF, 0x02, 0x01}, class.Unimplemented, class.ErrUnimplemented, 0xEF},
		{"application dfu", class.Code{0xFE, 0x01, 0x01}, class.Unimplemented, class.ErrUnimplemented, 0xFE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := class.ResolveCode(tt.code)
			require.Error(t, err)
			assert.Equal(t, class.Class{}, c)
			assert.ErrorIs(t, err, tt.sentinel)

			var e *class.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.culprit, e.Code)

			kind, code, ok := class.KindOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.culprit, code)
		})
	}
}

func TestUnimplementedIsNotUnknownClass(t *testing.T) {
	_, err := class.Resolve(0xEF, 0x02, 0x01)
	require.Error(t, err)
	assert.False(t, errors.Is(err, class.ErrUnknownClass))
	assert.True(t, errors.Is(err, class.ErrUnimplemented))
}

func TestResolveVendorSpecificIsTotal(t *testing.T) {
	for sub := 0; sub <= 0xFF; sub++ {
		for proto := 0; proto <= 0xFF; proto++ {
			c, err := class.Resolve(0xFF, uint8(sub), uint8(proto))
			if err != nil {
				t.Fatalf("vendor specific %02x/%02x failed: %v", sub, proto, err)
			}
			if c != class.VendorSpecific(uint8(sub), uint8(proto)) {
				t.Fatalf("vendor specific %02x/%02x resolved to %v", sub, proto, c)
			}
		}
	}
}

func TestResolveCDCControlVendorRange(t *testing.T) {
	protocols := []class.CDCControlProtocol{
		class.CDCProtocolUSB, class.CDCProtocolV250, class.CDCProtocolPCCA101,
		class.CDCProtocolPCCA101AnnexO, class.CDCProtocolGSM, class.CDCProtocol3GPP,
		class.CDCProtocolCDMA, class.CDCProtocolEEM, class.CDCProtocolExternal,
		class.CDCProtocolVendorSpecific,
	}
	for sub := 0x80; sub <= 0xFF; sub++ {
		for _, p := range protocols {
			c, err := class.Resolve(0x02, uint8(sub), p.Encode())
			require.NoError(t, err)
			s, ok := class.Payload[class.CDCControlSubClass](c)
			require.True(t, ok)
			assert.Equal(t, class.CDCSubClassVendorSpecific, s)
		}
	}
	for sub := 0x0E; sub < 0x80; sub++ {
		_, err := class.Resolve(0x02, uint8(sub), 0x00)
		assert.ErrorIs(t, err, class.ErrUnknownSubClass, "subclass 0x%02x", sub)
	}
}

// The hub protocol table this package was built from maps full speed, high
// speed single TT and high speed multiple TT hubs onto protocol 0x00, which
// leaves the two high speed variants unreachable. The USB 2.0 specification
// assigns them 0x01 and 0x02. This test pins the current behaviour and is
// suspect until the assignment is confirmed.
func TestResolveHubSpeedSuspect(t *testing.T) {
	c, err := class.Resolve(0x09, 0x00, 0x00)
	require.NoError(t, err)
	assert.Equal(t, class.Hub(class.HubFullSpeed), c)

	for _, proto := range []uint8{0x01, 0x02, 0x03} {
		_, err := class.Resolve(0x09, 0x00, proto)
		var e *class.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, class.UnknownProtocol, e.Kind)
		assert.Equal(t, proto, e.Code)
	}

	// The leaf table itself knows all three speeds.
	s, err := class.Decode[class.HubSpeed](0x02)
	require.NoError(t, err)
	assert.Equal(t, class.HubHighSpeedMultipleTT, s)
}

func TestResolveIsDeterministic(t *testing.T) {
	codes := []class.Code{
		{0x00, 0x00, 0x00}, {0x08, 0x06, 0x50}, {0x02, 0x80, 0x01},
		{0x04, 0x00, 0x00}, {0xEF, 0x02, 0x01}, {0xFF, 0x12, 0x34},
		{0x0A, 0x00, 0x31}, {0x00, 0x00, 0x01},
	}
	type result struct {
		c   class.Class
		err error
	}
	want := make([]result, len(codes))
	for i, code := range codes {
		c, err := class.ResolveCode(code)
		want[i] = result{c, err}
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				for i := len(codes) - 1; i >= 0; i-- {
					c, err := class.ResolveCode(codes[i])
					assert.Equal(t, want[i].c, c)
					assert.Equal(t, want[i].err, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestResolveDoesNotAllocate(t *testing.T) {
	codes := []class.Code{
		{0x08, 0x06, 0x50}, {0x02, 0x90, 0xFF}, {0x00, 0x00, 0x01},
		{0x04, 0x00, 0x00}, {0xDC, 0x00, 0x00}, {0x03, 0x01, 0x07},
	}
	allocs := testing.AllocsPerRun(100, func() {
		for _, code := range codes {
			_, _ = class.Resolve(code.Base, code.SubClass, code.Protocol)
		}
	})
	assert.Zero(t, allocs)
}

func TestKnown(t *testing.T) {
	known := class.Known()
	assert.Len(t, known, 223)

	seen := map[class.Code]bool{}
	for i, c := range known {
		code := c.Code()
		assert.False(t, seen[code], "duplicate %s", code)
		seen[code] = true

		again, err := class.ResolveCode(code)
		require.NoError(t, err)
		assert.Equal(t, c, again)

		if i > 0 {
			prev := known[i-1].Code()
			assert.Less(t, codeKey(prev), codeKey(code))
		}
	}
	assert.True(t, seen[class.Code{0x08, 0x06, 0x50}])
	assert.True(t, seen[class.Code{0x02, 0xFF, 0x00}])
	assert.False(t, seen[class.Code{0x02, 0x80, 0x00}])
}

func codeKey(c class.Code) int {
	return int(c.Base)<<16 | int(c.SubClass)<<8 | int(c.Protocol)
}

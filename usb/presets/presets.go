// Package presets holds descriptors of well known input devices. They are
// used as fixtures for descriptor validation and by the inspect command.
package presets

import (
	"bytes"
	"sort"

	"github.com/Alia5/usbclass/usb"
	"github.com/Alia5/usbclass/usb/class"
)

var registry = map[string]func() usb.Descriptor{
	"keyboard":   Keyboard,
	"mouse":      Mouse,
	"xbox360":    Xbox360,
	"dualshock4": DualShock4,
	"steamdeck":  SteamDeck,
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (usb.Descriptor, bool) {
	f, ok := registry[name]
	if !ok {
		return usb.Descriptor{}, false
	}
	return f(), true
}

func hidInterface(num, ep uint8, c class.Class, maxPacket uint16, interval uint8) usb.InterfaceConfig {
	iface := usb.InterfaceConfig{
		Descriptor: usb.InterfaceDescriptor{
			BInterfaceNumber: num,
			BNumEndpoints:    1,
		},
		Endpoints: []usb.EndpointDescriptor{
			{BEndpointAddress: ep, BMAttributes: 0x03, WMaxPacketSize: maxPacket, BInterval: interval},
		},
	}
	iface.Descriptor.SetClass(c)
	return iface
}

// Keyboard is a full N-key rollover keyboard on a generic HID interface.
func Keyboard() usb.Descriptor {
	iface := hidInterface(0, 0x81, class.HumanInterfaceDevice(class.HIDNoSubClass, class.HIDProtocolNone), 0x0040, 0x05)
	iface.Descriptor.BNumEndpoints = 2
	iface.Endpoints = append(iface.Endpoints, usb.EndpointDescriptor{
		BEndpointAddress: 0x01, BMAttributes: 0x03, WMaxPacketSize: 0x0008, BInterval: 0x05,
	})
	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BMaxPacketSize0:    0x40,
			IDVendor:           0x2E8A,
			IDProduct:          0x0010,
			BcdDevice:          0x0100,
			IManufacturer:      0x01,
			IProduct:           0x02,
			ISerialNumber:      0x03,
			BNumConfigurations: 0x01,
		},
		Config:     defaultConfig(),
		Interfaces: []usb.InterfaceConfig{iface},
		Strings:    map[uint8]string{1: "usbclass", 2: "HID Keyboard", 3: "1337"},
	}
}

// Mouse is a boot protocol mouse.
func Mouse() usb.Descriptor {
	iface := hidInterface(0, 0x81, class.HumanInterfaceDevice(class.HIDBoot, class.HIDMouse), 0x0008, 0x0A)
	var hid bytes.Buffer
	usb.HIDDescriptor{
		BcdHID:            0x0111,
		BNumDescriptors:   1,
		ClassDescType:     usb.ReportDescType,
		WDescriptorLength: mouseReportLen,
	}.Write(&hid)
	iface.HIDDescriptor = hid.Bytes()
	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BMaxPacketSize0:    0x40,
			IDVendor:           0x2E8A,
			IDProduct:          0x0011,
			BcdDevice:          0x0100,
			IManufacturer:      0x01,
			IProduct:           0x02,
			ISerialNumber:      0x03,
			BNumConfigurations: 0x01,
		},
		Config:     defaultConfig(),
		Interfaces: []usb.InterfaceConfig{iface},
		Strings:    map[uint8]string{1: "usbclass", 2: "HID Mouse", 3: "1337"},
	}
}

// mouseReportLen is the length of a five button mouse report descriptor with
// wheel and AC pan.
const mouseReportLen = 67

// Xbox360 is a wired Xbox 360 controller. Everything is vendor specific,
// including the device class.
func Xbox360() usb.Descriptor {
	vendor := func(num, sub, proto, str uint8, eps ...usb.EndpointDescriptor) usb.InterfaceConfig {
		iface := usb.InterfaceConfig{
			Descriptor: usb.InterfaceDescriptor{
				BInterfaceNumber: num,
				BNumEndpoints:    uint8(len(eps)),
				IInterface:       str,
			},
			Endpoints: eps,
		}
		iface.Descriptor.SetClass(class.VendorSpecific(sub, proto))
		return iface
	}
	interrupt := func(addr, interval uint8) usb.EndpointDescriptor {
		return usb.EndpointDescriptor{BEndpointAddress: addr, BMAttributes: 0x03, WMaxPacketSize: 0x0020, BInterval: interval}
	}

	gamepad := vendor(0x00, 0x5d, 0x01, 0, interrupt(0x81, 0x04), interrupt(0x01, 0x08))
	gamepad.VendorData = []byte{0x11, 0x21, 0x00, 0x01, 0x01, 0x25, 0x81, 0x14, 0x00, 0x00, 0x00, 0x00, 0x13, 0x01, 0x08, 0x00, 0x00}
	headset := vendor(0x01, 0x5d, 0x03, 0,
		interrupt(0x82, 0x02), interrupt(0x02, 0x04), interrupt(0x83, 0x40), interrupt(0x03, 0x10))
	plugin := vendor(0x02, 0x5d, 0x02, 0, interrupt(0x84, 0x10))
	security := vendor(0x03, 0xfd, 0x13, 0x04)
	security.VendorData = []byte{0x06, 0x41, 0x00, 0x01, 0x01, 0x03}

	d := usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BMaxPacketSize0:    0x08,
			IDVendor:           0x045e,
			IDProduct:          0x028e,
			BcdDevice:          0x0114,
			IManufacturer:      0x01,
			IProduct:           0x02,
			ISerialNumber:      0x03,
			BNumConfigurations: 0x01,
		},
		Config:     defaultConfig(),
		Interfaces: []usb.InterfaceConfig{gamepad, headset, plugin, security},
		Strings:    map[uint8]string{1: "Microsoft Corporation", 2: "Controller", 3: "296013F"},
	}
	d.Device.SetClass(class.VendorSpecific(0xff, 0xff))
	return d
}

// DualShock4 is a first revision DualShock 4 on USB.
func DualShock4() usb.Descriptor {
	iface := hidInterface(0, 0x84, class.HumanInterfaceDevice(class.HIDNoSubClass, class.HIDProtocolNone), 64, 5)
	iface.Descriptor.BNumEndpoints = 2
	iface.Endpoints = append(iface.Endpoints, usb.EndpointDescriptor{
		BEndpointAddress: 0x03, BMAttributes: 0x03, WMaxPacketSize: 64, BInterval: 5,
	})
	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BMaxPacketSize0:    0x40,
			IDVendor:           0x054C,
			IDProduct:          0x05C4,
			BcdDevice:          0x0100,
			IManufacturer:      0x01,
			IProduct:           0x02,
			BNumConfigurations: 0x01,
		},
		Config:     defaultConfig(),
		Interfaces: []usb.InterfaceConfig{iface},
		Strings:    map[uint8]string{1: "Sony Interactive Entertainment", 2: "Wireless Controller"},
	}
}

// SteamDeck is the Steam Deck built-in controller: boot keyboard and mouse
// interfaces for lizard mode plus the vendor report interface.
func SteamDeck() usb.Descriptor {
	return usb.Descriptor{
		Device: usb.DeviceDescriptor{
			BcdUSB:             0x0200,
			BMaxPacketSize0:    0x40,
			IDVendor:           0x28DE,
			IDProduct:          0x1205,
			BcdDevice:          0x0200,
			IManufacturer:      0x01,
			IProduct:           0x02,
			ISerialNumber:      0x03,
			BNumConfigurations: 0x01,
		},
		Config: defaultConfig(),
		Interfaces: []usb.InterfaceConfig{
			hidInterface(0, 0x82, class.HumanInterfaceDevice(class.HIDBoot, class.HIDKeyboard), 0x0008, 0x0A),
			hidInterface(1, 0x83, class.HumanInterfaceDevice(class.HIDBoot, class.HIDMouse), 0x0004, 0x0A),
			hidInterface(2, 0x81, class.HumanInterfaceDevice(class.HIDNoSubClass, class.HIDProtocolNone), 0x0040, 0x01),
		},
		Strings: map[uint8]string{1: "Valve Software", 2: "Steam Deck Controller", 3: "Jupiter"},
	}
}

func defaultConfig() usb.ConfigHeader {
	return usb.ConfigHeader{BConfigurationValue: 1, BMAttributes: 0x80, BMaxPower: 50}
}

// Package usb contains USB descriptor layouts and their class information.
package usb

import (
	"bytes"
	"encoding/binary"

	"github.com/Alia5/usbclass/usb/class"
)

// USB descriptor type constants
const (
	DeviceDescType    = 0x01
	ConfigDescType    = 0x02
	StringDescType    = 0x03
	InterfaceDescType = 0x04
	EndpointDescType  = 0x05
	HIDDescType       = 0x21
	ReportDescType    = 0x22
)

// Descriptor lengths in bytes (fixed values from USB spec)
const (
	DeviceDescLen    = 18
	ConfigDescLen    = 9
	InterfaceDescLen = 9
	EndpointDescLen  = 7
	HIDDescLen       = 9
)

// Descriptor groups a device descriptor with the interfaces of its single
// configuration.
type Descriptor struct {
	Device     DeviceDescriptor
	Config     ConfigHeader
	Interfaces []InterfaceConfig
	Strings    map[uint8]string
}

// InterfaceConfig holds all descriptors for a single interface.
type InterfaceConfig struct {
	Descriptor    InterfaceDescriptor
	Endpoints     []EndpointDescriptor
	HIDDescriptor []byte // optional HID class descriptor (0x21)
	VendorData    []byte // optional class or vendor specific bytes
}

// EncodeStringDescriptor converts a UTF-8 string to a USB string descriptor byte array.
// The resulting descriptor has the format:
//
//	Byte 0: bLength (total descriptor length)
//	Byte 1: bDescriptorType (0x03 for string)
//	Bytes 2+: UTF-16LE encoded string
func EncodeStringDescriptor(s string) []byte {
	runes := []rune(s)
	buf := make([]byte, 2+len(runes)*2)
	buf[0] = uint8(len(buf))
	buf[1] = StringDescType
	for i, r := range runes {
		buf[2+i*2] = uint8(r)
		buf[2+i*2+1] = uint8(r >> 8)
	}
	return buf
}

// DeviceDescriptor is the standard USB device descriptor (USB 3.2 §9.6.1).
// BLength and BDescriptorType are implied.
type DeviceDescriptor struct {
	BcdUSB             uint16 // LE
	BDeviceClass       uint8
	BDeviceSubClass    uint8
	BDeviceProtocol    uint8
	BMaxPacketSize0    uint8
	IDVendor           uint16 // LE
	IDProduct          uint16 // LE
	BcdDevice          uint16 // LE
	IManufacturer      uint8
	IProduct           uint8
	ISerialNumber      uint8
	BNumConfigurations uint8
}

// ClassCode returns the raw class triple of the device.
func (d DeviceDescriptor) ClassCode() class.Code {
	return class.Code{Base: d.BDeviceClass, SubClass: d.BDeviceSubClass, Protocol: d.BDeviceProtocol}
}

// Class resolves the device class triple.
func (d DeviceDescriptor) Class() (class.Class, error) {
	return class.Resolve(d.BDeviceClass, d.BDeviceSubClass, d.BDeviceProtocol)
}

// SetClass stores the canonical encoding of c in the class fields.
func (d *DeviceDescriptor) SetClass(c class.Class) {
	code := c.Code()
	d.BDeviceClass, d.BDeviceSubClass, d.BDeviceProtocol = code.Base, code.SubClass, code.Protocol
}

// Bytes returns the binary representation of the DeviceDescriptor with BLength auto-filled.
func (d DeviceDescriptor) Bytes() []byte {
	var b bytes.Buffer
	b.WriteByte(DeviceDescLen)
	b.WriteByte(DeviceDescType)
	_ = binary.Write(&b, binary.LittleEndian, d.BcdUSB)
	b.WriteByte(d.BDeviceClass)
	b.WriteByte(d.BDeviceSubClass)
	b.WriteByte(d.BDeviceProtocol)
	b.WriteByte(d.BMaxPacketSize0)
	_ = binary.Write(&b, binary.LittleEndian, d.IDVendor)
	_ = binary.Write(&b, binary.LittleEndian, d.IDProduct)
	_ = binary.Write(&b, binary.LittleEndian, d.BcdDevice)
	b.WriteByte(d.IManufacturer)
	b.WriteByte(d.IProduct)
	b.WriteByte(d.ISerialNumber)
	b.WriteByte(d.BNumConfigurations)
	return b.Bytes()
}

// ConfigHeader represents the USB configuration descriptor header (9 bytes).
type ConfigHeader struct {
	WTotalLength        uint16 // LE, patched by ConfigBytes
	BNumInterfaces      uint8
	BConfigurationValue uint8
	IConfiguration      uint8
	BMAttributes        uint8
	BMaxPower           uint8
}

func (h ConfigHeader) Write(b *bytes.Buffer) {
	b.WriteByte(ConfigDescLen)
	b.WriteByte(ConfigDescType)
	_ = binary.Write(b, binary.LittleEndian, h.WTotalLength)
	b.WriteByte(h.BNumInterfaces)
	b.WriteByte(h.BConfigurationValue)
	b.WriteByte(h.IConfiguration)
	b.WriteByte(h.BMAttributes)
	b.WriteByte(h.BMaxPower)
}

// InterfaceDescriptor (9 bytes) for each interface altsetting.
type InterfaceDescriptor struct {
	BInterfaceNumber   uint8
	BAlternateSetting  uint8
	BNumEndpoints      uint8
	BInterfaceClass    uint8
	BInterfaceSubClass uint8
	BInterfaceProtocol uint8
	IInterface         uint8
}

// ClassCode returns the raw class triple of the interface.
func (i InterfaceDescriptor) ClassCode() class.Code {
	return class.Code{Base: i.BInterfaceClass, SubClass: i.BInterfaceSubClass, Protocol: i.BInterfaceProtocol}
}

// Class resolves the interface class triple.
func (i InterfaceDescriptor) Class() (class.Class, error) {
	return class.Resolve(i.BInterfaceClass, i.BInterfaceSubClass, i.BInterfaceProtocol)
}

// SetClass stores the canonical encoding of c in the class fields.
func (i *InterfaceDescriptor) SetClass(c class.Class) {
	code := c.Code()
	i.BInterfaceClass, i.BInterfaceSubClass, i.BInterfaceProtocol = code.Base, code.SubClass, code.Protocol
}

func (i InterfaceDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(InterfaceDescLen)
	b.WriteByte(InterfaceDescType)
	b.WriteByte(i.BInterfaceNumber)
	b.WriteByte(i.BAlternateSetting)
	b.WriteByte(i.BNumEndpoints)
	b.WriteByte(i.BInterfaceClass)
	b.WriteByte(i.BInterfaceSubClass)
	b.WriteByte(i.BInterfaceProtocol)
	b.WriteByte(i.IInterface)
}

// EndpointDescriptor (7 bytes) for each endpoint.
type EndpointDescriptor struct {
	BEndpointAddress uint8
	BMAttributes     uint8
	WMaxPacketSize   uint16 // LE
	BInterval        uint8
}

func (e EndpointDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(EndpointDescLen)
	b.WriteByte(EndpointDescType)
	b.WriteByte(e.BEndpointAddress)
	b.WriteByte(e.BMAttributes)
	_ = binary.Write(b, binary.LittleEndian, e.WMaxPacketSize)
	b.WriteByte(e.BInterval)
}

// HIDDescriptor (class descriptor, 0x21) with one subordinate report descriptor (0x22).
type HIDDescriptor struct {
	BcdHID            uint16 // LE
	BCountryCode      uint8
	BNumDescriptors   uint8
	ClassDescType     uint8  // 0x22 (report)
	WDescriptorLength uint16 // LE, report descriptor length
}

func (h HIDDescriptor) Write(b *bytes.Buffer) {
	b.WriteByte(HIDDescLen)
	b.WriteByte(HIDDescType)
	_ = binary.Write(b, binary.LittleEndian, h.BcdHID)
	b.WriteByte(h.BCountryCode)
	b.WriteByte(h.BNumDescriptors)
	b.WriteByte(h.ClassDescType)
	_ = binary.Write(b, binary.LittleEndian, h.WDescriptorLength)
}

// Bytes returns the encoded device descriptor.
func (d Descriptor) Bytes() []byte {
	return d.Device.Bytes()
}

// ConfigBytes returns the full configuration descriptor: header, then each
// interface followed by its HID/class data and endpoints. WTotalLength and
// BNumInterfaces are filled in.
func (d Descriptor) ConfigBytes() []byte {
	var body bytes.Buffer
	for _, iface := range d.Interfaces {
		iface.Descriptor.Write(&body)
		body.Write(iface.HIDDescriptor)
		body.Write(iface.VendorData)
		for _, ep := range iface.Endpoints {
			ep.Write(&body)
		}
	}

	h := d.Config
	h.WTotalLength = uint16(ConfigDescLen + body.Len())
	h.BNumInterfaces = uint8(countInterfaces(d.Interfaces))

	var b bytes.Buffer
	h.Write(&b)
	b.Write(body.Bytes())
	return b.Bytes()
}

// countInterfaces counts interface numbers, not alternate settings.
func countInterfaces(ifs []InterfaceConfig) int {
	seen := map[uint8]struct{}{}
	for _, i := range ifs {
		seen[i.Descriptor.BInterfaceNumber] = struct{}{}
	}
	return len(seen)
}

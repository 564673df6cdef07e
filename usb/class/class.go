package class

import "fmt"

// Code is a raw (base class, subclass, protocol) triple as found in a device
// or interface descriptor.
type Code struct {
	Base     uint8
	SubClass uint8
	Protocol uint8
}

func (c Code) String() string {
	return fmt.Sprintf("%02x/%02x/%02x", c.Base, c.SubClass, c.Protocol)
}

// Class identifies what a device or interface is. It holds one variant per
// USB-IF base class; the variant's subclass and protocol payloads are kept in
// their canonical byte form. Class values are comparable and the zero value
// is [Device].
//
// Build variants with the constructor named after them (Audio, MassStorage,
// VendorSpecific, ...) and read typed payloads back with [Payload].
type Class struct {
	base     BaseClass
	subclass uint8
	protocol uint8
}

// Base returns the variant tag.
func (c Class) Base() BaseClass { return c.base }

// SubClass returns the canonical subclass byte.
func (c Class) SubClass() uint8 { return c.subclass }

// Protocol returns the canonical protocol byte.
func (c Class) Protocol() uint8 { return c.protocol }

// Code returns the canonical byte encoding of c. Resolving it yields c
// again for every Class produced by [Resolve].
func (c Class) Code() Code {
	return Code{Base: uint8(c.base), SubClass: c.subclass, Protocol: c.protocol}
}

func (c Class) String() string {
	name := c.base.String()
	switch c.base {
	case BaseDevice, BaseStillImaging, BaseContentSecurity,
		BaseBillboard, BaseTypeCBridge, BaseI3CDevice:
		return name
	case BaseAudio:
		return fmt.Sprintf("%s (%s)", name, AudioSubClass(c.subclass))
	case BaseCDCControl:
		return fmt.Sprintf("%s (%s, %s)", name, CDCControlSubClass(c.subclass), CDCControlProtocol(c.protocol))
	case BaseHID:
		return fmt.Sprintf("%s (%s, %s)", name, HIDSubClass(c.subclass), HIDProtocol(c.protocol))
	case BasePrinter:
		return fmt.Sprintf("%s (%s)", name, PrinterProtocol(c.protocol))
	case BaseMassStorage:
		return fmt.Sprintf("%s (%s, %s)", name, MassStorageSubClass(c.subclass), MassStorageProtocol(c.protocol))
	case BaseHub:
		return fmt.Sprintf("%s (%s)", name, HubSpeed(c.protocol))
	case BaseCDCData:
		return fmt.Sprintf("%s (%s)", name, CDCDataProtocol(c.protocol))
	case BaseSmartCard:
		return fmt.Sprintf("%s (%s)", name, SmartCardProtocol(c.protocol))
	case BaseVideo:
		return fmt.Sprintf("%s (%s)", name, VideoSubClass(c.subclass))
	case BaseAudioVideo:
		return fmt.Sprintf("%s (%s)", name, AVSubClass(c.subclass))
	default:
		return fmt.Sprintf("%s (0x%02x, 0x%02x)", name, c.subclass, c.protocol)
	}
}

// Device means the class is defined per interface.
func Device() Class { return Class{base: BaseDevice} }

func Audio(s AudioSubClass) Class {
	return Class{base: BaseAudio, subclass: s.Encode()}
}

func CDCControl(s CDCControlSubClass, p CDCControlProtocol) Class {
	return Class{base: BaseCDCControl, subclass: s.Encode(), protocol: p.Encode()}
}

func HumanInterfaceDevice(s HIDSubClass, p HIDProtocol) Class {
	return Class{base: BaseHID, subclass: s.Encode(), protocol: p.Encode()}
}

func StillImaging() Class {
	return Class{base: BaseStillImaging, subclass: 0x01, protocol: StillImagePTP.Encode()}
}

func Printer(p PrinterProtocol) Class {
	return Class{base: BasePrinter, subclass: 0x01, protocol: p.Encode()}
}

func MassStorage(s MassStorageSubClass, p MassStorageProtocol) Class {
	return Class{base: BaseMassStorage, subclass: s.Encode(), protocol: p.Encode()}
}

func Hub(p HubSpeed) Class {
	return Class{base: BaseHub, protocol: p.Encode()}
}

func CDCData(p CDCDataProtocol) Class {
	return Class{base: BaseCDCData, protocol: p.Encode()}
}

func SmartCard(p SmartCardProtocol) Class {
	return Class{base: BaseSmartCard, protocol: p.Encode()}
}

func ContentSecurity() Class { return Class{base: BaseContentSecurity} }

func Video(s VideoSubClass) Class {
	return Class{base: BaseVideo, subclass: s.Encode(), protocol: VideoProtocol15.Encode()}
}

func AudioVideo(s AVSubClass) Class {
	return Class{base: BaseAudioVideo, subclass: s.Encode()}
}

func Billboard() Class   { return Class{base: BaseBillboard} }
func TypeCBridge() Class { return Class{base: BaseTypeCBridge} }
func I3CDevice() Class   { return Class{base: BaseI3CDevice} }

// VendorSpecific carries its subclass and protocol verbatim.
func VendorSpecific(sub, proto uint8) Class {
	return Class{base: BaseVendorSpecific, subclass: sub, protocol: proto}
}

// The following classes are assigned by the USB-IF but their sub-tables are
// not modelled; they carry raw bytes and Resolve never returns them.

func Physical(sub, proto uint8) Class {
	return Class{base: BasePhysical, subclass: sub, protocol: proto}
}

func PersonalHealthcare(sub, proto uint8) Class {
	return Class{base: BasePersonalHealthcare, subclass: sub, protocol: proto}
}

func Diagnostic(sub, proto uint8) Class {
	return Class{base: BaseDiagnostic, subclass: sub, protocol: proto}
}

func Wireless(sub, proto uint8) Class {
	return Class{base: BaseWireless, subclass: sub, protocol: proto}
}

func Miscellaneous(sub, proto uint8) Class {
	return Class{base: BaseMiscellaneous, subclass: sub, protocol: proto}
}

func ApplicationSpecific(sub, proto uint8) Class {
	return Class{base: BaseApplicationSpecific, subclass: sub, protocol: proto}
}

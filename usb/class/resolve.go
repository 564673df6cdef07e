package class

import "sync"

// Resolve classifies a (base class, subclass, protocol) triple.
//
// On failure the error is an [*Error] carrying the byte that did not decode:
// the subclass is checked before the protocol, and a failing leaf decoder's
// error is returned unchanged. Assigned classes whose sub-tables are not
// modelled fail with [Unimplemented]; bytes missing from the base class table
// fail with [UnknownClass].
func Resolve(base, sub, proto uint8) (Class, error) {
	switch b := BaseClass(base); b {
	case BaseDevice, BaseContentSecurity, BaseBillboard, BaseTypeCBridge, BaseI3CDevice:
		return single(b, 0x00, 0x00, sub, proto)

	case BaseStillImaging:
		return single(b, 0x01, StillImagePTP.Encode(), sub, proto)

	case BaseAudio:
		s, err := Decode[AudioSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		if proto != 0x00 {
			return Class{}, newError(UnknownProtocol, proto)
		}
		return Audio(s), nil

	case BaseAudioVideo:
		s, err := Decode[AVSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		if proto != 0x00 {
			return Class{}, newError(UnknownProtocol, proto)
		}
		return AudioVideo(s), nil

	case BaseVideo:
		s, err := Decode[VideoSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		if _, err := Decode[VideoProtocol](proto); err != nil {
			return Class{}, err
		}
		return Video(s), nil

	case BasePrinter:
		if sub != 0x01 {
			return Class{}, newError(UnknownSubClass, sub)
		}
		p, err := Decode[PrinterProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return Printer(p), nil

	case BaseHub:
		if sub != 0x00 {
			return Class{}, newError(UnknownSubClass, sub)
		}
		// Only full speed is reachable: the high speed variants share its
		// protocol byte in the hub table this package follows. Left as is until the hub
		// protocol assignments are confirmed.
		if proto != 0x00 {
			return Class{}, newError(UnknownProtocol, proto)
		}
		return Hub(HubFullSpeed), nil

	case BaseCDCData:
		if sub != 0x00 {
			return Class{}, newError(UnknownSubClass, sub)
		}
		p, err := Decode[CDCDataProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return CDCData(p), nil

	case BaseSmartCard:
		if sub != 0x00 {
			return Class{}, newError(UnknownSubClass, sub)
		}
		p, err := Decode[SmartCardProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return SmartCard(p), nil

	case BaseCDCControl:
		s, err := Decode[CDCControlSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		p, err := Decode[CDCControlProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return CDCControl(s, p), nil

	case BaseMassStorage:
		s, err := Decode[MassStorageSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		p, err := Decode[MassStorageProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return MassStorage(s, p), nil

	case BaseHID:
		s, err := Decode[HIDSubClass](sub)
		if err != nil {
			return Class{}, err
		}
		p, err := Decode[HIDProtocol](proto)
		if err != nil {
			return Class{}, err
		}
		return HumanInterfaceDevice(s, p), nil

	case BaseVendorSpecific:
		return VendorSpecific(sub, proto), nil

	case BasePhysical, BasePersonalHealthcare, BaseDiagnostic,
		BaseWireless, BaseMiscellaneous, BaseApplicationSpecific:
		return Class{}, newError(Unimplemented, base)

	default:
		return Class{}, newError(UnknownClass, base)
	}
}

// ResolveCode is Resolve for a [Code].
func ResolveCode(c Code) (Class, error) {
	return Resolve(c.Base, c.SubClass, c.Protocol)
}

func single(b BaseClass, wantSub, wantProto, sub, proto uint8) (Class, error) {
	if sub != wantSub {
		return Class{}, newError(UnknownSubClass, sub)
	}
	if proto != wantProto {
		return Class{}, newError(UnknownProtocol, proto)
	}
	return Class{base: b, subclass: sub, protocol: proto}, nil
}

var (
	knownOnce sync.Once
	known     []Class
)

// Known returns every class Resolve can produce from a canonical triple,
// ordered by code. Vendor specific classes are left out since every
// subclass/protocol pair is valid for them. The slice is shared; do not
// modify it.
func Known() []Class {
	knownOnce.Do(func() {
		for b := 0; b < 0xFF; b++ {
			if !BaseClass(b).Modelled() {
				continue
			}
			for s := 0; s <= 0xFF; s++ {
				for p := 0; p <= 0xFF; p++ {
					c, err := Resolve(uint8(b), uint8(s), uint8(p))
					if err != nil {
						continue
					}
					// Range decoded bytes collapse onto their canonical code.
					if c.Code() != (Code{uint8(b), uint8(s), uint8(p)}) {
						continue
					}
					known = append(known, c)
				}
			}
		}
	})
	return known
}

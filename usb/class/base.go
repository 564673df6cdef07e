package class

import "strconv"

// BaseClass is a USB-IF assigned base class code.
type BaseClass uint8

const (
	BaseDevice              BaseClass = 0x00
	BaseAudio               BaseClass = 0x01
	BaseCDCControl          BaseClass = 0x02
	BaseHID                 BaseClass = 0x03
	BasePhysical            BaseClass = 0x05
	BaseStillImaging        BaseClass = 0x06
	BasePrinter             BaseClass = 0x07
	BaseMassStorage         BaseClass = 0x08
	BaseHub                 BaseClass = 0x09
	BaseCDCData             BaseClass = 0x0A
	BaseSmartCard           BaseClass = 0x0B
	BaseContentSecurity     BaseClass = 0x0D
	BaseVideo               BaseClass = 0x0E
	BasePersonalHealthcare  BaseClass = 0x0F
	BaseAudioVideo          BaseClass = 0x10
	BaseBillboard           BaseClass = 0x11
	BaseTypeCBridge         BaseClass = 0x12
	BaseI3CDevice           BaseClass = 0x3C
	BaseDiagnostic          BaseClass = 0xDC
	BaseWireless            BaseClass = 0xE0
	BaseMiscellaneous       BaseClass = 0xEF
	BaseApplicationSpecific BaseClass = 0xFE
	BaseVendorSpecific      BaseClass = 0xFF
)

var baseDescription = map[BaseClass]string{
	BaseDevice:              "Device",
	BaseAudio:               "Audio",
	BaseCDCControl:          "CDC Control",
	BaseHID:                 "Human Interface Device",
	BasePhysical:            "Physical",
	BaseStillImaging:        "Still Imaging",
	BasePrinter:             "Printer",
	BaseMassStorage:         "Mass Storage",
	BaseHub:                 "Hub",
	BaseCDCData:             "CDC Data",
	BaseSmartCard:           "Smart Card",
	BaseContentSecurity:     "Content Security",
	BaseVideo:               "Video",
	BasePersonalHealthcare:  "Personal Healthcare",
	BaseAudioVideo:          "Audio/Video",
	BaseBillboard:           "Billboard",
	BaseTypeCBridge:         "USB Type-C Bridge",
	BaseI3CDevice:           "I3C Device",
	BaseDiagnostic:          "Diagnostic",
	BaseWireless:            "Wireless Controller",
	BaseMiscellaneous:       "Miscellaneous",
	BaseApplicationSpecific: "Application Specific",
	BaseVendorSpecific:      "Vendor Specific",
}

func (b BaseClass) String() string {
	if d, ok := baseDescription[b]; ok {
		return d
	}
	return "BaseClass(0x" + strconv.FormatUint(uint64(b), 16) + ")"
}

// Assigned reports whether b appears in the USB-IF base class table.
func (b BaseClass) Assigned() bool {
	_, ok := baseDescription[b]
	return ok
}

// Modelled reports whether [Resolve] decodes the sub-tables of b. Assigned
// classes that are not modelled resolve to an [Unimplemented] error.
func (b BaseClass) Modelled() bool {
	switch b {
	case BasePhysical, BasePersonalHealthcare, BaseDiagnostic,
		BaseWireless, BaseMiscellaneous, BaseApplicationSpecific:
		return false
	}
	return b.Assigned()
}

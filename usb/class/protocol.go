package class

// HIDProtocol is the boot protocol of a HID (03h) interface.
type HIDProtocol uint8

const (
	HIDProtocolNone HIDProtocol = 0x00
	HIDKeyboard     HIDProtocol = 0x01
	HIDMouse        HIDProtocol = 0x02
)

var hidProtocols = table{
	base:  BaseHID,
	level: levelProtocol,
	entries: []entry{
		exact(uint8(HIDProtocolNone), "None"),
		exact(uint8(HIDKeyboard), "Keyboard"),
		exact(uint8(HIDMouse), "Mouse"),
	},
}

func (HIDProtocol) codes() *table    { return &hidProtocols }
func (p HIDProtocol) Encode() uint8  { return uint8(p) }
func (p HIDProtocol) String() string { return hidProtocols.name(uint8(p)) }

// HubSpeed is the protocol of a Hub (09h) device.
type HubSpeed uint8

const (
	HubFullSpeed           HubSpeed = 0x00
	HubHighSpeedSingleTT   HubSpeed = 0x01
	HubHighSpeedMultipleTT HubSpeed = 0x02
)

var hubSpeeds = table{
	base:     BaseHub,
	level:    levelProtocol,
	scoped:   true,
	subclass: 0x00,
	entries: []entry{
		exact(uint8(HubFullSpeed), "Full Speed"),
		exact(uint8(HubHighSpeedSingleTT), "High Speed, Single TT"),
		exact(uint8(HubHighSpeedMultipleTT), "High Speed, Multiple TTs"),
	},
}

func (HubSpeed) codes() *table    { return &hubSpeeds }
func (p HubSpeed) Encode() uint8  { return uint8(p) }
func (p HubSpeed) String() string { return hubSpeeds.name(uint8(p)) }

// PrinterProtocol is the protocol of a Printer (07h) interface. Printers
// have a single subclass, 01h.
type PrinterProtocol uint8

const (
	PrinterUnidirectional    PrinterProtocol = 0x01
	PrinterBidirectional     PrinterProtocol = 0x02
	PrinterBidirectional1284 PrinterProtocol = 0x03
	PrinterVendorSpecific    PrinterProtocol = 0xFF
)

var printerProtocols = table{
	base:     BasePrinter,
	level:    levelProtocol,
	scoped:   true,
	subclass: 0x01,
	entries: []entry{
		exact(uint8(PrinterUnidirectional), "Unidirectional"),
		exact(uint8(PrinterBidirectional), "Bidirectional"),
		exact(uint8(PrinterBidirectional1284), "IEEE 1284.4 Bidirectional"),
		exact(uint8(PrinterVendorSpecific), "Vendor Specific"),
	},
}

func (PrinterProtocol) codes() *table    { return &printerProtocols }
func (p PrinterProtocol) Encode() uint8  { return uint8(p) }
func (p PrinterProtocol) String() string { return printerProtocols.name(uint8(p)) }

// SmartCardProtocol is the protocol of a Smart Card (0Bh) interface.
type SmartCardProtocol uint8

const (
	SmartCardBulk               SmartCardProtocol = 0x00
	SmartCardControlNoInterrupt SmartCardProtocol = 0x01
	SmartCardControlInterrupt   SmartCardProtocol = 0x02
)

var smartCardProtocols = table{
	base:     BaseSmartCard,
	level:    levelProtocol,
	scoped:   true,
	subclass: 0x00,
	entries: []entry{
		exact(uint8(SmartCardBulk), "Bulk"),
		exact(uint8(SmartCardControlNoInterrupt), "Control, No Interrupt"),
		exact(uint8(SmartCardControlInterrupt), "Control, Optional Interrupt"),
	},
}

func (SmartCardProtocol) codes() *table    { return &smartCardProtocols }
func (p SmartCardProtocol) Encode() uint8  { return uint8(p) }
func (p SmartCardProtocol) String() string { return smartCardProtocols.name(uint8(p)) }

// StillImageProtocol is the protocol of a Still Imaging (06h) interface.
type StillImageProtocol uint8

const StillImagePTP StillImageProtocol = 0x01

var stillImageProtocols = table{
	base:     BaseStillImaging,
	level:    levelProtocol,
	scoped:   true,
	subclass: 0x01,
	entries: []entry{
		exact(uint8(StillImagePTP), "PTP"),
	},
}

func (StillImageProtocol) codes() *table    { return &stillImageProtocols }
func (p StillImageProtocol) Encode() uint8  { return uint8(p) }
func (p StillImageProtocol) String() string { return stillImageProtocols.name(uint8(p)) }

// VideoProtocol is the protocol of a Video (0Eh) interface.
type VideoProtocol uint8

const VideoProtocol15 VideoProtocol = 0x01

var videoProtocols = table{
	base:  BaseVideo,
	level: levelProtocol,
	entries: []entry{
		exact(uint8(VideoProtocol15), "UVC 1.5"),
	},
}

func (VideoProtocol) codes() *table    { return &videoProtocols }
func (p VideoProtocol) Encode() uint8  { return uint8(p) }
func (p VideoProtocol) String() string { return videoProtocols.name(uint8(p)) }

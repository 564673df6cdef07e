package class

// WirelessSubClass is the subclass of a Wireless Controller (E0h) interface.
// [Resolve] does not model the Wireless Controller class yet; the table is
// available for callers that already know the family.
type WirelessSubClass uint8

const (
	WirelessRadioFrequency WirelessSubClass = 0x01
	WirelessUSBAdapter     WirelessSubClass = 0x02
)

var wirelessSubClasses = table{
	base:  BaseWireless,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(WirelessRadioFrequency), "Radio Frequency"),
		exact(uint8(WirelessUSBAdapter), "Wireless USB Wire Adapter"),
	},
}

func (WirelessSubClass) codes() *table    { return &wirelessSubClasses }
func (s WirelessSubClass) Encode() uint8  { return uint8(s) }
func (s WirelessSubClass) String() string { return wirelessSubClasses.name(uint8(s)) }

// ApplicationSpecificSubClass is the subclass of an Application Specific
// (FEh) interface. Like [WirelessSubClass] it is not used by [Resolve].
type ApplicationSpecificSubClass uint8

const (
	AppFirmwareUpgrade ApplicationSpecificSubClass = 0x01
	AppIrDABridge      ApplicationSpecificSubClass = 0x02
	AppTestMeasurement ApplicationSpecificSubClass = 0x03
)

var appSubClasses = table{
	base:  BaseApplicationSpecific,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(AppFirmwareUpgrade), "Device Firmware Upgrade"),
		exact(uint8(AppIrDABridge), "IrDA Bridge"),
		exact(uint8(AppTestMeasurement), "Test and Measurement"),
	},
}

func (ApplicationSpecificSubClass) codes() *table    { return &appSubClasses }
func (s ApplicationSpecificSubClass) Encode() uint8  { return uint8(s) }
func (s ApplicationSpecificSubClass) String() string { return appSubClasses.name(uint8(s)) }

package class

// Protocol tables of the Wireless Controller (E0h) and Application Specific
// (FEh) classes. Resolve reports both classes as Unimplemented; these are
// usable on their own once the caller knows the subclass.

// WirelessBaseProtocol is the protocol under Wireless Controller subclass 01h.
type WirelessBaseProtocol uint8

const (
	WirelessBluetoothProgramming WirelessBaseProtocol = 0x01
	WirelessUWBRadioControl      WirelessBaseProtocol = 0x02
	WirelessRemoteNDIS           WirelessBaseProtocol = 0x03
	WirelessBluetoothAMP         WirelessBaseProtocol = 0x04
)

var wirelessBaseProtocols = table{
	base:     BaseWireless,
	level:    levelProtocol,
	scoped:   true,
	subclass: uint8(WirelessRadioFrequency),
	entries: []entry{
		exact(uint8(WirelessBluetoothProgramming), "Bluetooth Programming Interface"),
		exact(uint8(WirelessUWBRadioControl), "UWB Radio Control"),
		exact(uint8(WirelessRemoteNDIS), "Remote NDIS"),
		exact(uint8(WirelessBluetoothAMP), "Bluetooth AMP Controller"),
	},
}

func (WirelessBaseProtocol) codes() *table    { return &wirelessBaseProtocols }
func (p WirelessBaseProtocol) Encode() uint8  { return uint8(p) }
func (p WirelessBaseProtocol) String() string { return wirelessBaseProtocols.name(uint8(p)) }

// WirelessAdapterProtocol is the protocol under Wireless Controller
// subclass 02h.
type WirelessAdapterProtocol uint8

const (
	WirelessHostWireAdapter              WirelessAdapterProtocol = 0x01
	WirelessDeviceWireAdapter            WirelessAdapterProtocol = 0x02
	WirelessDeviceWireAdapterIsochronous WirelessAdapterProtocol = 0x03
)

var wirelessAdapterProtocols = table{
	base:     BaseWireless,
	level:    levelProtocol,
	scoped:   true,
	subclass: uint8(WirelessUSBAdapter),
	entries: []entry{
		exact(uint8(WirelessHostWireAdapter), "Host Wire Adapter Control/Data"),
		exact(uint8(WirelessDeviceWireAdapter), "Device Wire Adapter Control/Data"),
		exact(uint8(WirelessDeviceWireAdapterIsochronous), "Device Wire Adapter Isochronous"),
	},
}

func (WirelessAdapterProtocol) codes() *table    { return &wirelessAdapterProtocols }
func (p WirelessAdapterProtocol) Encode() uint8  { return uint8(p) }
func (p WirelessAdapterProtocol) String() string { return wirelessAdapterProtocols.name(uint8(p)) }

// FirmwareUpgradeProtocol is the protocol under Application Specific
// subclass 01h.
type FirmwareUpgradeProtocol uint8

const FirmwareUpgradeDFU FirmwareUpgradeProtocol = 0x01

var firmwareUpgradeProtocols = table{
	base:     BaseApplicationSpecific,
	level:    levelProtocol,
	scoped:   true,
	subclass: uint8(AppFirmwareUpgrade),
	entries: []entry{
		exact(uint8(FirmwareUpgradeDFU), "Device Firmware Upgrade"),
	},
}

func (FirmwareUpgradeProtocol) codes() *table    { return &firmwareUpgradeProtocols }
func (p FirmwareUpgradeProtocol) Encode() uint8  { return uint8(p) }
func (p FirmwareUpgradeProtocol) String() string { return firmwareUpgradeProtocols.name(uint8(p)) }

// IrDABridgeProtocol is the protocol under Application Specific subclass 02h.
type IrDABridgeProtocol uint8

const IrDABridge IrDABridgeProtocol = 0x00

var irdaBridgeProtocols = table{
	base:     BaseApplicationSpecific,
	level:    levelProtocol,
	scoped:   true,
	subclass: uint8(AppIrDABridge),
	entries: []entry{
		exact(uint8(IrDABridge), "IrDA Bridge"),
	},
}

func (IrDABridgeProtocol) codes() *table    { return &irdaBridgeProtocols }
func (p IrDABridgeProtocol) Encode() uint8  { return uint8(p) }
func (p IrDABridgeProtocol) String() string { return irdaBridgeProtocols.name(uint8(p)) }

// TestMeasurementProtocol is the protocol under Application Specific
// subclass 03h.
type TestMeasurementProtocol uint8

const (
	TestMeasurementTMC    TestMeasurementProtocol = 0x00
	TestMeasurementUSB488 TestMeasurementProtocol = 0x01
)

var testMeasurementProtocols = table{
	base:     BaseApplicationSpecific,
	level:    levelProtocol,
	scoped:   true,
	subclass: uint8(AppTestMeasurement),
	entries: []entry{
		exact(uint8(TestMeasurementTMC), "USBTMC"),
		exact(uint8(TestMeasurementUSB488), "USBTMC USB488"),
	},
}

func (TestMeasurementProtocol) codes() *table    { return &testMeasurementProtocols }
func (p TestMeasurementProtocol) Encode() uint8  { return uint8(p) }
func (p TestMeasurementProtocol) String() string { return testMeasurementProtocols.name(uint8(p)) }

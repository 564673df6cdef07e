package class

// MassStorageProtocol is the transport of a Mass Storage (08h) interface.
type MassStorageProtocol uint8

const (
	MassStorageCBIInterrupt           MassStorageProtocol = 0x00
	MassStorageCBI                    MassStorageProtocol = 0x01
	MassStorageBulkOnly               MassStorageProtocol = 0x50
	MassStorageUAS                    MassStorageProtocol = 0x62
	MassStorageProtocolVendorSpecific MassStorageProtocol = 0xFF
)

var massStorageProtocols = table{
	base:  BaseMassStorage,
	level: levelProtocol,
	entries: []entry{
		exact(uint8(MassStorageCBIInterrupt), "CBI with Command Completion Interrupt"),
		exact(uint8(MassStorageCBI), "CBI without Command Completion Interrupt"),
		exact(uint8(MassStorageBulkOnly), "Bulk-Only"),
		exact(uint8(MassStorageUAS), "UAS"),
		exact(uint8(MassStorageProtocolVendorSpecific), "Vendor Specific"),
	},
}

func (MassStorageProtocol) codes() *table    { return &massStorageProtocols }
func (p MassStorageProtocol) Encode() uint8  { return uint8(p) }
func (p MassStorageProtocol) String() string { return massStorageProtocols.name(uint8(p)) }

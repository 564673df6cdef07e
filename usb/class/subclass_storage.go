package class

// MassStorageSubClass is the command set of a Mass Storage (08h) interface.
type MassStorageSubClass uint8

const (
	MassStorageNotReported            MassStorageSubClass = 0x00
	MassStorageRBC                    MassStorageSubClass = 0x01
	MassStorageMMC5                   MassStorageSubClass = 0x02
	MassStorageUFI                    MassStorageSubClass = 0x04
	MassStorageSCSI                   MassStorageSubClass = 0x06
	MassStorageLSDFS                  MassStorageSubClass = 0x07
	MassStorageIEEE1667               MassStorageSubClass = 0x08
	MassStorageSubClassVendorSpecific MassStorageSubClass = 0xFF
)

var massStorageSubClasses = table{
	base:  BaseMassStorage,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(MassStorageNotReported), "SCSI Not Reported"),
		exact(uint8(MassStorageRBC), "RBC"),
		exact(uint8(MassStorageMMC5), "MMC-5 (ATAPI)"),
		exact(uint8(MassStorageUFI), "UFI"),
		exact(uint8(MassStorageSCSI), "SCSI"),
		exact(uint8(MassStorageLSDFS), "LSD FS"),
		exact(uint8(MassStorageIEEE1667), "IEEE 1667"),
		exact(uint8(MassStorageSubClassVendorSpecific), "Vendor Specific"),
	},
}

func (MassStorageSubClass) codes() *table    { return &massStorageSubClasses }
func (s MassStorageSubClass) Encode() uint8  { return uint8(s) }
func (s MassStorageSubClass) String() string { return massStorageSubClasses.name(uint8(s)) }

package class

// CDCControlSubClass is the communication model of a CDC Control (02h)
// interface.
//
// It is the only family decoded by range: every byte from 0x80 to 0xFF is
// [CDCSubClassVendorSpecific], which encodes back to 0xFF.
type CDCControlSubClass uint8

const (
	CDCDirectLine             CDCControlSubClass = 0x01
	CDCAbstract               CDCControlSubClass = 0x02
	CDCTelephone              CDCControlSubClass = 0x03
	CDCMultiChannel           CDCControlSubClass = 0x04
	CDCCAPI                   CDCControlSubClass = 0x05
	CDCEthernetNetworking     CDCControlSubClass = 0x06
	CDCATMNetworking          CDCControlSubClass = 0x07
	CDCWirelessHandset        CDCControlSubClass = 0x08
	CDCDeviceManagement       CDCControlSubClass = 0x09
	CDCMobileDirectLine       CDCControlSubClass = 0x0A
	CDCOBEX                   CDCControlSubClass = 0x0B
	CDCEthernetEmulation      CDCControlSubClass = 0x0C
	CDCNetworkControl         CDCControlSubClass = 0x0D
	CDCSubClassVendorSpecific CDCControlSubClass = 0xFF
)

var cdcControlSubClasses = table{
	base:  BaseCDCControl,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(CDCDirectLine), "Direct Line"),
		exact(uint8(CDCAbstract), "Abstract"),
		exact(uint8(CDCTelephone), "Telephone"),
		exact(uint8(CDCMultiChannel), "Multi-Channel"),
		exact(uint8(CDCCAPI), "CAPI"),
		exact(uint8(CDCEthernetNetworking), "Ethernet Networking"),
		exact(uint8(CDCATMNetworking), "ATM Networking"),
		exact(uint8(CDCWirelessHandset), "Wireless Handset"),
		exact(uint8(CDCDeviceManagement), "Device Management"),
		exact(uint8(CDCMobileDirectLine), "Mobile Direct Line"),
		exact(uint8(CDCOBEX), "OBEX"),
		exact(uint8(CDCEthernetEmulation), "Ethernet Emulation"),
		exact(uint8(CDCNetworkControl), "Network Control"),
		span(0x80, 0xFF, uint8(CDCSubClassVendorSpecific), "Vendor Specific"),
	},
}

func (CDCControlSubClass) codes() *table    { return &cdcControlSubClasses }
func (s CDCControlSubClass) Encode() uint8  { return uint8(s) }
func (s CDCControlSubClass) String() string { return cdcControlSubClasses.name(uint8(s)) }

package class

// CDCControlProtocol is the protocol of a CDC Control (02h) interface.
type CDCControlProtocol uint8

const (
	CDCProtocolUSB            CDCControlProtocol = 0x00
	CDCProtocolV250           CDCControlProtocol = 0x01
	CDCProtocolPCCA101        CDCControlProtocol = 0x02
	CDCProtocolPCCA101AnnexO  CDCControlProtocol = 0x03
	CDCProtocolGSM            CDCControlProtocol = 0x04
	CDCProtocol3GPP           CDCControlProtocol = 0x05
	CDCProtocolCDMA           CDCControlProtocol = 0x06
	CDCProtocolEEM            CDCControlProtocol = 0x07
	CDCProtocolExternal       CDCControlProtocol = 0xFE
	CDCProtocolVendorSpecific CDCControlProtocol = 0xFF
)

var cdcControlProtocols = table{
	base:  BaseCDCControl,
	level: levelProtocol,
	entries: []entry{
		exact(uint8(CDCProtocolUSB), "USB Specification"),
		exact(uint8(CDCProtocolV250), "AT Commands V.250"),
		exact(uint8(CDCProtocolPCCA101), "AT Commands PCCA-101"),
		exact(uint8(CDCProtocolPCCA101AnnexO), "AT Commands PCCA-101 Annex O"),
		exact(uint8(CDCProtocolGSM), "AT Commands GSM 07.07"),
		exact(uint8(CDCProtocol3GPP), "AT Commands 3GPP 27.007"),
		exact(uint8(CDCProtocolCDMA), "AT Commands TIA CDMA"),
		exact(uint8(CDCProtocolEEM), "Ethernet Emulation Model"),
		exact(uint8(CDCProtocolExternal), "External Protocol"),
		exact(uint8(CDCProtocolVendorSpecific), "Vendor Specific"),
	},
}

func (CDCControlProtocol) codes() *table    { return &cdcControlProtocols }
func (p CDCControlProtocol) Encode() uint8  { return uint8(p) }
func (p CDCControlProtocol) String() string { return cdcControlProtocols.name(uint8(p)) }

// CDCDataProtocol is the protocol of a CDC Data (0Ah) interface. CDC Data
// has a single subclass, 00h.
type CDCDataProtocol uint8

const (
	CDCDataUSB            CDCDataProtocol = 0x00
	CDCDataNTB            CDCDataProtocol = 0x01
	CDCDataI430           CDCDataProtocol = 0x30
	CDCDataHDLC           CDCDataProtocol = 0x31
	CDCDataQ921M          CDCDataProtocol = 0x50
	CDCDataQ921           CDCDataProtocol = 0x51
	CDCDataQ921TM         CDCDataProtocol = 0x52
	CDCDataV42bis         CDCDataProtocol = 0x90
	CDCDataQ931           CDCDataProtocol = 0x91
	CDCDataV120           CDCDataProtocol = 0x92
	CDCDataCAPI2          CDCDataProtocol = 0x93
	CDCDataHostBased      CDCDataProtocol = 0xFD
	CDCDataDescribed      CDCDataProtocol = 0xFE
	CDCDataVendorSpecific CDCDataProtocol = 0xFF
)

var cdcDataProtocols = table{
	base:     BaseCDCData,
	level:    levelProtocol,
	scoped:   true,
	subclass: 0x00,
	entries: []entry{
		exact(uint8(CDCDataUSB), "USB Specification"),
		exact(uint8(CDCDataNTB), "Network Transfer Block"),
		exact(uint8(CDCDataI430), "ISDN BRI I.430"),
		exact(uint8(CDCDataHDLC), "HDLC"),
		exact(uint8(CDCDataQ921M), "Q.921 Management"),
		exact(uint8(CDCDataQ921), "Q.921 Data Link"),
		exact(uint8(CDCDataQ921TM), "Q.921 TEI Multiplexor"),
		exact(uint8(CDCDataV42bis), "V.42bis"),
		exact(uint8(CDCDataQ931), "Q.931 Euro-ISDN"),
		exact(uint8(CDCDataV120), "V.120"),
		exact(uint8(CDCDataCAPI2), "CAPI 2.0"),
		exact(uint8(CDCDataHostBased), "Host Based Driver"),
		exact(uint8(CDCDataDescribed), "Protocol Unit Functional Descriptor"),
		exact(uint8(CDCDataVendorSpecific), "Vendor Specific"),
	},
}

func (CDCDataProtocol) codes() *table    { return &cdcDataProtocols }
func (p CDCDataProtocol) Encode() uint8  { return uint8(p) }
func (p CDCDataProtocol) String() string { return cdcDataProtocols.name(uint8(p)) }

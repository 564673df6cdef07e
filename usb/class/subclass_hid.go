package class

// HIDSubClass is the subclass of a HID (03h) interface.
type HIDSubClass uint8

const (
	HIDNoSubClass HIDSubClass = 0x00
	HIDBoot       HIDSubClass = 0x01
)

var hidSubClasses = table{
	base:  BaseHID,
	level: levelSubClass,
	entries: []entry{
		exact(uint8(HIDNoSubClass), "No Subclass"),
		exact(uint8(HIDBoot), "Boot Interface"),
	},
}

func (HIDSubClass) codes() *table    { return &hidSubClasses }
func (s HIDSubClass) Encode() uint8  { return uint8(s) }
func (s HIDSubClass) String() string { return hidSubClasses.name(uint8(s)) }

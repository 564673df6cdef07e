package class

// UsableInDeviceDescriptor reports whether c may appear as the class of a
// device descriptor. Only the variant is inspected, never the payload.
func (c Class) UsableInDeviceDescriptor() bool {
	switch c.base {
	case BaseDevice, BaseCDCControl, BaseHub, BaseBillboard,
		BaseDiagnostic, BaseMiscellaneous, BaseVendorSpecific:
		return true
	default:
		return false
	}
}

// UsableInInterfaceDescriptor reports whether c may appear as the class of an
// interface descriptor. Device, Hub and Billboard are device-level only.
func (c Class) UsableInInterfaceDescriptor() bool {
	switch c.base {
	case BaseDevice, BaseHub, BaseBillboard:
		return false
	default:
		return true
	}
}

// DevDesc is shorthand for [Class.UsableInDeviceDescriptor].
func (c Class) DevDesc() bool { return c.UsableInDeviceDescriptor() }

// IfDesc is shorthand for [Class.UsableInInterfaceDescriptor].
func (c Class) IfDesc() bool { return c.UsableInInterfaceDescriptor() }

package usb

import (
	"errors"
	"fmt"

	"github.com/Alia5/usbclass/usb/class"
)

// ErrClassNotAllowed is returned when a class is valid but may not be used at
// the level it appears at, e.g. a Hub class on an interface.
var ErrClassNotAllowed = errors.New("class not allowed here")

// Validate resolves the device class and every interface class, and checks
// each against the descriptor level it appears at. It stops at the first
// problem; classification errors are wrapped so errors.Is/As still see the
// underlying [*class.Error].
func (d Descriptor) Validate() error {
	dc, err := d.Device.Class()
	if err != nil {
		return fmt.Errorf("device class %s: %w", d.Device.ClassCode(), err)
	}
	if !dc.UsableInDeviceDescriptor() {
		return fmt.Errorf("device class %s: %w", dc, ErrClassNotAllowed)
	}

	for _, iface := range d.Interfaces {
		ic, err := iface.Descriptor.Class()
		if err != nil {
			return fmt.Errorf("interface %d.%d class %s: %w",
				iface.Descriptor.BInterfaceNumber, iface.Descriptor.BAlternateSetting,
				iface.Descriptor.ClassCode(), err)
		}
		if !ic.UsableInInterfaceDescriptor() {
			return fmt.Errorf("interface %d.%d class %s: %w",
				iface.Descriptor.BInterfaceNumber, iface.Descriptor.BAlternateSetting,
				ic, ErrClassNotAllowed)
		}
	}
	return nil
}

// InterfaceClasses resolves every interface class in order. Interfaces that
// fail to classify are reported in errs at the same index; the caller decides
// whether that is fatal.
func (d Descriptor) InterfaceClasses() (classes []class.Class, errs []error) {
	classes = make([]class.Class, len(d.Interfaces))
	errs = make([]error, len(d.Interfaces))
	for i, iface := range d.Interfaces {
		classes[i], errs[i] = iface.Descriptor.Class()
	}
	return classes, errs
}

// Package class decodes USB class codes.
//
// A device or interface descriptor identifies itself with three bytes: the
// base class, the subclass and the protocol. [Resolve] turns such a triple
// into a [Class] value drawn from the USB-IF base class table, and
// [Class.Code] turns it back into canonical bytes.
//
// Families with their own subclass or protocol tables expose them as small
// byte-backed types (for example [AudioSubClass] or [MassStorageProtocol]).
// Each can be decoded on its own with [Decode] and encoded with its Encode
// method:
//
//	p, err := class.Decode[class.MassStorageProtocol](0x50)
//	// p == class.MassStorageBulkOnly, p.Encode() == 0x50
//
// Nothing in this package allocates while classifying. Decode tables and
// error values are built once at init, so Resolve and Decode are safe to call
// from any goroutine and from allocation-sensitive code.
package class

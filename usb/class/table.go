package class

import "strconv"

type level uint8

const (
	levelSubClass level = iota
	levelProtocol
)

// entry maps the inclusive byte range [lo, hi] onto val. Exact entries have
// lo == hi; val is always the canonical byte of the variant.
type entry struct {
	lo, hi uint8
	val    uint8
	name   string
}

func exact(b uint8, name string) entry {
	return entry{lo: b, hi: b, val: b, name: name}
}

func span(lo, hi, canonical uint8, name string) entry {
	return entry{lo: lo, hi: hi, val: canonical, name: name}
}

// table is the lookup for one subclass or protocol family.
type table struct {
	base  BaseClass
	level level
	// scoped tables only apply under one subclass of base.
	scoped   bool
	subclass uint8
	entries  []entry
}

func (t *table) lookup(b uint8) (uint8, bool) {
	for i := range t.entries {
		if e := &t.entries[i]; b >= e.lo && b <= e.hi {
			return e.val, true
		}
	}
	return 0, false
}

// name returns the label of the variant whose canonical byte is v.
func (t *table) name(v uint8) string {
	for i := range t.entries {
		if t.entries[i].val == v {
			return t.entries[i].name
		}
	}
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// valid reports whether v is the canonical byte of one of the variants.
func (t *table) valid(v uint8) bool {
	for i := range t.entries {
		if t.entries[i].val == v {
			return true
		}
	}
	return false
}

func (t *table) fail(b uint8) *Error {
	if t.level == levelSubClass {
		return newError(UnknownSubClass, b)
	}
	return newError(UnknownProtocol, b)
}

// applies reports whether the table describes a payload of c.
func (t *table) applies(c Class) bool {
	if c.base != t.base {
		return false
	}
	return !t.scoped || c.subclass == t.subclass
}

// Leaf is implemented by every subclass and protocol family. The set of
// families is closed; the unexported method ties each one to its table.
type Leaf interface {
	~uint8
	Encode() uint8
	String() string
	codes() *table
}

// Decode maps b onto a variant of the family T. Bytes outside the family's
// table fail with an [*Error] of kind [UnknownSubClass] or [UnknownProtocol],
// depending on which level T describes.
func Decode[T Leaf](b uint8) (T, error) {
	var zero T
	t := zero.codes()
	v, ok := t.lookup(b)
	if !ok {
		return zero, t.fail(b)
	}
	return T(v), nil
}

// Valid reports whether v is one of the named variants of its family.
func Valid[T Leaf](v T) bool {
	var zero T
	return zero.codes().valid(uint8(v))
}

// Payload extracts the family T from c. It reports false when c belongs to a
// different base class (or, for protocol families that only exist under one
// subclass, a different subclass).
func Payload[T Leaf](c Class) (T, bool) {
	var zero T
	t := zero.codes()
	if !t.applies(c) {
		return zero, false
	}
	b := c.subclass
	if t.level == levelProtocol {
		b = c.protocol
	}
	v, ok := t.lookup(b)
	if !ok {
		return zero, false
	}
	return T(v), true
}

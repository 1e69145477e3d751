// Package chunk implements the PNG chunk record and its 4-byte type code.
package chunk

// Type is a 4-byte chunk type code. Each byte is an ASCII letter whose
// case carries a property bit: bit 5 clear means uppercase.
type Type [4]byte

// ParseType parses a chunk type code from a string.
// The string must be exactly 4 ASCII letters.
func ParseType(s string) (Type, error) {
	if len(s) != 4 {
		return Type{}, InvalidTypeError{Value: s, Reason: "must be 4 characters long"}
	}

	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return Type{}, InvalidTypeError{Value: s, Reason: "must contain ASCII letters only"}
		}
	}

	return Type{s[0], s[1], s[2], s[3]}, nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isUpperCase reports whether byte i of the code has its property bit
// (bit 5) clear, i.e. is uppercase.
func (t Type) isUpperCase(i int) bool {
	return t[i]&0x20 == 0
}

// Bytes returns the raw bytes of the code.
func (t Type) Bytes() [4]byte {
	return t
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t[:])
}

// IsCritical reports whether the chunk is required to decode the image.
func (t Type) IsCritical() bool {
	return t.isUpperCase(0)
}

// IsPublic reports whether the code belongs to the public registry.
func (t Type) IsPublic() bool {
	return t.isUpperCase(1)
}

// IsReservedBitValid reports whether the reserved bit is in its valid state.
func (t Type) IsReservedBitValid() bool {
	return t.isUpperCase(2)
}

// IsSafeToCopy reports whether an editor that does not recognize the chunk
// may carry it over unmodified.
func (t Type) IsSafeToCopy() bool {
	return !t.isUpperCase(3)
}

// IsValid reports whether the code is made of ASCII letters only and its
// reserved bit is valid.
func (t Type) IsValid() bool {
	for _, b := range t {
		if !isASCIILetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

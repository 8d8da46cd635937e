package unsafe

import (
	"unsafe"
)

// ToBytes converts a string to a byte slice with zero allocation.
// NB: The returned bytes alias the string's storage and must not be mutated.
func ToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

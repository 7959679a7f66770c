package packer

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// Fingerprint computes a cheap, deterministic checksum of a packing
// result, letting a caller cache a "did this layout change" comparison
// without keeping the full position slice around, the same role
// seahash plays for checksumming alignment records in the teacher's
// bio-pamtool checksum command. Two calls over equal positions always
// agree; this is not a cryptographic hash.
func Fingerprint(positions []Position) uint64 {
	buf := make([]byte, 16*len(positions))
	for i, p := range positions {
		binary.LittleEndian.PutUint64(buf[i*16:], uint64(p.X))
		binary.LittleEndian.PutUint64(buf[i*16+8:], uint64(p.Y))
	}
	return seahash.Sum64(buf)
}

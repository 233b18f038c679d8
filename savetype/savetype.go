package savetype

import (
	"encoding/binary"
)

type EVersion uint

//go:generate stringer -type=EVersion
const (
	Unknown EVersion = iota
	RubySapphire
	Emerald
	FireRedLeafGreen
)

// Security key locations in the unpacked buffer. Emerald and FireRed/LeafGreen
// keep a second copy of the key, Ruby/Sapphire leave both fields zeroed.
const (
	RSEKeyOffset   = 0xAC
	RSEKey2Offset  = 0x1F4
	FRLGKeyOffset  = 0xAF8
	FRLGKey2Offset = 0xF20
)

func readUint32(data []byte, offset int) (uint32, bool) {
	if offset < 0 || offset+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[offset:]), true
}

// Detect guesses the game version from an unpacked buffer.
// Order matters: an all-zero Ruby/Sapphire key also passes the Emerald check.
func Detect(unpacked []byte) EVersion {
	rse, ok1 := readUint32(unpacked, RSEKeyOffset)
	rse2, ok2 := readUint32(unpacked, RSEKey2Offset)
	frlg, ok3 := readUint32(unpacked, FRLGKeyOffset)
	frlg2, ok4 := readUint32(unpacked, FRLGKey2Offset)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Unknown
	}

	if rse == 0 && rse2 == 0 {
		return RubySapphire
	}

	if rse == rse2 {
		return Emerald
	}

	if frlg == frlg2 {
		return FireRedLeafGreen
	}

	return Unknown
}

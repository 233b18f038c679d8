package crypt

import (
	"encoding/binary"
	"fmt"

	"github.com/unknown321/gbasave/item"
	"github.com/unknown321/gbasave/savetype"
	"github.com/unknown321/gbasave/size"
)

// Layout describes where money and items live for a game version.
// Items below PCItemCount are PC storage and never encrypted.
type Layout struct {
	Storage     int
	KeyOffset   int
	PCItemCount int
	ItemCount   int
	Encrypted   bool
}

var layouts = map[savetype.EVersion]Layout{
	savetype.RubySapphire: {
		Storage:     size.UnpackedBlockLength + 0x490,
		PCItemCount: 50,
		ItemCount:   216,
	},
	savetype.Emerald: {
		Storage:     size.UnpackedBlockLength + 0x490,
		KeyOffset:   savetype.RSEKeyOffset,
		PCItemCount: 50,
		ItemCount:   236,
		Encrypted:   true,
	},
	savetype.FireRedLeafGreen: {
		Storage:     size.UnpackedBlockLength + 0x290,
		KeyOffset:   savetype.FRLGKeyOffset,
		PCItemCount: 30,
		ItemCount:   216,
		Encrypted:   true,
	},
}

func Params(v savetype.EVersion) (Layout, bool) {
	l, ok := layouts[v]
	return l, ok
}

// Key returns the security key of an unpacked buffer, zero for versions without one.
func Key(v savetype.EVersion, unpacked []byte) (uint32, error) {
	l, ok := layouts[v]
	if !ok || !l.Encrypted {
		return 0, nil
	}

	if l.KeyOffset+4 > len(unpacked) {
		return 0, fmt.Errorf("%w: key at %#x", item.ErrOutOfRange, l.KeyOffset)
	}

	return binary.LittleEndian.Uint32(unpacked[l.KeyOffset:]), nil
}

// Apply xors bag item amounts and money with the security key. Running it
// twice restores the input. Ruby/Sapphire and unknown versions are left as is.
func Apply(v savetype.EVersion, unpacked []byte) error {
	l, ok := layouts[v]
	if !ok || !l.Encrypted {
		return nil
	}

	key, err := Key(v, unpacked)
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}

	for i := l.PCItemCount; i < l.ItemCount; i++ {
		it, err := item.Read(unpacked, l.Storage, i)
		if err != nil {
			return err
		}
		it.Amount ^= uint16(key)
		if err = it.Write(unpacked, l.Storage, i); err != nil {
			return err
		}
	}

	money, err := item.Money(unpacked, l.Storage)
	if err != nil {
		return err
	}

	return item.SetMoney(unpacked, l.Storage, money^key)
}

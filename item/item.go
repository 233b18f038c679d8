package item

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("item out of range")

// RecordSize is the size of an Item record. Item lists start 8 bytes after
// the money field.
const (
	RecordSize = 4
	ListOffset = 8
)

type Item struct {
	Index  uint16
	Amount uint16
}

// Offset returns the position of the i-th item record of a storage block.
func Offset(storage int, i int) int {
	return storage + ListOffset + i*RecordSize
}

func Read(data []byte, storage int, i int) (Item, error) {
	it := Item{}
	o := Offset(storage, i)
	if o < 0 || o+RecordSize > len(data) {
		return it, fmt.Errorf("%w: item %d at %#x", ErrOutOfRange, i, o)
	}

	if _, err := binary.Decode(data[o:o+RecordSize], binary.LittleEndian, &it); err != nil {
		return it, fmt.Errorf("decode item %d: %w", i, err)
	}

	return it, nil
}

func (it *Item) Write(data []byte, storage int, i int) error {
	o := Offset(storage, i)
	if o < 0 || o+RecordSize > len(data) {
		return fmt.Errorf("%w: item %d at %#x", ErrOutOfRange, i, o)
	}

	if _, err := binary.Encode(data[o:o+RecordSize], binary.LittleEndian, it); err != nil {
		return fmt.Errorf("encode item %d: %w", i, err)
	}

	return nil
}

// Money is the u32 at the start of a storage block.
func Money(data []byte, storage int) (uint32, error) {
	if storage < 0 || storage+4 > len(data) {
		return 0, fmt.Errorf("%w: money at %#x", ErrOutOfRange, storage)
	}
	return binary.LittleEndian.Uint32(data[storage:]), nil
}

func SetMoney(data []byte, storage int, v uint32) error {
	if storage < 0 || storage+4 > len(data) {
		return fmt.Errorf("%w: money at %#x", ErrOutOfRange, storage)
	}
	binary.LittleEndian.PutUint32(data[storage:], v)
	return nil
}

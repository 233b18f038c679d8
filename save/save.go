package save

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/unknown321/gbasave/crypt"
	"github.com/unknown321/gbasave/footer"
	"github.com/unknown321/gbasave/saveslot"
	"github.com/unknown321/gbasave/savetype"
	"github.com/unknown321/gbasave/size"
)

var (
	ErrInvalidSize      = errors.New("invalid save size")
	ErrInvalidMark      = errors.New("invalid footer mark")
	ErrCorruptSectionID = errors.New("corrupt section id")
	ErrDuplicateSection = errors.New("duplicate section id")
)

type Options struct {
	// Strict rejects copies whose section ids are not a permutation of 0..13.
	Strict bool
}

// Save is a decoded copy. Data is the unpacked buffer with money and bag
// items already decrypted.
type Save struct {
	Version   savetype.EVersion
	Slot      saveslot.ESlot
	Offset    int
	SaveIndex uint32
	Order     [size.BlockCount]byte
	Data      []byte
}

// Validate checks the image size and the mark of the first block of copy 0.
func Validate(rawData []byte) error {
	if len(rawData) != size.PackedSize {
		return fmt.Errorf("%w: %#x, expected %#x", ErrInvalidSize, len(rawData), size.PackedSize)
	}

	f, err := footer.Read(rawData, 0, 0)
	if err != nil {
		return err
	}

	if f.Mark != size.FooterMark {
		return fmt.Errorf("%w: %#08x", ErrInvalidMark, f.Mark)
	}

	return nil
}

// Unpack copies the payload of every block of the copy at offset into its
// logical position.
func Unpack(rawData []byte, offset int, strict bool) ([]byte, [size.BlockCount]byte, error) {
	var order [size.BlockCount]byte
	var seen [size.BlockCount]bool

	unpacked := make([]byte, size.UnpackedSize)
	for i := range size.BlockCount {
		f, err := footer.Read(rawData, offset, i)
		if err != nil {
			return nil, order, fmt.Errorf("block %d: %w", i, err)
		}

		if int(f.SectionID) >= size.BlockCount {
			return nil, order, fmt.Errorf("%w: block %d has section %d", ErrCorruptSectionID, i, f.SectionID)
		}

		if strict && seen[f.SectionID] {
			return nil, order, fmt.Errorf("%w: block %d repeats section %d", ErrDuplicateSection, i, f.SectionID)
		}
		seen[f.SectionID] = true
		order[i] = byte(f.SectionID)

		src := offset + i*size.BlockLength
		dst := int(f.SectionID) * size.UnpackedBlockLength
		copy(unpacked[dst:dst+size.UnpackedBlockLength], rawData[src:src+size.UnpackedBlockLength])
	}

	return unpacked, order, nil
}

func Load(rawData []byte, slot saveslot.ESlot) (*Save, error) {
	return LoadWithOptions(rawData, slot, Options{})
}

func LoadWithOptions(rawData []byte, slot saveslot.ESlot, opts Options) (*Save, error) {
	var err error
	if err = Validate(rawData); err != nil {
		return nil, err
	}

	s := &Save{Slot: slot}
	if s.Offset, err = saveslot.Offset(rawData, slot); err != nil {
		return nil, fmt.Errorf("select slot: %w", err)
	}

	f, err := footer.Read(rawData, s.Offset, 0)
	if err != nil {
		return nil, err
	}
	s.SaveIndex = f.SaveIndex

	if s.Data, s.Order, err = Unpack(rawData, s.Offset, opts.Strict); err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}

	s.Version = savetype.Detect(s.Data)
	slog.Debug("unpacked", "slot", s.Slot.String(), "offset", fmt.Sprintf("%#x", s.Offset), "saveIndex", s.SaveIndex, "version", s.Version.String())

	if err = crypt.Apply(s.Version, s.Data); err != nil {
		return nil, fmt.Errorf("decrypt %s: %w", s.Version, err)
	}

	return s, nil
}

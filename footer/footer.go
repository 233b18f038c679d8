package footer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/unknown321/gbasave/size"
)

var ErrOutOfRange = errors.New("footer out of range")

// Footer is stored in the last 12 bytes of every physical block.
type Footer struct {
	SectionID uint16
	Checksum  uint16 // not verified
	Mark      uint32
	SaveIndex uint32
}

// Offset returns the position of the footer of block in the copy starting at copyOffset.
func Offset(copyOffset int, block int) int {
	return copyOffset + (block+1)*size.BlockLength - size.FooterLength
}

func Read(data []byte, copyOffset int, block int) (Footer, error) {
	f := Footer{}
	o := Offset(copyOffset, block)
	if o < 0 || o+size.FooterLength > len(data) {
		return f, fmt.Errorf("%w: block %d at %#x, buffer size %#x", ErrOutOfRange, block, o, len(data))
	}

	if _, err := binary.Decode(data[o:o+size.FooterLength], binary.LittleEndian, &f); err != nil {
		return f, fmt.Errorf("decode footer %d: %w", block, err)
	}

	return f, nil
}

func (f *Footer) Write(data []byte, copyOffset int, block int) error {
	o := Offset(copyOffset, block)
	if o < 0 || o+size.FooterLength > len(data) {
		return fmt.Errorf("%w: block %d at %#x, buffer size %#x", ErrOutOfRange, block, o, len(data))
	}

	if _, err := binary.Encode(data[o:o+size.FooterLength], binary.LittleEndian, f); err != nil {
		return fmt.Errorf("encode footer %d: %w", block, err)
	}

	return nil
}

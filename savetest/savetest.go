// Package savetest builds synthetic flash images for tests.
package savetest

import (
	"github.com/unknown321/gbasave/footer"
	"github.com/unknown321/gbasave/size"
)

type Copy struct {
	Offset    int
	SaveIndex uint32
	Mark      uint32
	Order     [size.BlockCount]byte // section id of each physical block
}

func Identity() [size.BlockCount]byte {
	var o [size.BlockCount]byte
	for i := range o {
		o[i] = byte(i)
	}
	return o
}

// Valid returns a copy with a correct mark and sections in physical order.
func Valid(offset int, saveIndex uint32) Copy {
	return Copy{Offset: offset, SaveIndex: saveIndex, Mark: size.FooterMark, Order: Identity()}
}

// Fill is the byte every payload byte of a physical block is set to.
func Fill(copyOffset int, block int) byte {
	if copyOffset == 0 {
		return byte(0x10 + block)
	}
	return byte(0x80 + block)
}

// New returns a full-size image. Copies not given stay zeroed.
func New(copies ...Copy) []byte {
	data := make([]byte, size.PackedSize)
	for _, c := range copies {
		for i := range size.BlockCount {
			start := c.Offset + i*size.BlockLength
			for j := start; j < start+size.UnpackedBlockLength; j++ {
				data[j] = Fill(c.Offset, i)
			}

			f := footer.Footer{
				SectionID: uint16(c.Order[i]),
				Mark:      c.Mark,
				SaveIndex: c.SaveIndex,
			}
			if err := f.Write(data, c.Offset, i); err != nil {
				panic(err)
			}
		}
	}

	return data
}

// Physical maps an unpacked offset to its position in the image, or -1
// when no block of c carries the section.
func (c Copy) Physical(logical int) int {
	section := logical / size.UnpackedBlockLength
	for i, s := range c.Order {
		if int(s) == section {
			return c.Offset + i*size.BlockLength + logical%size.UnpackedBlockLength
		}
	}
	return -1
}

func (c Copy) PutUint32(data []byte, logical int, v uint32) {
	for i := range 4 {
		data[c.Physical(logical+i)] = byte(v >> (8 * i))
	}
}

func (c Copy) PutUint16(data []byte, logical int, v uint16) {
	data[c.Physical(logical)] = byte(v)
	data[c.Physical(logical+1)] = byte(v >> 8)
}

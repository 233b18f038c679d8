package size

// Physical layout of a 128 KiB flash save.
const (
	BlockCount          = 14
	BlockLength         = 0x1000
	UnpackedBlockLength = 0xF80
	FooterLength        = 0xC
	FooterMark          = 0x08012025
	UnpackedSize        = BlockCount * UnpackedBlockLength // 0xD900
	PackedSize          = 0x20000
	SaveSection         = 0xE000
)

package alpide

// WordType is the kind of data word starting at a payload byte.
type WordType uint8

const (
	WordUnknown WordType = iota
	WordIdle
	WordChipHeader
	WordChipTrailer
	WordChipEmptyFrame
	WordRegionHeader
	WordDataShort
	WordDataLong
	WordBusyOn
	WordBusyOff
)

// Leading-byte values and masks.
const (
	idleByte    = 0xFF
	busyOnByte  = 0xF1
	busyOffByte = 0xF0

	chipMask          = 0xF0
	chipHeaderBits    = 0xA0
	chipTrailerBits   = 0xB0
	chipEmptyBits     = 0xE0
	regionHeaderMask  = 0xE0
	regionHeaderBits  = 0xC0
	dataMask          = 0xC0
	dataShortBits     = 0x40
	dataLongBits      = 0x00
	lowNibble         = 0x0F
	regionIDMask      = 0x1F
	hitMapMask        = 0x7F
	hitMapWidth       = 7
	maxPixelAddress   = 0x3FF
	columnsPerRegion  = 32
	columnsPerEncoder = 2
)

// Classify returns the type of the word whose first byte is b.
func Classify(b byte) WordType {
	switch b {
	case idleByte:
		return WordIdle
	case busyOnByte:
		return WordBusyOn
	case busyOffByte:
		return WordBusyOff
	}

	switch b & chipMask {
	case chipHeaderBits:
		return WordChipHeader
	case chipTrailerBits:
		return WordChipTrailer
	case chipEmptyBits:
		return WordChipEmptyFrame
	}

	if b&regionHeaderMask == regionHeaderBits {
		return WordRegionHeader
	}

	switch b & dataMask {
	case dataShortBits:
		return WordDataShort
	case dataLongBits:
		return WordDataLong
	}

	return WordUnknown
}

// ClassifyName returns the name of the word type starting at b.
// It can be passed to lane.Payload.Print.
func ClassifyName(b byte) string {
	return Classify(b).String()
}

// Size returns the number of bytes the word occupies, or 1 for unknown words.
func (w WordType) Size() int {
	switch w {
	case WordChipHeader, WordChipEmptyFrame, WordDataShort:
		return 2
	case WordDataLong:
		return 3
	default:
		return 1
	}
}

func (w WordType) String() string {
	switch w {
	case WordIdle:
		return "IDLE"
	case WordChipHeader:
		return "CHIP_HEADER"
	case WordChipTrailer:
		return "CHIP_TRAILER"
	case WordChipEmptyFrame:
		return "CHIP_EMPTY_FRAME"
	case WordRegionHeader:
		return "REGION_HEADER"
	case WordDataShort:
		return "DATA_SHORT"
	case WordDataLong:
		return "DATA_LONG"
	case WordBusyOn:
		return "BUSY_ON"
	case WordBusyOff:
		return "BUSY_OFF"
	default:
		return "UNKNOWN"
	}
}

package alpide

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		b    byte
		want WordType
	}{
		{0xFF, WordIdle},
		{0xF1, WordBusyOn},
		{0xF0, WordBusyOff},
		{0xA0, WordChipHeader},
		{0xAF, WordChipHeader},
		{0xB0, WordChipTrailer},
		{0xBA, WordChipTrailer},
		{0xE0, WordChipEmptyFrame},
		{0xE7, WordChipEmptyFrame},
		{0xC0, WordRegionHeader},
		{0xDF, WordRegionHeader},
		{0x40, WordDataShort},
		{0x7F, WordDataShort},
		{0x00, WordDataLong},
		{0x3F, WordDataLong},
		{0x80, WordUnknown},
		{0x9F, WordUnknown},
		{0xF5, WordUnknown},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Classify(tt.b), "byte 0x%02X", tt.b)
	}
}

func TestClassify_CoversEveryByte(t *testing.T) {
	counts := map[WordType]int{}
	for b := range 256 {
		counts[Classify(byte(b))]++
	}

	require.Equal(t, 1, counts[WordIdle])
	require.Equal(t, 16, counts[WordChipHeader])
	require.Equal(t, 32, counts[WordRegionHeader])
	require.Equal(t, 64, counts[WordDataShort])
	require.Equal(t, 64, counts[WordDataLong])
	require.Equal(t, 256, counts[WordUnknown]+counts[WordIdle]+counts[WordBusyOn]+counts[WordBusyOff]+
		counts[WordChipHeader]+counts[WordChipTrailer]+counts[WordChipEmptyFrame]+
		counts[WordRegionHeader]+counts[WordDataShort]+counts[WordDataLong])
}

func TestWordType_StringAndSize(t *testing.T) {
	require.Equal(t, "CHIP_HEADER", WordChipHeader.String())
	require.Equal(t, "DATA_LONG", WordDataLong.String())
	require.Equal(t, "UNKNOWN", WordType(200).String())
	require.Equal(t, "IDLE", ClassifyName(0xFF))

	require.Equal(t, 2, WordChipHeader.Size())
	require.Equal(t, 3, WordDataLong.Size())
	require.Equal(t, 1, WordRegionHeader.Size())
	require.Equal(t, 1, WordUnknown.Size())
}

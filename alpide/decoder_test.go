package alpide

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/hit"
)

// exactHits makes cmp compare rows too; PixelHit.Equal looks at the column only.
var exactHits = cmp.Comparer(func(a, b hit.PixelHit) bool { return a == b })

func newTestDecoder(t *testing.T, opts ...DecoderOption) *Decoder {
	t.Helper()

	d, err := NewDecoder(opts...)
	require.NoError(t, err)

	return d
}

// appendHit encodes a single fired pixel as region header + DATA_SHORT.
func appendHit(dst []byte, h hit.PixelHit) []byte {
	region, encoder, address := PixelAddress(h.Column, h.Row)
	dst = AppendRegionHeader(dst, region)

	return AppendDataShort(dst, encoder, address)
}

func TestDecoder_SingleChip(t *testing.T) {
	d := newTestDecoder(t)

	var payload []byte
	payload = AppendIdle(payload, 3)
	payload = AppendChipHeader(payload, 5, 0x42)
	payload = appendHit(payload, hit.PixelHit{Column: 0, Row: 0})
	payload = appendHit(payload, hit.PixelHit{Column: 33, Row: 7})
	payload = appendHit(payload, hit.PixelHit{Column: 1023, Row: 511})
	payload = AppendChipTrailer(payload, 0x2)
	payload = AppendIdle(payload, 2)

	res, err := d.Decode(payload)
	require.NoError(t, err)
	require.Len(t, res.Chips, 1)

	chip := res.Chips[0]
	require.Equal(t, uint8(5), chip.ChipID)
	require.Equal(t, uint8(0x42), chip.BunchCounter)
	require.Equal(t, uint8(0x2), chip.ReadoutFlags)
	require.False(t, chip.Empty)

	want := []hit.PixelHit{{Column: 0, Row: 0}, {Column: 33, Row: 7}, {Column: 1023, Row: 511}}
	if diff := cmp.Diff(want, chip.Hits, exactHits); diff != "" {
		t.Fatalf("hits mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_PixelMapping(t *testing.T) {
	d := newTestDecoder(t)

	// region 1, encoder 2, address 5: row 2, column 32+4+((1)^(0)) = 37
	var payload []byte
	payload = AppendChipHeader(payload, 0, 0)
	payload = AppendRegionHeader(payload, 1)
	payload = AppendDataShort(payload, 2, 5)
	payload = AppendChipTrailer(payload, 0)

	res, err := d.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, []hit.PixelHit{{Column: 37, Row: 2}}, res.Hits())
}

func TestDecoder_DataLong(t *testing.T) {
	d := newTestDecoder(t)

	var payload []byte
	payload = AppendChipHeader(payload, 1, 0)
	payload = AppendRegionHeader(payload, 0)
	payload = AppendDataLong(payload, 0, 0, 0b0000101) // address 0, 1 and 3
	payload = AppendChipTrailer(payload, 0)

	res, err := d.Decode(payload)
	require.NoError(t, err)

	want := []hit.PixelHit{
		pixel(0, 0, 0),
		pixel(0, 0, 1),
		pixel(0, 0, 3),
	}
	require.Equal(t, want, res.Hits())
	require.Equal(t, hit.PixelHit{Column: 1, Row: 0}, want[1])
}

func TestDecoder_DataLongStopsAtLastAddress(t *testing.T) {
	d := newTestDecoder(t)

	var payload []byte
	payload = AppendChipHeader(payload, 1, 0)
	payload = AppendRegionHeader(payload, 0)
	payload = AppendDataLong(payload, 0, 0x3FE, 0x7F)
	payload = AppendChipTrailer(payload, 0)

	res, err := d.Decode(payload)
	require.NoError(t, err)
	require.Len(t, res.Hits(), 2)
}

func TestDecoder_EmptyFramesAndMultipleChips(t *testing.T) {
	d := newTestDecoder(t)

	var payload []byte
	payload = AppendChipEmptyFrame(payload, 0, 9)
	payload = AppendChipHeader(payload, 1, 9)
	payload = appendHit(payload, hit.PixelHit{Column: 64, Row: 3})
	payload = AppendChipTrailer(payload, 0)
	payload = append(payload, busyOnByte, busyOffByte)
	payload = AppendChipEmptyFrame(payload, 2, 9)

	res, err := d.Decode(payload)
	require.NoError(t, err)
	require.Len(t, res.Chips, 3)
	require.True(t, res.Chips[0].Empty)
	require.Equal(t, uint8(1), res.Chips[1].ChipID)
	require.True(t, res.Chips[2].Empty)
	require.Equal(t, []hit.PixelHit{{Column: 64, Row: 3}}, res.Hits())
}

func TestDecoder_EmptyPayload(t *testing.T) {
	d := newTestDecoder(t)

	res, err := d.Decode(nil)
	require.NoError(t, err)
	require.Empty(t, res.Chips)
	require.Empty(t, res.Hits())
}

func TestDecoder_Errors(t *testing.T) {
	d := newTestDecoder(t)

	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"truncated chip header", []byte{0xA1}, errs.ErrTruncatedWord},
		{"truncated data long", []byte{0xA1, 0x00, 0xC0, 0x00, 0x01}, errs.ErrTruncatedWord},
		{"trailer without header", []byte{0xB0}, errs.ErrUnexpectedWord},
		{"region outside chip", []byte{0xC3}, errs.ErrUnexpectedWord},
		{"data without region", []byte{0xA1, 0x00, 0x40, 0x01, 0xB0}, errs.ErrUnexpectedWord},
		{"nested chip header", []byte{0xA1, 0x00, 0xA2, 0x00}, errs.ErrUnexpectedWord},
		{"unterminated chip", []byte{0xA1, 0x00, 0xC0}, errs.ErrUnterminatedChip},
		{"unknown word", []byte{0x85}, errs.ErrUnknownWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := d.Decode(tt.payload)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, res)
		})
	}
}

func TestDecoder_LenientSkipsUnknownWords(t *testing.T) {
	d := newTestDecoder(t, WithStrict(false))

	var payload []byte
	payload = append(payload, 0x85, 0x9A)
	payload = AppendChipHeader(payload, 3, 0)
	payload = appendHit(payload, hit.PixelHit{Column: 10, Row: 10})
	payload = append(payload, 0xF7)
	payload = AppendChipTrailer(payload, 0)

	res, err := d.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, 3, res.Skipped)
	require.Equal(t, []hit.PixelHit{{Column: 10, Row: 10}}, res.Hits())
}

func TestDecoder_DoesNotModifyPayload(t *testing.T) {
	d := newTestDecoder(t)

	var payload []byte
	payload = AppendChipHeader(payload, 1, 1)
	payload = appendHit(payload, hit.PixelHit{Column: 5, Row: 5})
	payload = AppendChipTrailer(payload, 0)
	original := append([]byte(nil), payload...)

	_, err := d.Decode(payload)
	require.NoError(t, err)
	require.Equal(t, original, payload)
}

func TestPixelAddress_RoundTrip(t *testing.T) {
	for _, h := range []hit.PixelHit{{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 0, Row: 1}, {Column: 1, Row: 1}, {Column: 31, Row: 100}, {Column: 32, Row: 255}, {Column: 1023, Row: 511}, {Column: 512, Row: 256}} {
		region, encoder, address := PixelAddress(h.Column, h.Row)
		require.Equal(t, h, pixel(region, encoder, address), "hit %v", h)
	}
}

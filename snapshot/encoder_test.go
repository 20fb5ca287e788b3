package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/arloliu/lanedata/endian"
	"github.com/arloliu/lanedata/errs"
	"github.com/arloliu/lanedata/format"
	"github.com/arloliu/lanedata/lane"
	"github.com/arloliu/lanedata/section"
	"github.com/stretchr/testify/require"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newFilledHandler(t *testing.T) *lane.Handler {
	t.Helper()

	h, err := lane.NewHandler()
	require.NoError(t, err)

	require.NoError(t, h.Append(0, []byte{0xA0, 0x12, 0x34}))
	require.NoError(t, h.Append(5, bytes.Repeat([]byte{0xFF}, 512)))
	require.NoError(t, h.AppendByte(27, 0xB0))

	return h
}

func TestNewEncoder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.Equal(t, format.CompressionZstd, enc.cfg.compression)
		require.False(t, enc.cfg.bigEndian)
	})

	t.Run("invalid compression", func(t *testing.T) {
		_, err := NewEncoder(WithCompression(format.CompressionType(0x7F)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("native endianness", func(t *testing.T) {
		enc, err := NewEncoder(WithBigEndian(), WithNativeEndian())
		require.NoError(t, err)
		require.Equal(t, !endian.IsNativeLittleEndian(), enc.cfg.bigEndian)

		data, err := enc.Encode(1, time.Now(), newFilledHandler(t))
		require.NoError(t, err)
		snap, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, endian.CheckEndianness() == binary.BigEndian, snap.IsBigEndian())
	})

	t.Run("last endianness wins", func(t *testing.T) {
		enc, err := NewEncoder(WithBigEndian(), WithLittleEndian())
		require.NoError(t, err)
		require.False(t, enc.cfg.bigEndian)
	})
}

func TestEncoder_Encode(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, comp := range allCompressions {
		t.Run(comp.String(), func(t *testing.T) {
			h := newFilledHandler(t)
			enc, err := NewEncoder(WithCompression(comp))
			require.NoError(t, err)

			data, err := enc.Encode(9, ts, h)
			require.NoError(t, err)
			require.True(t, IsSnapshot(data))

			header, err := section.ParseHeader(data)
			require.NoError(t, err)
			require.Equal(t, uint64(9), header.Cycle)
			require.Equal(t, uint8(lane.NumLanes), header.LaneCount)
			require.Equal(t, comp, header.Flag.Compression)
			require.Equal(t, uint32(h.TotalBytes()), header.PayloadSize)

			stats := enc.Stats()
			require.Equal(t, comp, stats.Algorithm)
			require.Equal(t, int64(h.TotalBytes()), stats.OriginalSize)
			require.Equal(t, int64(header.CompressedSize), stats.CompressedSize)
		})
	}
}

func TestEncoder_EncodeDoesNotAliasHandler(t *testing.T) {
	h := newFilledHandler(t)
	enc, err := NewEncoder(WithCompression(format.CompressionNone))
	require.NoError(t, err)

	data, err := enc.Encode(1, time.Now(), h)
	require.NoError(t, err)
	want := bytes.Clone(data)

	require.NoError(t, h.Append(0, []byte{0x01, 0x02}))
	h.Reset()
	require.Equal(t, want, data)
}

func TestEncoder_EncodeTo(t *testing.T) {
	h := newFilledHandler(t)
	enc, err := NewEncoder()
	require.NoError(t, err)

	ts := time.UnixMicro(1_700_000_000_000_000)
	want, err := enc.Encode(3, ts, h)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := enc.EncodeTo(&buf, 3, ts, h)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, buf.Bytes())
}

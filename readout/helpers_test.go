package readout

import (
	"bytes"
	"log/slog"

	"github.com/arloliu/lanedata/alpide"
	"github.com/arloliu/lanedata/hit"
)

// chipPayload encodes one chip frame carrying hits as DATA_SHORT words.
func chipPayload(chipID uint8, hits ...hit.PixelHit) []byte {
	var payload []byte
	payload = alpide.AppendIdle(payload, 2)
	payload = alpide.AppendChipHeader(payload, chipID, 0x10)
	for _, h := range hits {
		region, encoder, address := alpide.PixelAddress(h.Column, h.Row)
		payload = alpide.AppendRegionHeader(payload, region)
		payload = alpide.AppendDataShort(payload, encoder, address)
	}
	payload = alpide.AppendChipTrailer(payload, 0)

	return payload
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, &buf
}

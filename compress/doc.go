// Package compress provides the codecs applied to snapshot payload sections.
//
// A snapshot stores the raw bytes of every lane for one readout cycle. The
// payload section can be stored as-is or compressed with one of:
//
//   - None: no compression (format.CompressionNone)
//   - Zstd: best ratio, suited to archived cycles (format.CompressionZstd)
//   - S2: fast, suited to live dumps (format.CompressionS2)
//   - LZ4: fastest decompression, suited to replay (format.CompressionLZ4)
//
// All codecs implement Codec:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(section)
//	raw, err := codec.Decompress(packed)
//
// The pure-Go Zstd implementation from klauspost/compress is used by default.
// Building with the gozstd tag (and cgo enabled) switches to valyala/gozstd.
//
// All codecs are safe for concurrent use. Encoders and decoders are pooled
// internally.
package compress

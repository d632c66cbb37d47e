// Package compress provides the codecs applied to encoded table payloads.
//
// A sampled table stores its grid and values as raw float64 columns. Smooth functions
// produce highly regular bit patterns, so a general-purpose codec usually shrinks the
// payload noticeably. The codec is recorded in the table header, so a decoder can pick
// the matching implementation with GetCodec.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload is stored unchanged.
//   - Zstd (format.CompressionZstd): best ratio. Pure Go (klauspost/compress) by default,
//     or cgo-backed (valyala/gozstd) when built with -tags gozstd.
//   - S2 (format.CompressionS2): fast, Snappy-compatible extension from klauspost/compress.
//   - LZ4 (format.CompressionLZ4): block format from pierrec/lz4.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values. Internal encoders and decoders are pooled, so a single
// codec may be shared between goroutines.
package compress

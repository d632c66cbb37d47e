package compress

// ZstdCompressor provides Zstandard compression for table payloads.
//
// The default build uses the pure Go implementation from klauspost/compress. Building
// with -tags gozstd (and cgo enabled) switches to the libzstd bindings from
// valyala/gozstd. Both produce standard Zstandard frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
